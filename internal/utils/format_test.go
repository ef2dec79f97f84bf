package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPhoneNumber(t *testing.T) {
	assert.Equal(t, "+919876543210", FormatPhoneNumber("9876543210"))
	assert.Equal(t, "+919876543210", FormatPhoneNumber("+919876543210"))
}

func TestParseGPSCoordinates(t *testing.T) {
	tests := []struct {
		name   string
		coords string
		want   GPSPoint
		ok     bool
	}{
		{"valid pair", "12.9716,77.5946", GPSPoint{Lat: 12.9716, Lng: 77.5946}, true},
		{"spaced pair", "12.9716, 77.5946", GPSPoint{Lat: 12.9716, Lng: 77.5946}, true},
		{"missing part", "12.9716", GPSPoint{}, false},
		{"not numbers", "here,there", GPSPoint{}, false},
		{"empty", "", GPSPoint{}, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			point, ok := ParseGPSCoordinates(testCase.coords)
			assert.Equal(t, testCase.ok, ok)
			if testCase.ok {
				assert.Equal(t, testCase.want, point)
			}
		})
	}
}

func TestNewShortOrderID(t *testing.T) {
	id := NewShortOrderID()
	require.True(t, strings.HasPrefix(id, "ANT-"))
	assert.Greater(t, len(id), 4)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "biryani-house", Slugify("Biryani House"))
	assert.Equal(t, "spice-rice", Slugify("Spice & Rice"))
	assert.Equal(t, "dosa-corner", Slugify("Dosa_Corner"))
}
