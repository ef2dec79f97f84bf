package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatPrice renders a rupee amount for messages and receipts.
func FormatPrice(amount float64) string {
	return fmt.Sprintf("₹%v", amount)
}

// FormatPhoneNumber normalizes an Indian phone number to +91 form.
func FormatPhoneNumber(phone string) string {
	if strings.HasPrefix(phone, "+91") {
		return phone
	}
	return "+91" + phone
}

// GPSPoint is a parsed "lat,lng" coordinate pair.
type GPSPoint struct {
	Lat float64
	Lng float64
}

// ParseGPSCoordinates parses the "lat,lng" string captured at checkout.
func ParseGPSCoordinates(coords string) (GPSPoint, bool) {
	parts := strings.Split(coords, ",")
	if len(parts) != 2 {
		return GPSPoint{}, false
	}

	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return GPSPoint{}, false
	}

	return GPSPoint{Lat: lat, Lng: lng}, true
}

// GoogleMapsLink points the rider's phone at the drop location.
func GoogleMapsLink(coords string) string {
	return "https://maps.google.com/maps?q=" + coords
}

// NewShortOrderID mints the human-readable order reference shown to customers
// and owners, distinct from the database id.
func NewShortOrderID() string {
	return fmt.Sprintf("ANT-%d", time.Now().UnixMilli())
}

// Slugify turns a restaurant name into its URL slug.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastHyphen := true // swallow leading separators
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
