package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-delivery-platform/internal/lifecycle"
)

func TestTargetChannels(t *testing.T) {
	tests := []struct {
		name  string
		event OrderEvent
		want  []string
	}{
		{
			name:  "searching order fans out to the rider feed",
			event: OrderEvent{Event: EventStatusChanged, RestaurantID: 7, Status: string(lifecycle.StatusSearchingForRider)},
			want:  []string{"orders:restaurant:7", RiderChannel},
		},
		{
			name:  "claimed order leaves the rider feed",
			event: OrderEvent{Event: EventRiderClaimed, RestaurantID: 7, Status: string(lifecycle.StatusRiderAssigned)},
			want:  []string{"orders:restaurant:7"},
		},
		{
			name:  "new order stays on the restaurant channel",
			event: OrderEvent{Event: EventOrderPlaced, RestaurantID: 12, Status: string(lifecycle.StatusPending)},
			want:  []string{"orders:restaurant:12"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, targetChannels(testCase.event))
		})
	}
}
