package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"go-delivery-platform/internal/lifecycle"
)

// Event kinds published on the order channels.
const (
	EventOrderPlaced   = "ORDER_PLACED"
	EventStatusChanged = "STATUS_CHANGED"
	EventRiderClaimed  = "RIDER_CLAIMED"
)

// OrderEvent is the payload live dashboards subscribe to. Delivery/ordering
// guarantees are the channel's problem, not ours: subscribers refetch on any
// event rather than trusting the payload as the source of truth.
type OrderEvent struct {
	Event        string `json:"event"`
	OrderID      uint   `json:"order_id"`
	ShortID      string `json:"short_id"`
	RestaurantID uint   `json:"restaurant_id"`
	Status       string `json:"status"`
}

// Publisher fans order changes out over Redis pub/sub.
type Publisher struct {
	client *redis.Client
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

// RestaurantChannel is where one restaurant's dashboard listens.
func RestaurantChannel(restaurantID uint) string {
	return fmt.Sprintf("orders:restaurant:%d", restaurantID)
}

// RiderChannel is the shared feed of orders searching for a rider.
const RiderChannel = "orders:riders"

// targetChannels picks where an event goes: always the restaurant's own
// channel, plus the shared rider feed while the order is looking for a rider.
func targetChannels(event OrderEvent) []string {
	channels := []string{RestaurantChannel(event.RestaurantID)}
	if event.Status == string(lifecycle.StatusSearchingForRider) {
		channels = append(channels, RiderChannel)
	}
	return channels
}

// PublishOrderEvent sends the event to its target channels. Publish failures
// are logged and swallowed: a missed dashboard refresh must never fail an
// order mutation.
func (p *Publisher) PublishOrderEvent(ctx context.Context, event OrderEvent) {
	if p == nil || p.client == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Println("Failed to encode order event:", err)
		return
	}

	for _, channel := range targetChannels(event) {
		if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
			log.Println("Failed to publish order event:", err)
		}
	}
}
