package notify

import (
	"fmt"
	"net/url"
	"strings"

	"go-delivery-platform/internal/models"
	"go-delivery-platform/internal/utils"
)

// OrderSummary carries everything the owner notification template needs.
type OrderSummary struct {
	ShortID        string
	CustomerName   string
	CustomerPhone  string
	Items          []models.OrderItem
	CouponCode     string
	DiscountAmount float64
	Subtotal       float64
	DeliveryFee    float64
	Total          float64
	IsPrepaid      bool
	VoiceNoteURL   string
	GPSCoordinates string
}

// WhatsAppMessage renders the new-order text the restaurant owner receives.
// Delivery is manual: the owner clicks a wa.me link pre-filled with this text,
// nothing is sent programmatically.
func WhatsAppMessage(order OrderSummary) string {
	mapLink := "Not provided"
	if order.GPSCoordinates != "" {
		mapLink = utils.GoogleMapsLink(order.GPSCoordinates)
	}

	var items []string
	for _, item := range order.Items {
		name := item.Name
		if item.IsMystery {
			name = "🎁 " + name
		}
		items = append(items, fmt.Sprintf("%dx %s", item.Quantity, name))
	}

	couponText := ""
	if order.CouponCode != "" {
		couponText = fmt.Sprintf("🎟️ Coupon: %s (Saved ₹%v)\n", order.CouponCode, order.DiscountAmount)
	}

	voiceText := ""
	if order.VoiceNoteURL != "" {
		voiceText = fmt.Sprintf("🎤 Voice Note: %s\n", order.VoiceNoteURL)
	}

	deliveryText := fmt.Sprintf("₹%v", order.DeliveryFee)
	if order.DeliveryFee == 0 {
		deliveryText = "FREE"
	}

	paymentStatus := "⚠️ COLLECT CASH/QR"
	if order.IsPrepaid {
		paymentStatus = "✅ PAID ONLINE (Money in your Bank)"
	}

	return fmt.Sprintf(`🔔 NEW ORDER %s

👤 Customer: %s (%s)
📍 Nav: %s

🍲 Items:
%s

%s%s
💰 Bill Breakdown:
Food: ₹%v
Delivery: %s
TOTAL TO COLLECT: ₹%v

💳 Payment Status:
%s`,
		order.ShortID,
		order.CustomerName, order.CustomerPhone,
		mapLink,
		strings.Join(items, "\n"),
		couponText, voiceText,
		order.Subtotal,
		deliveryText,
		order.Total,
		paymentStatus,
	)
}

// WhatsAppLink builds the wa.me deep link with the message pre-filled.
func WhatsAppLink(phone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message)
}
