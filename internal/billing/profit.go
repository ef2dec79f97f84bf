package billing

import (
	"go-delivery-platform/internal/models"
)

// NOTE: these two constants disagree (margin math assumes a ₹30 rider cost,
// the rider earnings screen pays a flat ₹40). Kept separate pending a product
// decision; do not fold them into one.
const (
	// DeliveryMarginCost is the per-delivery cost subtracted from the
	// delivery fee when attributing platform margin.
	DeliveryMarginCost = 30.0

	// RiderFlatPayout is the flat amount a rider earns per completed delivery.
	RiderFlatPayout = 40.0
)

// ComputeNetProfit attributes platform revenue for one order: the tech fee is
// charged per item unit sold (not per order), and delivery margin only exists
// when a delivery fee was actually charged. Computed once at placement and
// frozen on the Order.
func ComputeNetProfit(restaurant models.Restaurant, items []models.OrderItem, deliveryFeeCharged float64) float64 {
	totalUnits := 0
	for _, item := range items {
		totalUnits += item.Quantity
	}
	techRevenue := restaurant.TechFee * float64(totalUnits)

	var deliveryMargin float64
	if deliveryFeeCharged > 0 {
		deliveryMargin = deliveryFeeCharged - DeliveryMarginCost
	}

	return Round2(techRevenue + deliveryMargin)
}

// RiderEarnings converts a completed-delivery count into rider pay.
func RiderEarnings(deliveredCount int64) float64 {
	return float64(deliveredCount) * RiderFlatPayout
}
