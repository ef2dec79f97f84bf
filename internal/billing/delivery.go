package billing

import (
	"go-delivery-platform/internal/models"
)

// ComputeDeliveryFee applies the restaurant's free-delivery policy.
// The threshold is compared against the subtotal AFTER the coupon discount;
// without a configured threshold the flat fee always applies.
func ComputeDeliveryFee(restaurant models.Restaurant, postDiscountSubtotal float64) float64 {
	if restaurant.FreeDeliveryThreshold != nil && postDiscountSubtotal >= *restaurant.FreeDeliveryThreshold {
		return 0
	}
	return restaurant.DeliveryFee
}

// GSTConfigFor builds the tax configuration for a restaurant's checkout.
// Restaurants that have not enabled GST bill at zero rates; the decomposition
// still runs so every order carries the same frozen field set.
func GSTConfigFor(restaurant models.Restaurant) GSTConfig {
	config := DefaultGSTConfig()
	if !restaurant.GSTEnabled {
		config.FoodGSTRate = 0
		config.DeliveryGSTRate = 0
		config.PlatformGSTRate = 0
		return config
	}
	if restaurant.FoodGSTRate > 0 {
		config.FoodGSTRate = restaurant.FoodGSTRate
	}
	return config
}
