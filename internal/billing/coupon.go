package billing

import (
	"errors"
	"fmt"
	"strings"

	"go-delivery-platform/internal/models"
)

var (
	// ErrCouponNotFound - no active coupon with that code for the restaurant.
	ErrCouponNotFound = errors.New("coupon code not found or inactive")
)

// BelowMinimumError - the cart has not reached the coupon's minimum order value.
type BelowMinimumError struct {
	MinOrderValue float64
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("minimum order value is ₹%v", e.MinOrderValue)
}

// CouponLookup finds an active coupon by restaurant and (uppercase) code.
// Implementations return (nil, nil) when nothing matches.
type CouponLookup interface {
	ActiveCoupon(restaurantID uint, code string) (*models.Coupon, error)
}

// EvaluateCoupon validates a coupon code against a restaurant's active coupon
// set and the pre-discount cart subtotal. Codes are matched case-insensitively.
// Pure validation: recording that the coupon was used belongs to the caller,
// on the Order at creation time.
func EvaluateCoupon(lookup CouponLookup, restaurantID uint, code string, cartSubtotal float64) (*models.Coupon, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	coupon, err := lookup.ActiveCoupon(restaurantID, normalized)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}

	// Gate on the pre-discount subtotal, not the post-delivery-fee total.
	if cartSubtotal < coupon.MinOrderValue {
		return nil, &BelowMinimumError{MinOrderValue: coupon.MinOrderValue}
	}

	return coupon, nil
}
