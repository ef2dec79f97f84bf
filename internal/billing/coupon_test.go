package billing

import (
	"errors"
	"testing"

	"go-delivery-platform/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCouponLookup serves a fixed coupon set keyed by restaurant + code.
type fakeCouponLookup struct {
	coupons map[uint]map[string]models.Coupon
	err     error
}

func (f fakeCouponLookup) ActiveCoupon(restaurantID uint, code string) (*models.Coupon, error) {
	if f.err != nil {
		return nil, f.err
	}
	coupon, ok := f.coupons[restaurantID][code]
	if !ok {
		return nil, nil
	}
	return &coupon, nil
}

func TestEvaluateCoupon(t *testing.T) {
	lookup := fakeCouponLookup{coupons: map[uint]map[string]models.Coupon{
		1: {
			"SAVE50":  {RestaurantID: 1, Code: "SAVE50", DiscountValue: 50, MinOrderValue: 200, IsActive: true},
			"WELCOME": {RestaurantID: 1, Code: "WELCOME", DiscountValue: 30, MinOrderValue: 0, IsActive: true},
		},
	}}

	tests := []struct {
		name         string
		restaurantID uint
		code         string
		subtotal     float64
		wantDiscount float64
		wantErr      error
		wantBelowMin bool
	}{
		{"valid coupon", 1, "SAVE50", 250, 50, nil, false},
		{"subtotal exactly at minimum", 1, "SAVE50", 200, 50, nil, false},
		{"below minimum", 1, "SAVE50", 150, 0, nil, true},
		{"no minimum configured", 1, "WELCOME", 10, 30, nil, false},
		{"unknown code", 1, "NOPE", 500, 0, ErrCouponNotFound, false},
		{"wrong restaurant", 2, "SAVE50", 500, 0, ErrCouponNotFound, false},
		{"lowercase input matches", 1, "save50", 250, 50, nil, false},
		{"padded input matches", 1, "  SAVE50  ", 250, 50, nil, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			coupon, err := EvaluateCoupon(lookup, testCase.restaurantID, testCase.code, testCase.subtotal)

			if testCase.wantBelowMin {
				var belowMin *BelowMinimumError
				require.ErrorAs(t, err, &belowMin)
				assert.Equal(t, 200.0, belowMin.MinOrderValue)
				return
			}
			if testCase.wantErr != nil {
				require.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantDiscount, coupon.DiscountValue)
		})
	}
}

func TestEvaluateCoupon_LookupFailurePropagates(t *testing.T) {
	lookup := fakeCouponLookup{err: errors.New("store unavailable")}

	_, err := EvaluateCoupon(lookup, 1, "SAVE50", 500)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCouponNotFound)
}
