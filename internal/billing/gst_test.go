package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBill_InclusiveDecomposition(t *testing.T) {
	// ₹500 cart at 5% inclusive, ₹40 delivery at 18% inclusive, ₹50 coupon
	bill := ComputeBill(500, 40, 50, 0, false, DefaultGSTConfig())

	assert.Equal(t, 476.19, bill.SubtotalBeforeGST)
	assert.Equal(t, 23.81, bill.FoodGSTAmount)
	assert.Equal(t, 33.9, bill.DeliveryFeeBeforeGST)
	assert.Equal(t, 6.1, bill.DeliveryGSTAmount)
	assert.Equal(t, 500.0, bill.SubtotalAfterGST)
	assert.Equal(t, 40.0, bill.DeliveryFeeAfterGST)
	assert.Equal(t, 490.0, bill.GrandTotal)
	assert.Equal(t, 490.0, bill.AmountToPay)
	assert.Equal(t, 0.0, bill.WalletDeduction)
}

func TestComputeBill_ExclusiveAddsTaxForward(t *testing.T) {
	config := GSTConfig{FoodGSTRate: 5, DeliveryGSTRate: 18, PlatformGSTRate: 18, IsGSTInclusive: false}

	bill := ComputeBill(200, 50, 0, 0, false, config)

	assert.Equal(t, 200.0, bill.SubtotalBeforeGST)
	assert.Equal(t, 10.0, bill.FoodGSTAmount)
	assert.Equal(t, 50.0, bill.DeliveryFeeBeforeGST)
	assert.Equal(t, 9.0, bill.DeliveryGSTAmount)
	assert.Equal(t, 19.0, bill.TotalGSTAmount)
	// Quoted amounts are treated as tax-free bases; the grand total still
	// sums the quoted amounts, tax is reported, not re-added.
	assert.Equal(t, 250.0, bill.GrandTotal)
}

func TestComputeBill_CGSTSGSTSplitSymmetry(t *testing.T) {
	tests := []struct {
		name        string
		cartTotal   float64
		deliveryFee float64
	}{
		{"round figures", 500, 40},
		{"awkward paise", 333.33, 27.5},
		{"food only", 149, 0},
		{"zero cart", 0, 40},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			bill := ComputeBill(testCase.cartTotal, testCase.deliveryFee, 0, 0, false, DefaultGSTConfig())
			assert.Equal(t, bill.CGSTAmount, bill.SGSTAmount)
		})
	}
}

func TestComputeBill_MonetaryIdentity(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		delivery float64
		discount float64
	}{
		{"plain", 500, 40, 50},
		{"no discount", 240, 30, 0},
		{"free delivery", 350, 0, 20},
		{"paise amounts", 123.45, 37.8, 10.5},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			bill := ComputeBill(testCase.subtotal, testCase.delivery, testCase.discount, 0, false, DefaultGSTConfig())
			expected := Round2(testCase.subtotal + testCase.delivery - testCase.discount)
			assert.InDelta(t, expected, bill.AmountToPay, 0.01)
		})
	}
}

func TestComputeBill_InclusiveRoundTrip(t *testing.T) {
	config := DefaultGSTConfig()
	bill := ComputeBill(500, 0, 0, 0, false, config)

	// Backing the tax out and reapplying the rate must land on the cart total
	require.InDelta(t, 500.0, bill.SubtotalBeforeGST*(1+config.FoodGSTRate/100), 0.05)
}

func TestComputeBill_WalletDeduction(t *testing.T) {
	tests := []struct {
		name          string
		walletBalance float64
		useWallet     bool
		wantDeduction float64
		wantToPay     float64
	}{
		{"wallet unused", 100, false, 0, 490},
		{"partial cover", 100, true, 100, 390},
		{"wallet capped at total", 900, true, 490, 0},
		{"empty wallet", 0, true, 0, 490},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			bill := ComputeBill(500, 40, 50, testCase.walletBalance, testCase.useWallet, DefaultGSTConfig())
			assert.Equal(t, testCase.wantDeduction, bill.WalletDeduction)
			assert.Equal(t, testCase.wantToPay, bill.AmountToPay)
		})
	}
}

func TestComputeBill_ZeroRatesWhenGSTDisabled(t *testing.T) {
	config := GSTConfig{IsGSTInclusive: true}

	bill := ComputeBill(500, 40, 0, 0, false, config)

	assert.Equal(t, 500.0, bill.SubtotalBeforeGST)
	assert.Equal(t, 0.0, bill.TotalGSTAmount)
	assert.Equal(t, 0.0, bill.CGSTAmount)
	assert.Equal(t, 540.0, bill.GrandTotal)
}
