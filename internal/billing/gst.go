package billing

import (
	"math"
)

// Indian GST rates for restaurant orders:
// food 5% (CGST 2.5 + SGST 2.5), delivery and platform charges 18% (CGST 9 + SGST 9).

// GSTConfig controls how tax is decomposed for a bill.
type GSTConfig struct {
	FoodGSTRate     float64 `json:"food_gst_rate"`
	DeliveryGSTRate float64 `json:"delivery_gst_rate"`
	PlatformGSTRate float64 `json:"platform_gst_rate"`
	IsGSTInclusive  bool    `json:"is_gst_inclusive"`
}

// DefaultGSTConfig returns the standard inclusive-pricing configuration.
func DefaultGSTConfig() GSTConfig {
	return GSTConfig{
		FoodGSTRate:     5.0,
		DeliveryGSTRate: 18.0,
		PlatformGSTRate: 18.0,
		IsGSTInclusive:  true,
	}
}

// BillBreakdown is the fully itemized result of a checkout computation.
type BillBreakdown struct {
	SubtotalBeforeGST    float64 `json:"subtotal_before_gst"`
	DeliveryFeeBeforeGST float64 `json:"delivery_fee_before_gst"`

	FoodGSTAmount     float64 `json:"food_gst_amount"`
	DeliveryGSTAmount float64 `json:"delivery_gst_amount"`
	TotalGSTAmount    float64 `json:"total_gst_amount"`

	CGSTAmount float64 `json:"cgst_amount"`
	SGSTAmount float64 `json:"sgst_amount"`

	SubtotalAfterGST    float64 `json:"subtotal_after_gst"`
	DeliveryFeeAfterGST float64 `json:"delivery_fee_after_gst"`
	GrandTotal          float64 `json:"grand_total"`

	DiscountAmount  float64 `json:"discount_amount"`
	WalletDeduction float64 `json:"wallet_deduction"`
	AmountToPay     float64 `json:"amount_to_pay"`
}

// Round2 rounds a monetary amount to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeBill converts a cart total, delivery fee, discount and wallet usage
// into an itemized bill.
//
// Inclusive mode backs the pre-tax base out of the quoted amount
// (amount / (1 + rate/100)); exclusive mode computes tax forward. CGST and SGST
// are each exactly half of total GST. The grand total is subtotal + delivery
// fee - discount: in inclusive mode tax is already embedded, so it is never
// added on top. Every output field is rounded to 2dp independently rather than
// derived from other rounded fields.
func ComputeBill(cartTotal, deliveryFee, discountAmount, walletBalance float64, useWallet bool, config GSTConfig) BillBreakdown {
	var subtotalBeforeGST, deliveryFeeBeforeGST float64
	var foodGSTAmount, deliveryGSTAmount float64

	if config.IsGSTInclusive {
		subtotalBeforeGST = cartTotal / (1 + config.FoodGSTRate/100)
		foodGSTAmount = cartTotal - subtotalBeforeGST

		deliveryFeeBeforeGST = deliveryFee / (1 + config.DeliveryGSTRate/100)
		deliveryGSTAmount = deliveryFee - deliveryFeeBeforeGST
	} else {
		subtotalBeforeGST = cartTotal
		foodGSTAmount = cartTotal * (config.FoodGSTRate / 100)

		deliveryFeeBeforeGST = deliveryFee
		deliveryGSTAmount = deliveryFee * (config.DeliveryGSTRate / 100)
	}

	totalGSTAmount := foodGSTAmount + deliveryGSTAmount

	// Symmetric intra-state split
	cgstAmount := totalGSTAmount / 2
	sgstAmount := totalGSTAmount / 2

	subtotalAfterGST := cartTotal
	deliveryFeeAfterGST := deliveryFee

	grandTotal := subtotalAfterGST + deliveryFeeAfterGST - discountAmount

	var walletDeduction float64
	if useWallet {
		walletDeduction = math.Min(walletBalance, grandTotal)
	}

	amountToPay := grandTotal - walletDeduction

	return BillBreakdown{
		SubtotalBeforeGST:    Round2(subtotalBeforeGST),
		DeliveryFeeBeforeGST: Round2(deliveryFeeBeforeGST),

		FoodGSTAmount:     Round2(foodGSTAmount),
		DeliveryGSTAmount: Round2(deliveryGSTAmount),
		TotalGSTAmount:    Round2(totalGSTAmount),

		CGSTAmount: Round2(cgstAmount),
		SGSTAmount: Round2(sgstAmount),

		SubtotalAfterGST:    Round2(subtotalAfterGST),
		DeliveryFeeAfterGST: Round2(deliveryFeeAfterGST),
		GrandTotal:          Round2(grandTotal),

		DiscountAmount:  Round2(discountAmount),
		WalletDeduction: Round2(walletDeduction),
		AmountToPay:     Round2(amountToPay),
	}
}
