package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pct(v float64) *float64 { return &v }

func TestEffectiveLootDiscount(t *testing.T) {
	tests := []struct {
		name string
		item MenuItem
		want float64
	}{
		{
			name: "explicit override wins",
			item: MenuItem{BasePrice: 200, SellingPrice: 180, LootDiscountPct: pct(50)},
			want: 50,
		},
		{
			name: "derived from price gap",
			item: MenuItem{BasePrice: 200, SellingPrice: 150},
			want: 25,
		},
		{
			name: "no gap means no discount",
			item: MenuItem{BasePrice: 200, SellingPrice: 200},
			want: 0,
		},
		{
			name: "zero base price is safe",
			item: MenuItem{BasePrice: 0, SellingPrice: 0},
			want: 0,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, testCase.item.EffectiveLootDiscount())
		})
	}
}
