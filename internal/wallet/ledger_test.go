package wallet

import (
	"testing"
	"time"

	"go-delivery-platform/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanAcceptOrders(t *testing.T) {
	tests := []struct {
		name       string
		balance    float64
		floor      float64
		acceptable bool
	}{
		{"healthy balance", 500, -1000, true},
		{"negative but above floor", -400, -1000, true},
		{"exactly at floor", -1000, -1000, true},
		{"below floor suspends", -1000.01, -1000, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			restaurant := models.Restaurant{CreditBalance: testCase.balance, MinBalanceLimit: testCase.floor}
			assert.Equal(t, testCase.acceptable, CanAcceptOrders(restaurant))
		})
	}
}

func TestNewFeeDeduction(t *testing.T) {
	txn := NewFeeDeduction(7, 25, "Order ANT-1")

	assert.Equal(t, uint(7), txn.RestaurantID)
	assert.Equal(t, -25.0, txn.Amount) // deductions are negative ledger entries
	assert.Equal(t, models.TxnFeeDeduction, txn.Type)
	assert.Equal(t, models.TxnApproved, txn.Status) // recorded terminally, no approval leg
}

func TestNewRechargeRequest(t *testing.T) {
	txn, err := NewRechargeRequest(7, 500, "https://cdn/proof.jpg", "GPay ref 123")
	require.NoError(t, err)

	assert.Equal(t, models.TxnWalletRecharge, txn.Type)
	assert.Equal(t, models.TxnPending, txn.Status)
	assert.Equal(t, 500.0, txn.Amount)
	assert.Nil(t, txn.ApprovedBy)

	_, err = NewRechargeRequest(7, 0, "", "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewRechargeRequest(7, -10, "", "")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestNewGatewayRecharge(t *testing.T) {
	now := time.Now()

	txn, err := NewGatewayRecharge(7, 500, "RECHARGE-7-1700000000000", now)
	require.NoError(t, err)

	assert.Equal(t, models.TxnWalletRecharge, txn.Type)
	assert.Equal(t, models.TxnApproved, txn.Status) // gateway already verified it
	assert.Equal(t, 500.0, txn.Amount)
	require.NotNil(t, txn.ApprovedAt)
	assert.Equal(t, now, *txn.ApprovedAt)
	assert.Contains(t, txn.Notes, "RECHARGE-7-1700000000000")

	// The amount arrives on an unauthenticated callback; a non-positive value
	// must never reach the ledger
	_, err = NewGatewayRecharge(7, 0, "RECHARGE-7-1", now)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewGatewayRecharge(7, -500, "RECHARGE-7-1", now)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestResolve_Approve(t *testing.T) {
	txn := models.WalletTransaction{
		RestaurantID: 7,
		Amount:       500,
		Type:         models.TxnWalletRecharge,
		Status:       models.TxnPending,
	}
	now := time.Now()

	delta, err := Resolve(&txn, Approve, 42, now)
	require.NoError(t, err)

	assert.Equal(t, 500.0, delta)
	assert.Equal(t, models.TxnApproved, txn.Status)
	require.NotNil(t, txn.ApprovedBy)
	assert.Equal(t, uint(42), *txn.ApprovedBy)
	require.NotNil(t, txn.ApprovedAt)
	assert.Equal(t, now, *txn.ApprovedAt)
}

func TestResolve_RejectNeverMovesBalance(t *testing.T) {
	txn := models.WalletTransaction{
		RestaurantID: 7,
		Amount:       500,
		Type:         models.TxnWalletRecharge,
		Status:       models.TxnPending,
	}

	delta, err := Resolve(&txn, Reject, 42, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 0.0, delta)
	assert.Equal(t, models.TxnRejected, txn.Status)
}

func TestResolve_Idempotence(t *testing.T) {
	txn := models.WalletTransaction{
		Amount: 500,
		Type:   models.TxnWalletRecharge,
		Status: models.TxnPending,
	}

	_, err := Resolve(&txn, Approve, 42, time.Now())
	require.NoError(t, err)

	// Second resolution must fail and must not produce another delta
	delta, err := Resolve(&txn, Approve, 99, time.Now())
	assert.ErrorIs(t, err, ErrAlreadyResolved)
	assert.Equal(t, 0.0, delta)
	assert.Equal(t, uint(42), *txn.ApprovedBy) // first approver stands

	// Rejecting after approval is equally refused
	_, err = Resolve(&txn, Reject, 99, time.Now())
	assert.ErrorIs(t, err, ErrAlreadyResolved)
	assert.Equal(t, models.TxnApproved, txn.Status)
}

func TestResolve_RefusesNonRecharge(t *testing.T) {
	txn := NewFeeDeduction(7, 25, "Order ANT-1")

	delta, err := Resolve(&txn, Approve, 42, time.Now())
	assert.ErrorIs(t, err, ErrNotRecharge)
	assert.Equal(t, 0.0, delta)
}
