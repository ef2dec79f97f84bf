package wallet

import (
	"errors"
	"time"

	"go-delivery-platform/internal/models"
)

var (
	// ErrAlreadyResolved - the transaction left PENDING earlier; APPROVED and
	// REJECTED are terminal, so a second resolution must not touch the balance.
	ErrAlreadyResolved = errors.New("wallet transaction already resolved")

	// ErrInvalidAmount - recharge amounts must be positive.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrNotRecharge - only WALLET_RECHARGE transactions go through the
	// approval flow; fee deductions are recorded terminally.
	ErrNotRecharge = errors.New("transaction is not a recharge request")
)

// Decision is an admin's verdict on a pending recharge.
type Decision string

const (
	Approve Decision = "APPROVED"
	Reject  Decision = "REJECTED"
)

// CanAcceptOrders is the prospective suspension gate: a restaurant whose
// credit has fallen below its floor stops receiving NEW orders, but already
// recorded deductions stand.
func CanAcceptOrders(restaurant models.Restaurant) bool {
	return restaurant.CreditBalance >= restaurant.MinBalanceLimit
}

// NewFeeDeduction builds the automatic order-triggered ledger entry. It is
// always permitted, even when it pushes the balance below the floor -
// suspension is enforced prospectively, not retroactively.
func NewFeeDeduction(restaurantID uint, amount float64, notes string) models.WalletTransaction {
	return models.WalletTransaction{
		RestaurantID: restaurantID,
		Amount:       -amount,
		Type:         models.TxnFeeDeduction,
		Status:       models.TxnApproved,
		Notes:        notes,
	}
}

// NewRechargeRequest builds a PENDING recharge. It never mutates balance;
// only an admin approval does.
func NewRechargeRequest(restaurantID uint, amount float64, proofURL, notes string) (models.WalletTransaction, error) {
	if amount <= 0 {
		return models.WalletTransaction{}, ErrInvalidAmount
	}
	return models.WalletTransaction{
		RestaurantID:  restaurantID,
		Amount:        amount,
		Type:          models.TxnWalletRecharge,
		Status:        models.TxnPending,
		ProofImageURL: proofURL,
		Notes:         notes,
	}, nil
}

// NewGatewayRecharge builds the ledger entry for a recharge the payment
// gateway already verified: no manual approval leg, it lands APPROVED. The
// amount comes from an unauthenticated callback, so it is validated here -
// anything non-positive would debit the restaurant through the credit leg.
func NewGatewayRecharge(restaurantID uint, amount float64, txnID string, now time.Time) (models.WalletTransaction, error) {
	if amount <= 0 {
		return models.WalletTransaction{}, ErrInvalidAmount
	}
	return models.WalletTransaction{
		RestaurantID: restaurantID,
		Amount:       amount,
		Type:         models.TxnWalletRecharge,
		Status:       models.TxnApproved,
		Notes:        "Gateway recharge " + txnID,
		ApprovedAt:   &now,
	}, nil
}

// Resolve applies an admin decision to a pending recharge, stamping approver
// and timestamp. It returns the balance delta the caller must apply to the
// restaurant (zero on rejection). Resolving anything but a PENDING recharge
// fails without side effects.
func Resolve(txn *models.WalletTransaction, decision Decision, approverID uint, now time.Time) (balanceDelta float64, err error) {
	if txn.Type != models.TxnWalletRecharge {
		return 0, ErrNotRecharge
	}
	if txn.Status != models.TxnPending {
		return 0, ErrAlreadyResolved
	}

	txn.Status = string(decision)
	txn.ApprovedBy = &approverID
	txn.ApprovedAt = &now

	if decision == Approve {
		return txn.Amount, nil
	}
	return 0, nil
}
