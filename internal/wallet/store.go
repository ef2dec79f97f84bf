package wallet

import (
	"errors"

	"gorm.io/gorm"

	"go-delivery-platform/internal/models"
)

// ErrInsufficientBalance - the customer's wallet cannot cover the deduction.
var ErrInsufficientBalance = errors.New("insufficient wallet balance")

// SpendCustomerBalance debits a customer's wallet inside the given
// transaction. The decrement is computed by the database, never from a
// previously loaded struct, so concurrent spends accumulate instead of
// overwriting each other. The balance can never go negative: a spend that
// would overdraw matches zero rows and fails.
func SpendCustomerBalance(tx *gorm.DB, customerID uint, amount float64) error {
	if amount <= 0 {
		return nil
	}

	result := tx.Model(&models.User{}).
		Where("id = ? AND wallet_balance >= ?", customerID, amount).
		Update("wallet_balance", gorm.Expr("wallet_balance - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientBalance
	}
	return nil
}

// ChargeRestaurantCredit debits the platform fee from a restaurant's prepaid
// credit, relative-update for the same reason. No floor check here: the
// deduction stands even when it pushes the balance below the floor, because
// suspension is enforced prospectively at checkout.
func ChargeRestaurantCredit(tx *gorm.DB, restaurantID uint, amount float64) error {
	return tx.Model(&models.Restaurant{}).
		Where("id = ?", restaurantID).
		Update("credit_balance", gorm.Expr("credit_balance - ?", amount)).Error
}
