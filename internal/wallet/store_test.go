package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"go-delivery-platform/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Restaurant{}))
	return db
}

func TestChargeRestaurantCredit_DeductionsAccumulate(t *testing.T) {
	db := newTestDB(t)

	restaurant := models.Restaurant{Name: "Biryani House", Slug: "biryani-house", CreditBalance: 100}
	require.NoError(t, db.Create(&restaurant).Error)

	// Two checkouts that each loaded the restaurant at balance 100 before
	// charging. The decrements must stack to 40, not overwrite to 70.
	var staleA, staleB models.Restaurant
	require.NoError(t, db.First(&staleA, restaurant.ID).Error)
	require.NoError(t, db.First(&staleB, restaurant.ID).Error)

	require.NoError(t, ChargeRestaurantCredit(db, staleA.ID, 30))
	require.NoError(t, ChargeRestaurantCredit(db, staleB.ID, 30))

	var got models.Restaurant
	require.NoError(t, db.First(&got, restaurant.ID).Error)
	assert.Equal(t, 40.0, got.CreditBalance)
}

func TestChargeRestaurantCredit_MayCrossTheFloor(t *testing.T) {
	db := newTestDB(t)

	restaurant := models.Restaurant{Name: "Chaat Corner", Slug: "chaat-corner", CreditBalance: 20, MinBalanceLimit: 0}
	require.NoError(t, db.Create(&restaurant).Error)

	// An already-accepted order's fee stands even when it overdraws the
	// credit; only NEW orders get blocked by the suspension gate.
	require.NoError(t, ChargeRestaurantCredit(db, restaurant.ID, 30))

	var got models.Restaurant
	require.NoError(t, db.First(&got, restaurant.ID).Error)
	assert.Equal(t, -10.0, got.CreditBalance)
	assert.False(t, CanAcceptOrders(got))
}

func TestSpendCustomerBalance(t *testing.T) {
	tests := []struct {
		name        string
		balance     float64
		amount      float64
		wantErr     error
		wantBalance float64
	}{
		{"partial spend", 100, 40, nil, 60},
		{"spend to zero", 100, 100, nil, 0},
		{"overdraw refused", 100, 100.01, ErrInsufficientBalance, 100},
		{"zero amount is a no-op", 100, 0, nil, 100},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			db := newTestDB(t)

			customer := models.User{Username: "asha", Role: models.RoleCustomer, WalletBalance: testCase.balance}
			require.NoError(t, db.Create(&customer).Error)

			err := SpendCustomerBalance(db, customer.ID, testCase.amount)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}

			var got models.User
			require.NoError(t, db.First(&got, customer.ID).Error)
			assert.Equal(t, testCase.wantBalance, got.WalletBalance)
		})
	}
}

func TestSpendCustomerBalance_SpendsAccumulate(t *testing.T) {
	db := newTestDB(t)

	customer := models.User{Username: "ravi", Role: models.RoleCustomer, WalletBalance: 100}
	require.NoError(t, db.Create(&customer).Error)

	// Two wallet orders placed back to back, both priced against the same
	// loaded balance of 100
	var staleA, staleB models.User
	require.NoError(t, db.First(&staleA, customer.ID).Error)
	require.NoError(t, db.First(&staleB, customer.ID).Error)

	require.NoError(t, SpendCustomerBalance(db, staleA.ID, 40))
	require.NoError(t, SpendCustomerBalance(db, staleB.ID, 40))

	var got models.User
	require.NoError(t, db.First(&got, customer.ID).Error)
	assert.Equal(t, 20.0, got.WalletBalance)

	// The third spend finds only 20 left and is refused
	err := SpendCustomerBalance(db, customer.ID, 40)
	assert.ErrorIs(t, err, ErrInsufficientBalance)

	require.NoError(t, db.First(&got, customer.ID).Error)
	assert.Equal(t, 20.0, got.WalletBalance)
}
