package database

import (
	"time"

	"go-delivery-platform/internal/models"
)

// RestaurantReport holds one restaurant's dashboard numbers.
type RestaurantReport struct {
	TotalRevenue   float64
	TotalNetProfit float64
	TotalOrders    int64
	PendingOrders  int64
}

// GetRestaurantReport aggregates a restaurant's orders within a date range.
func GetRestaurantReport(restaurantID uint, start, end time.Time) (*RestaurantReport, error) {
	var result RestaurantReport

	// COALESCE ensures we get 0 instead of NULL if no orders exist
	err := DB.Model(&models.Order{}).
		Where("restaurant_id = ? AND created_at BETWEEN ? AND ?", restaurantID, start, end).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&result.TotalRevenue).Error
	if err != nil {
		return nil, err
	}

	err = DB.Model(&models.Order{}).
		Where("restaurant_id = ? AND created_at BETWEEN ? AND ?", restaurantID, start, end).
		Select("COALESCE(SUM(net_profit), 0)").
		Scan(&result.TotalNetProfit).Error
	if err != nil {
		return nil, err
	}

	err = DB.Model(&models.Order{}).
		Where("restaurant_id = ? AND created_at BETWEEN ? AND ?", restaurantID, start, end).
		Count(&result.TotalOrders).Error
	if err != nil {
		return nil, err
	}

	err = DB.Model(&models.Order{}).
		Where("restaurant_id = ? AND status = ?", restaurantID, "PENDING").
		Count(&result.PendingOrders).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// FinanceReport holds the platform-wide ledger totals for the admin screen.
type FinanceReport struct {
	TotalRecharges  float64
	TotalDeductions float64
	PendingRequests int64
	PlatformRevenue float64
	DeliveredOrders int64
}

// GetFinanceReport aggregates approved ledger movement and order revenue.
func GetFinanceReport() (*FinanceReport, error) {
	var result FinanceReport

	err := DB.Model(&models.WalletTransaction{}).
		Where("type = ? AND status = ?", models.TxnWalletRecharge, models.TxnApproved).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&result.TotalRecharges).Error
	if err != nil {
		return nil, err
	}

	err = DB.Model(&models.WalletTransaction{}).
		Where("type = ? AND status = ?", models.TxnFeeDeduction, models.TxnApproved).
		Select("COALESCE(SUM(-amount), 0)").
		Scan(&result.TotalDeductions).Error
	if err != nil {
		return nil, err
	}

	err = DB.Model(&models.WalletTransaction{}).
		Where("status = ?", models.TxnPending).
		Count(&result.PendingRequests).Error
	if err != nil {
		return nil, err
	}

	err = DB.Model(&models.Order{}).
		Select("COALESCE(SUM(net_profit), 0)").
		Scan(&result.PlatformRevenue).Error
	if err != nil {
		return nil, err
	}

	err = DB.Model(&models.Order{}).
		Where("status = ?", "DELIVERED").
		Count(&result.DeliveredOrders).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// CountDeliveredByRider backs the rider earnings screen.
func CountDeliveredByRider(riderID uint) (int64, error) {
	var count int64
	err := DB.Model(&models.Order{}).
		Where("rider_id = ? AND status = ?", riderID, "DELIVERED").
		Count(&count).Error
	return count, err
}
