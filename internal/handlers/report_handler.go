package handlers

import (
	"net/http"
	"time"

	"go-delivery-platform/internal/database"
	"go-delivery-platform/internal/models"

	"github.com/gin-gonic/gin"
)

// ReportData defines the shape of the restaurant dashboard response
type ReportData struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalNetProfit float64 `json:"total_net_profit"`
	TotalOrders    int64   `json:"total_orders"`
	PendingOrders  int64   `json:"pending_orders"`
	TopSelling     []struct {
		ItemName string  `json:"item_name"`
		Sold     int     `json:"sold"`
		Revenue  float64 `json:"revenue"`
	} `json:"top_selling"`
	RecentOrders []models.Order `json:"recent_orders"`
}

// --- GET: Restaurant dashboard report ---
func GetRestaurantReport(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c)
	if !ok {
		return
	}

	// Default to the last 30 days
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	summary, err := database.GetRestaurantReport(restaurant.ID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate report"})
		return
	}

	data := ReportData{
		TotalRevenue:   summary.TotalRevenue,
		TotalNetProfit: summary.TotalNetProfit,
		TotalOrders:    summary.TotalOrders,
		PendingOrders:  summary.PendingOrders,
	}

	// Top 5 best sellers
	err = database.DB.Table("order_items").
		Select("order_items.name as item_name, SUM(order_items.quantity) as sold, SUM(order_items.quantity * order_items.unit_price) as revenue").
		Joins("JOIN orders ON order_items.order_id = orders.id").
		Where("orders.restaurant_id = ?", restaurant.ID).
		Group("order_items.name").
		Order("sold desc").
		Limit(5).
		Scan(&data.TopSelling).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top selling items"})
		return
	}

	// Last 10 orders, newest first
	err = database.DB.Preload("Items").
		Where("restaurant_id = ?", restaurant.ID).
		Order("created_at desc").
		Limit(10).
		Find(&data.RecentOrders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent orders"})
		return
	}

	c.JSON(http.StatusOK, data)
}
