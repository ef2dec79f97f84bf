package handlers

import (
	"net/http"
	"time"

	"go-delivery-platform/internal/billing"
	"go-delivery-platform/internal/database"
	"go-delivery-platform/internal/lifecycle"
	"go-delivery-platform/internal/models"
	"go-delivery-platform/internal/notify"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// --- GET: Orders waiting for a rider, oldest first ---
func ListAvailableOrders(c *gin.Context) {
	var orders []models.Order
	err := database.DB.Preload("Items").
		Where("status = ? AND rider_id IS NULL", lifecycle.StatusSearchingForRider).
		Order("created_at asc").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// --- PUT: Claim an order ---
// Compare-and-swap: the update only lands if the order is still
// SEARCHING_FOR_RIDER with no rider set. Zero rows affected means another
// rider won the race - that is "order no longer available", not a fault.
func ClaimOrder(c *gin.Context) {
	riderID := currentUserID(c)

	result := database.DB.Model(&models.Order{}).
		Where("id = ? AND status = ? AND rider_id IS NULL", c.Param("id"), lifecycle.StatusSearchingForRider).
		Updates(map[string]interface{}{
			"rider_id":   riderID,
			"status":     string(lifecycle.StatusRiderAssigned),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to claim order"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Order no longer available. Try another one."})
		return
	}

	var order models.Order
	if err := database.DB.Preload("Items").First(&order, c.Param("id")).Error; err == nil {
		Notifier.PublishOrderEvent(c.Request.Context(), notify.OrderEvent{
			Event:        notify.EventRiderClaimed,
			OrderID:      order.ID,
			ShortID:      order.ShortID,
			RestaurantID: order.RestaurantID,
			Status:       order.Status,
		})
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order accepted! Check Active tab for details"})
}

// --- GET: The rider's in-flight orders ---
func GetActiveDeliveries(c *gin.Context) {
	var orders []models.Order
	err := database.DB.Preload("Items").
		Where("rider_id = ? AND status IN ?", currentUserID(c),
			[]string{string(lifecycle.StatusRiderAssigned), string(lifecycle.StatusOutForDelivery)}).
		Order("created_at asc").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deliveries"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// --- PUT: Advance the rider's order one step along the delivery chain ---
// RIDER_ASSIGNED -> OUT_FOR_DELIVERY (pickup), OUT_FOR_DELIVERY -> DELIVERED.
func AdvanceDelivery(c *gin.Context) {
	riderID := currentUserID(c)

	var order models.Order
	if err := database.DB.Where("rider_id = ?", riderID).First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	current, err := lifecycle.Parse(order.Status)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Order has an invalid status; contact support"})
		return
	}
	if !lifecycle.InDeliveryFlow(current) {
		c.JSON(http.StatusConflict, gin.H{"error": "Order is not in your delivery flow"})
		return
	}

	next, hasNext := lifecycle.Next(current)
	if !hasNext {
		c.JSON(http.StatusConflict, gin.H{"error": "Order has no next status"})
		return
	}
	if err := lifecycle.CanTransition(current, next); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Model(&order).Update("status", string(next)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	// Flat payout lands in the rider wallet on completion
	if next == lifecycle.StatusDelivered {
		err := database.DB.Model(&models.User{}).
			Where("id = ?", riderID).
			Update("wallet_balance", gorm.Expr("wallet_balance + ?", billing.RiderFlatPayout)).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to credit rider payout"})
			return
		}
	}

	Notifier.PublishOrderEvent(c.Request.Context(), notify.OrderEvent{
		Event:        notify.EventStatusChanged,
		OrderID:      order.ID,
		ShortID:      order.ShortID,
		RestaurantID: order.RestaurantID,
		Status:       string(next),
	})

	c.JSON(http.StatusOK, gin.H{"message": "Order updated", "status": next})
}

// --- GET: Rider earnings summary ---
func GetRiderEarnings(c *gin.Context) {
	riderID := currentUserID(c)

	delivered, err := database.CountDeliveredByRider(riderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch earnings"})
		return
	}

	var rider models.User
	if err := database.DB.First(&rider, riderID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deliveries_completed": delivered,
		"total_earnings":       billing.RiderEarnings(delivered),
		"per_delivery":         billing.RiderFlatPayout,
		"wallet_balance":       rider.WalletBalance,
	})
}

// --- PUT: Toggle the rider's online flag ---
func SetRiderOnline(c *gin.Context) {
	var req struct {
		Online bool `json:"online"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	err := database.DB.Model(&models.User{}).
		Where("id = ?", currentUserID(c)).
		Update("is_rider_online", req.Online).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"online": req.Online})
}
