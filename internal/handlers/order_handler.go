package handlers

import (
	"net/http"

	"go-delivery-platform/internal/database"
	"go-delivery-platform/internal/lifecycle"
	"go-delivery-platform/internal/models"
	"go-delivery-platform/internal/notify"
	"go-delivery-platform/internal/payments"

	"github.com/gin-gonic/gin"
)

// --- GET: Customer's order history ---
func GetMyOrders(c *gin.Context) {
	var orders []models.Order
	err := database.DB.Preload("Items").
		Where("customer_id = ?", currentUserID(c)).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// --- GET: One order, visible to its customer, restaurant or rider ---
func GetOrder(c *gin.Context) {
	order, ok := loadOrderForViewer(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":          order,
		"display_status": lifecycle.Display(order.Status),
	})
}

// --- GET: UPI QR for COD_UPI_SCAN collection at the door ---
func GetOrderQR(c *gin.Context) {
	order, ok := loadOrderForViewer(c)
	if !ok {
		return
	}

	var restaurant models.Restaurant
	if err := database.DB.First(&restaurant, order.RestaurantID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch restaurant"})
		return
	}

	png, err := payments.GenerateUPIQR(restaurant.UPIID, restaurant.Name, order.AmountToPay, order.ShortID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// --- GET: Restaurant order board ---
func GetRestaurantOrders(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c)
	if !ok {
		return
	}

	query := database.DB.Preload("Items").Where("restaurant_id = ?", restaurant.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// --- PUT: Advance an order one step along the kitchen chain ---
// The next status is computed server-side; the board only says "advance".
func AdvanceOrderStatus(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c)
	if !ok {
		return
	}

	var order models.Order
	if err := database.DB.Where("restaurant_id = ?", restaurant.ID).First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	current, err := lifecycle.Parse(order.Status)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Order has an invalid status; contact support"})
		return
	}
	if !lifecycle.InKitchenFlow(current) {
		c.JSON(http.StatusConflict, gin.H{"error": "Order is no longer in the kitchen flow"})
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

	Notifier.PublishOrderEvent(c.Request.Context(), notify.OrderEvent{
		Event:        notify.EventStatusChanged,
		OrderID:      order.ID,
		ShortID:      order.ShortID,
		RestaurantID: order.RestaurantID,
		Status:       string(next),
	})

	c.JSON(http.StatusOK, gin.H{"message": "Order updated", "status": next})
}

// --- PUT: Hand a READY order over to the rider pool ---
// Crossover from the kitchen chain into the delivery chain: only a READY
// order may start SEARCHING_FOR_RIDER.
func RequestRider(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c)
	if !ok {
		return
	}

	var order models.Order
	if err := database.DB.Where("restaurant_id = ?", restaurant.ID).First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if order.Status != string(lifecycle.StatusReady) {
		c.JSON(http.StatusConflict, gin.H{"error": "Only READY orders can be sent to riders"})
		return
	}

	if err := database.DB.Model(&order).Update("status", string(lifecycle.StatusSearchingForRider)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	Notifier.PublishOrderEvent(c.Request.Context(), notify.OrderEvent{
		Event:        notify.EventStatusChanged,
		OrderID:      order.ID,
		ShortID:      order.ShortID,
		RestaurantID: order.RestaurantID,
		Status:       string(lifecycle.StatusSearchingForRider),
	})

	c.JSON(http.StatusOK, gin.H{"message": "Searching for a rider", "status": lifecycle.StatusSearchingForRider})
}

// loadOrderForViewer fetches an order and checks the caller is a party to it.
func loadOrderForViewer(c *gin.Context) (models.Order, bool) {
	var order models.Order
	if err := database.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return models.Order{}, false
	}

	userID := currentUserID(c)
	role := c.GetString("role")

	switch role {
	case models.RoleSuperAdmin:
		return order, true
	case models.RoleCustomer:
		if order.CustomerID == userID {
			return order, true
		}
	case models.RoleRider:
		if order.RiderID != nil && *order.RiderID == userID {
			return order, true
		}
	case models.RoleRestaurant:
		var restaurant models.Restaurant
		if err := database.DB.Where("owner_id = ?", userID).First(&restaurant).Error; err == nil && restaurant.ID == order.RestaurantID {
			return order, true
		}
	}

	c.JSON(http.StatusForbidden, gin.H{"error": "You do not have access to this order"})
	return models.Order{}, false
}
