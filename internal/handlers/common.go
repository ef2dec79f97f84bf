package handlers

import (
	"net/http"

	"go-delivery-platform/internal/database"
	"go-delivery-platform/internal/models"
	"go-delivery-platform/internal/notify"

	"github.com/gin-gonic/gin"
)

// Notifier publishes order change events for live dashboards.
// Wired in main; nil-safe, so tests and redis-less deployments still work.
var Notifier *notify.Publisher

// currentUserID reads the authenticated user id set by AuthMiddleware.
func currentUserID(c *gin.Context) uint {
	return c.MustGet("userID").(uint)
}

// ownedRestaurant loads the restaurant belonging to the authenticated owner.
// Writes the error response itself and returns false when there is none.
func ownedRestaurant(c *gin.Context) (models.Restaurant, bool) {
	var restaurant models.Restaurant
	if err := database.DB.Where("owner_id = ?", currentUserID(c)).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant linked to this account"})
		return models.Restaurant{}, false
	}
	return restaurant, true
}
