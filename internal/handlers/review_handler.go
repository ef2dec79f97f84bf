package handlers

import (
	"net/http"

	"go-delivery-platform/internal/database"
	"go-delivery-platform/internal/lifecycle"
	"go-delivery-platform/internal/models"

	"github.com/gin-gonic/gin"
)

type SubmitReviewRequest struct {
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	OrderID      *uint  `json:"order_id"`
	Rating       int    `json:"rating" binding:"required"`
	ReviewText   string `json:"review_text"`
}

// --- POST: Submit a rating for a restaurant ---
// When tied to an order, the order must belong to the reviewer and be DELIVERED.
func SubmitReview(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	customerID := currentUserID(c)

	if req.OrderID != nil {
		var order models.Order
		if err := database.DB.First(&order, *req.OrderID).Error; err != nil ||
			order.CustomerID != customerID || order.RestaurantID != req.RestaurantID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order does not match this review"})
			return
		}
		if order.Status != string(lifecycle.StatusDelivered) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You can only review delivered orders"})
			return
		}
	}

	var restaurant models.Restaurant
	if err := database.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	review := models.Review{
		RestaurantID: req.RestaurantID,
		CustomerID:   customerID,
		OrderID:      req.OrderID,
		Rating:       req.Rating,
		ReviewText:   req.ReviewText,
	}

	tx := database.DB.Begin()

	if err := tx.Create(&review).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
		return
	}

	// Running average, updated in the same transaction
	newCount := restaurant.RatingCount + 1
	newAvg := (restaurant.RatingAvg*float64(restaurant.RatingCount) + float64(req.Rating)) / float64(newCount)
	err := tx.Model(&restaurant).Updates(map[string]interface{}{
		"rating_avg":   newAvg,
		"rating_count": newCount,
	}).Error
	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rating"})
		return
	}

	tx.Commit()

	c.JSON(http.StatusCreated, review)
}

// --- GET: A restaurant's reviews (public) ---
func GetRestaurantReviews(c *gin.Context) {
	var reviews []models.Review
	err := database.DB.
		Where("restaurant_id = ?", c.Param("id")).
		Order("created_at desc").
		Limit(50).
		Find(&reviews).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}
