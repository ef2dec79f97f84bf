package handlers

import (
	"errors"
	"net/http"
	"strings"

	"go-delivery-platform/internal/billing"
	"go-delivery-platform/internal/database"
	"go-delivery-platform/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// dbCouponLookup is the gorm-backed coupon collaborator for checkout.
type dbCouponLookup struct{}

func (dbCouponLookup) ActiveCoupon(restaurantID uint, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := database.DB.
		Where("restaurant_id = ? AND code = ? AND is_active = ?", restaurantID, code, true).
		First(&coupon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

// --- GET: Owner's coupons ---
func GetMyCoupons(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c)
	if !ok {
		return
	}

	var coupons []models.Coupon
	if err := database.DB.Where("restaurant_id = ?", restaurant.ID).Find(&coupons).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupons"})
		return
	}

	c.JSON(http.StatusOK, coupons)
}

type CreateCouponRequest struct {
	Code          string  `json:"code" binding:"required"`
	DiscountValue float64 `json:"discount_value" binding:"required"`
	MinOrderValue float64 `json:"min_order_value"`
}

// --- POST: Create a coupon (code stored uppercase) ---
func CreateCoupon(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c)
	if !ok {
		return
	}

	var req CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if req.DiscountValue <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Discount must be greater than zero"})
		return
	}

	coupon := models.Coupon{
		RestaurantID:  restaurant.ID,
		Code:          strings.ToUpper(strings.TrimSpace(req.Code)),
		DiscountValue: req.DiscountValue,
		MinOrderValue: req.MinOrderValue,
		IsActive:      true,
	}

	if err := database.DB.Create(&coupon).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon code already exists for this restaurant"})
		return
	}

	c.JSON(http.StatusCreated, coupon)
}

// --- PUT: Toggle a coupon's active flag ---
func ToggleCoupon(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c)
	if !ok {
		return
	}

	var coupon models.Coupon
	if err := database.DB.Where("restaurant_id = ?", restaurant.ID).First(&coupon, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
		return
	}

	if err := database.DB.Model(&coupon).Update("is_active", !coupon.IsActive).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coupon"})
		return
	}

	c.JSON(http.StatusOK, coupon)
}

// --- DELETE: Remove a coupon ---
func DeleteCoupon(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c)
	if !ok {
		return
	}

	result := database.DB.Where("restaurant_id = ?", restaurant.ID).Delete(&models.Coupon{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted successfully"})
}

type ApplyCouponRequest struct {
	RestaurantID uint    `json:"restaurant_id" binding:"required"`
	Code         string  `json:"code" binding:"required"`
	CartSubtotal float64 `json:"cart_subtotal" binding:"required"`
}

// --- POST: Validate a coupon before checkout (customer) ---
// Pure validation; nothing is recorded until the order is placed.
func ApplyCoupon(c *gin.Context) {
	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	coupon, err := billing.EvaluateCoupon(dbCouponLookup{}, req.RestaurantID, req.Code, req.CartSubtotal)
	if err != nil {
		var belowMin *billing.BelowMinimumError
		switch {
		case errors.Is(err, billing.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon code not found or expired"})
		case errors.As(err, &belowMin):
			c.JSON(http.StatusBadRequest, gin.H{"error": belowMin.Error(), "min_order_value": belowMin.MinOrderValue})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate coupon"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":     coupon.Code,
		"discount": coupon.DiscountValue,
	})
}
