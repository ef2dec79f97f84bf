package handlers

import (
	"net/http"

	"go-delivery-platform/internal/database"
	"go-delivery-platform/internal/models"
	"go-delivery-platform/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// --- GET: List active restaurants (public storefront) ---
// Suspended and deactivated tenants are filtered out here, so customers never
// reach a checkout that would be refused.
func ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant

	result := database.DB.Where("is_active = ?", true).Find(&restaurants)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch restaurants"})
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

// --- GET: One restaurant by slug, with its menu ---
func GetRestaurantBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var restaurant models.Restaurant
	if err := database.DB.Where("slug = ? AND is_active = ?", slug, true).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var menu []models.MenuItem
	if err := database.DB.Where("restaurant_id = ? AND is_available = ?", restaurant.ID, true).Find(&menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant, "menu": menu})
}

type OnboardRestaurantRequest struct {
	Name                  string   `json:"name" binding:"required"`
	OwnerUsername         string   `json:"owner_username" binding:"required"`
	OwnerPassword         string   `json:"owner_password" binding:"required"`
	OwnerPhone            string   `json:"owner_phone" binding:"required"`
	UPIID                 string   `json:"upi_id" binding:"required"`
	TechFee               float64  `json:"tech_fee"`
	DeliveryFee           float64  `json:"delivery_fee"`
	FreeDeliveryThreshold *float64 `json:"free_delivery_threshold"`
	MinBalanceLimit       float64  `json:"min_balance_limit"`
	GSTEnabled            bool     `json:"gst_enabled"`
	GSTNumber             string   `json:"gst_number"`
	FoodGSTRate           float64  `json:"food_gst_rate"`
}

// --- POST: Onboard a new tenant (admin only) ---
// Creates the owner login and the restaurant row in one transaction.
func OnboardRestaurant(c *gin.Context) {
	var req OnboardRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	tx := database.DB.Begin()

	owner := models.User{
		Username:     req.OwnerUsername,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleRestaurant,
		Phone:        req.OwnerPhone,
	}
	if err := tx.Create(&owner).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Owner account likely already exists"})
		return
	}

	restaurant := models.Restaurant{
		OwnerID:               owner.ID,
		Name:                  req.Name,
		Slug:                  utils.Slugify(req.Name),
		OwnerPhone:            utils.FormatPhoneNumber(req.OwnerPhone),
		UPIID:                 req.UPIID,
		IsActive:              true,
		TechFee:               req.TechFee,
		DeliveryFee:           req.DeliveryFee,
		FreeDeliveryThreshold: req.FreeDeliveryThreshold,
		MinBalanceLimit:       req.MinBalanceLimit,
		GSTEnabled:            req.GSTEnabled,
		GSTNumber:             req.GSTNumber,
		IsGSTRegistered:       req.GSTNumber != "",
		FoodGSTRate:           req.FoodGSTRate,
	}
	if err := tx.Create(&restaurant).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant slug already taken"})
		return
	}

	tx.Commit()

	c.JSON(http.StatusCreated, restaurant)
}

// --- PUT: Toggle a tenant's active flag (admin only) ---
func SetRestaurantActive(c *gin.Context) {
	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	var restaurant models.Restaurant
	if err := database.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	if err := database.DB.Model(&restaurant).Update("is_active", req.IsActive).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated successfully", "restaurant": restaurant})
}
