package handlers

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"go-delivery-platform/internal/database"
	"go-delivery-platform/internal/models"

	"github.com/gin-gonic/gin"
)

// --- GET: Owner's own menu, including unavailable items ---
func GetMyMenu(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c)
	if !ok {
		return
	}

	var items []models.MenuItem
	if err := database.DB.Where("restaurant_id = ?", restaurant.ID).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
		return
	}

	c.JSON(http.StatusOK, items)
}

type AddMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	BasePrice   float64 `json:"base_price" binding:"required"`
	IsVeg       bool    `json:"is_veg"`
	IsMystery   bool    `json:"is_mystery"`
	MysteryType string  `json:"mystery_type"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

// --- POST: Add a menu item ---
// The selling price is frozen here as base price + the restaurant's tech fee;
// later tech-fee changes do not reprice existing items.
func AddMenuItem(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c)
	if !ok {
		return
	}

	var req AddMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	mysteryType := req.MysteryType
	if req.IsMystery && mysteryType == "" {
		mysteryType = models.MysteryAny
	}

	item := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Category:     req.Category,
		BasePrice:    req.BasePrice,
		SellingPrice: req.BasePrice + restaurant.TechFee,
		IsAvailable:  true,
		IsVeg:        req.IsVeg,
		IsMystery:    req.IsMystery,
		MysteryType:  mysteryType,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
	}

	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// --- PUT: Partial update of a menu item ---
func UpdateMenuItem(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c)
	if !ok {
		return
	}

	var item models.MenuItem
	if err := database.DB.Where("restaurant_id = ?", restaurant.ID).First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	// We use a map so we only update what was sent (partial update)
	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// Price fields stay frozen; repricing means recreating the item.
	delete(updateData, "base_price")
	delete(updateData, "selling_price")

	if err := database.DB.Model(&item).Updates(updateData).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated successfully", "item": item})
}

// --- DELETE: Remove a menu item ---
func DeleteMenuItem(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c)
	if !ok {
		return
	}

	result := database.DB.Where("restaurant_id = ?", restaurant.ID).Delete(&models.MenuItem{}, c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not delete menu item. It might be linked to past orders."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}

type LootToggleRequest struct {
	Enable          bool     `json:"enable"`
	StockRemaining  *int     `json:"stock_remaining"`
	LootDiscountPct *float64 `json:"loot_discount_percentage"`
}

// --- PUT: Toggle loot (clearance flash-sale) mode ---
// Loot mode cannot be switched on with zero stock.
func ToggleLootMode(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c)
	if !ok {
		return
	}

	var item models.MenuItem
	if err := database.DB.Where("restaurant_id = ?", restaurant.ID).First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req LootToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if req.StockRemaining != nil {
		if *req.StockRemaining < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Stock cannot be negative"})
			return
		}
		item.StockRemaining = *req.StockRemaining
	}

	if req.Enable && item.StockRemaining == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Set a stock quantity before enabling loot mode"})
		return
	}

	item.IsClearance = req.Enable
	if req.LootDiscountPct != nil {
		item.LootDiscountPct = req.LootDiscountPct
	}

	if err := database.DB.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update loot mode"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item":               item,
		"effective_discount": item.EffectiveLootDiscount(),
	})
}

// --- UPLOAD: Handle Image Files (menu photos, payment proofs) ---
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	// Generate a safe unique filename, e.g. "167890123_burger.jpg"
	filename := fmt.Sprintf("%d_%s", time.Now().Unix(), file.Filename)
	filepath := "./uploads/" + filename

	if err := c.SaveUploadedFile(file, filepath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
		return
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	fullURL := baseURL + "/uploads/" + filename
	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"url":     fullURL,
	})
}
