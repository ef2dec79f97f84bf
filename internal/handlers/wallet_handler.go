package handlers

import (
	"errors"
	"net/http"

	"go-delivery-platform/internal/database"
	"go-delivery-platform/internal/models"
	"go-delivery-platform/internal/payments"
	"go-delivery-platform/internal/wallet"

	"github.com/gin-gonic/gin"
)

// --- GET: Owner's credit balance and ledger ---
func GetWalletOverview(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c)
	if !ok {
		return
	}

	var transactions []models.WalletTransaction
	err := database.DB.
		Where("restaurant_id = ?", restaurant.ID).
		Order("created_at desc").
		Limit(50).
		Find(&transactions).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"credit_balance":    restaurant.CreditBalance,
		"min_balance_limit": restaurant.MinBalanceLimit,
		"accepting_orders":  wallet.CanAcceptOrders(restaurant),
		"transactions":      transactions,
	})
}

type RechargeRequest struct {
	Amount        float64 `json:"amount" binding:"required"`
	ProofImageURL string  `json:"proof_image_url"`
	Notes         string  `json:"notes"`
}

// --- POST: Submit a recharge request with payment proof ---
// Creates a PENDING ledger entry; the balance only moves on admin approval.
func RequestRecharge(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c)
	if !ok {
		return
	}

	var req RechargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	txn, err := wallet.NewRechargeRequest(restaurant.ID, req.Amount, req.ProofImageURL, req.Notes)
	if err != nil {
		if errors.Is(err, wallet.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be greater than zero"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recharge request"})
		return
	}

	if err := database.DB.Create(&txn).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recharge request"})
		return
	}

	c.JSON(http.StatusCreated, txn)
}

// --- POST: Pay a recharge through the gateway instead of uploading proof ---
// Returns the redirect URL; the credit lands when the callback reports SUCCESS.
func InitiateRechargePayment(c *gin.Context) {
	restaurant, ok := ownedRestaurant(c)
	if !ok {
		return
	}

	var req struct {
		Amount float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be greater than zero"})
		return
	}

	txnID := payments.NewRechargeTxnID(restaurant.ID)
	initiator := payments.Initiator{BaseURL: baseURL()}

	c.JSON(http.StatusOK, gin.H{
		"transaction_id": txnID,
		"amount":         req.Amount,
		"redirect_url":   initiator.Initiate(txnID, req.Amount, restaurant.OwnerPhone),
	})
}
