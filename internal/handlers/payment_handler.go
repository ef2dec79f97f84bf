package handlers

import (
	"net/http"
	"time"

	"go-delivery-platform/internal/database"
	"go-delivery-platform/internal/models"
	"go-delivery-platform/internal/payments"
	"go-delivery-platform/internal/wallet"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PaymentCallbackRequest is what the gateway posts back after the payer
// completes (or abandons) a payment.
type PaymentCallbackRequest struct {
	MerchantTransactionID string  `json:"merchantTransactionId" binding:"required"`
	Status                string  `json:"status" binding:"required"` // SUCCESS or FAILED
	Amount                float64 `json:"amount"`
}

// PaymentCallback routes the gateway's result by transaction-id prefix:
// "order_" ids settle an order payment, "RECHARGE-" ids credit a restaurant
// wallet. Unknown prefixes are rejected.
func PaymentCallback(c *gin.Context) {
	var req PaymentCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid callback payload"})
		return
	}

	kind, err := payments.RouteTxnID(req.MerchantTransactionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unrecognized transaction id"})
		return
	}

	switch kind {
	case payments.TxnOrder:
		handleOrderPaymentCallback(c, req)
	case payments.TxnRecharge:
		handleRechargeCallback(c, req)
	}
}

func handleOrderPaymentCallback(c *gin.Context, req PaymentCallbackRequest) {
	var order models.Order
	err := database.DB.
		Where("payment_transaction_id = ?", req.MerchantTransactionID).
		First(&order).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found for transaction"})
		return
	}

	if req.Status != "SUCCESS" {
		c.JSON(http.StatusOK, gin.H{"message": "Payment failure recorded", "order_id": order.ID})
		return
	}

	if err := database.DB.Model(&order).Update("is_paid", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment recorded", "order_id": order.ID})
}

func handleRechargeCallback(c *gin.Context, req PaymentCallbackRequest) {
	restaurantID, err := payments.ParseRechargeTxnID(req.MerchantTransactionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed recharge transaction id"})
		return
	}

	if req.Status != "SUCCESS" {
		c.JSON(http.StatusOK, gin.H{"message": "Payment failure recorded"})
		return
	}

	// Gateway-verified recharge: credit immediately, no manual approval leg.
	// The ledger entry is still written so finance sees every movement.
	txn, err := wallet.NewGatewayRecharge(restaurantID, req.Amount, req.MerchantTransactionID, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recharge amount must be positive"})
		return
	}

	tx := database.DB.Begin()
	if err := tx.Create(&txn).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record recharge"})
		return
	}

	err = tx.Model(&models.Restaurant{}).
		Where("id = ?", restaurantID).
		Update("credit_balance", gorm.Expr("credit_balance + ?", req.Amount)).Error
	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to credit restaurant"})
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Recharge credited", "transaction_id": txn.ID})
}
