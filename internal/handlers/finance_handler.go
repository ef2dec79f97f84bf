package handlers

import (
	"errors"
	"net/http"
	"time"

	"go-delivery-platform/internal/database"
	"go-delivery-platform/internal/models"
	"go-delivery-platform/internal/wallet"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// --- GET: Admin finance dashboard ---
func GetFinanceDashboard(c *gin.Context) {
	report, err := database.GetFinanceReport()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch finance report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_recharges":  report.TotalRecharges,
		"total_deductions": report.TotalDeductions,
		"pending_requests": report.PendingRequests,
		"platform_revenue": report.PlatformRevenue,
		"delivered_orders": report.DeliveredOrders,
	})
}

// --- GET: Wallet transactions for review, optionally filtered by status ---
func ListWalletTransactions(c *gin.Context) {
	query := database.DB.Model(&models.WalletTransaction{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var transactions []models.WalletTransaction
	if err := query.Order("created_at desc").Find(&transactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

type ResolveRechargeRequest struct {
	Decision string `json:"decision" binding:"required"` // APPROVED or REJECTED
}

// --- PUT: Approve or reject a pending recharge ---
// Approval credits the restaurant inside one transaction; a second resolution
// attempt fails and the balance is never touched twice.
func ResolveRecharge(c *gin.Context) {
	var req ResolveRechargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	decision := wallet.Decision(req.Decision)
	if decision != wallet.Approve && decision != wallet.Reject {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Decision must be APPROVED or REJECTED"})
		return
	}

	tx := database.DB.Begin()

	var txn models.WalletTransaction
	// Lock the row so two admins cannot resolve the same request
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&txn, c.Param("id")).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}

	balanceDelta, err := wallet.Resolve(&txn, decision, currentUserID(c), time.Now())
	if err != nil {
		tx.Rollback()
		switch {
		case errors.Is(err, wallet.ErrAlreadyResolved):
			c.JSON(http.StatusConflict, gin.H{"error": "Transaction was already resolved"})
		case errors.Is(err, wallet.ErrNotRecharge):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only recharge requests can be resolved"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve transaction"})
		}
		return
	}

	if err := tx.Save(&txn).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		return
	}

	if balanceDelta != 0 {
		err := tx.Model(&models.Restaurant{}).
			Where("id = ?", txn.RestaurantID).
			Update("credit_balance", gorm.Expr("credit_balance + ?", balanceDelta)).Error
		if err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to credit restaurant"})
			return
		}
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Request resolved", "transaction": txn})
}
