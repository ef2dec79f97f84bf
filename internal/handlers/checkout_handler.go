package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"go-delivery-platform/internal/billing"
	"go-delivery-platform/internal/database"
	"go-delivery-platform/internal/lifecycle"
	"go-delivery-platform/internal/models"
	"go-delivery-platform/internal/notify"
	"go-delivery-platform/internal/payments"
	"go-delivery-platform/internal/utils"
	"go-delivery-platform/internal/wallet"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// CheckoutRequest defines what the customer frontend sends us
type CheckoutRequest struct {
	RestaurantID uint `json:"restaurant_id" binding:"required"`
	Items        []struct {
		MenuItemID uint `json:"menu_item_id"`
		Quantity   int  `json:"quantity"`
	} `json:"items" binding:"required"`
	CouponCode      string `json:"coupon_code"`
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	GPSCoordinates  string `json:"gps_coordinates"`
	VoiceNoteURL    string `json:"voice_note_url"`
	PaymentMethod   string `json:"payment_method" binding:"required"`
	UseWallet       bool   `json:"use_wallet"`
}

// ProcessCheckout prices the cart, freezes the bill and creates the order in
// status PENDING. All monetary fields are computed here once; nothing is
// recomputed later in the order's life.
func ProcessCheckout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}
	switch req.PaymentMethod {
	case models.PaymentPrepaidUPI, models.PaymentCODCash, models.PaymentCODUPIScan:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment method"})
		return
	}

	customerID := currentUserID(c)

	var restaurant models.Restaurant
	if err := database.DB.Where("is_active = ?", true).First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	// Suspension gate: prepaid credit below the floor blocks NEW orders.
	if !wallet.CanAcceptOrders(restaurant) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Restaurant is not accepting orders right now"})
		return
	}

	var customer models.User
	if err := database.DB.First(&customer, customerID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
		return
	}

	tx := database.DB.Begin()

	var cartSubtotal float64
	var orderItems []models.OrderItem

	for _, line := range req.Items {
		if line.Quantity <= 0 {
			tx.Rollback()
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item quantity must be positive"})
			return
		}

		var item models.MenuItem
		// Lock the row so loot stock cannot be oversold by concurrent carts
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("restaurant_id = ? AND is_available = ?", restaurant.ID, true).
			First(&item, line.MenuItemID).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Item %d is not available", line.MenuItemID)})
			return
		}

		if item.IsClearance {
			if item.StockRemaining < line.Quantity {
				tx.Rollback()
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Only %d left of %s", item.StockRemaining, item.Name)})
				return
			}
			item.StockRemaining -= line.Quantity
			if item.StockRemaining == 0 {
				item.IsClearance = false
			}
			if err := tx.Save(&item).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
				return
			}
		}

		cartSubtotal += item.SellingPrice * float64(line.Quantity)

		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: item.ID,
			Name:       item.Name,
			UnitPrice:  item.SellingPrice,
			Quantity:   line.Quantity,
			IsMystery:  item.IsMystery,
		})
	}

	// Coupon is validated against the PRE-discount cart subtotal
	var discount float64
	var couponCode string
	if req.CouponCode != "" {
		coupon, err := billing.EvaluateCoupon(dbCouponLookup{}, restaurant.ID, req.CouponCode, cartSubtotal)
		if err != nil {
			tx.Rollback()
			var belowMin *billing.BelowMinimumError
			switch {
			case errors.Is(err, billing.ErrCouponNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon code not found or expired"})
			case errors.As(err, &belowMin):
				c.JSON(http.StatusBadRequest, gin.H{"error": belowMin.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate coupon"})
			}
			return
		}
		discount = coupon.DiscountValue
		couponCode = coupon.Code
	}

	deliveryFee := billing.ComputeDeliveryFee(restaurant, cartSubtotal-discount)

	bill := billing.ComputeBill(cartSubtotal, deliveryFee, discount, customer.WalletBalance, req.UseWallet, billing.GSTConfigFor(restaurant))

	netProfit := billing.ComputeNetProfit(restaurant, orderItems, deliveryFee)

	order := models.Order{
		ShortID:         utils.NewShortOrderID(),
		RestaurantID:    restaurant.ID,
		CustomerID:      customer.ID,
		Status:          string(lifecycle.StatusPending),
		PaymentMethod:   req.PaymentMethod,
		DeliveryAddress: req.DeliveryAddress,
		GPSCoordinates:  req.GPSCoordinates,
		VoiceNoteURL:    req.VoiceNoteURL,
		CouponCode:      couponCode,
		DiscountAmount:  bill.DiscountAmount,

		SubtotalBeforeGST: bill.SubtotalBeforeGST,
		FoodGSTAmount:     bill.FoodGSTAmount,
		DeliveryGSTAmount: bill.DeliveryGSTAmount,
		TotalGSTAmount:    bill.TotalGSTAmount,
		CGSTAmount:        bill.CGSTAmount,
		SGSTAmount:        bill.SGSTAmount,

		TotalAmount:        bill.GrandTotal,
		DeliveryFeeCharged: bill.DeliveryFeeAfterGST,
		WalletDeduction:    bill.WalletDeduction,
		AmountToPay:        bill.AmountToPay,
		NetProfit:          netProfit,

		Items: orderItems, // GORM will insert these with the order
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	// Spend the customer's wallet credit
	if err := wallet.SpendCustomerBalance(tx, customer.ID, bill.WalletDeduction); err != nil {
		tx.Rollback()
		if errors.Is(err, wallet.ErrInsufficientBalance) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient wallet balance"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deduct wallet balance"})
		}
		return
	}

	// Record the platform fee against the restaurant's prepaid credit.
	// Always permitted, even below the floor - suspension only blocks future orders.
	feeTxn := wallet.NewFeeDeduction(restaurant.ID, netProfit, "Order "+order.ShortID)
	if err := tx.Create(&feeTxn).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record platform fee"})
		return
	}
	if err := wallet.ChargeRestaurantCredit(tx, restaurant.ID, netProfit); err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record platform fee"})
		return
	}

	// Prepaid orders get a gateway transaction id before the customer leaves
	var paymentRedirect string
	if req.PaymentMethod == models.PaymentPrepaidUPI {
		txnID := payments.NewOrderTxnID(order.ID)
		if err := tx.Model(&order).Update("payment_transaction_id", txnID).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare payment"})
			return
		}
		initiator := payments.Initiator{BaseURL: baseURL()}
		paymentRedirect = initiator.Initiate(txnID, bill.AmountToPay, customer.Phone)
	}

	tx.Commit()

	Notifier.PublishOrderEvent(c.Request.Context(), notify.OrderEvent{
		Event:        notify.EventOrderPlaced,
		OrderID:      order.ID,
		ShortID:      order.ShortID,
		RestaurantID: restaurant.ID,
		Status:       order.Status,
	})

	// Owner notification is manual: we hand back a wa.me link pre-filled with
	// the order summary and the customer clicks it.
	message := notify.WhatsAppMessage(notify.OrderSummary{
		ShortID:        order.ShortID,
		CustomerName:   customer.FullName,
		CustomerPhone:  customer.Phone,
		Items:          orderItems,
		CouponCode:     couponCode,
		DiscountAmount: bill.DiscountAmount,
		Subtotal:       bill.SubtotalAfterGST,
		DeliveryFee:    bill.DeliveryFeeAfterGST,
		Total:          bill.AmountToPay,
		IsPrepaid:      req.PaymentMethod == models.PaymentPrepaidUPI,
		VoiceNoteURL:   req.VoiceNoteURL,
		GPSCoordinates: req.GPSCoordinates,
	})

	response := gin.H{
		"message":       "Order placed!",
		"order_id":      order.ID,
		"short_id":      order.ShortID,
		"bill":          bill,
		"whatsapp_link": notify.WhatsAppLink(restaurant.OwnerPhone, message),
	}
	if paymentRedirect != "" {
		response["payment_redirect"] = paymentRedirect
	}
	if req.PaymentMethod == models.PaymentPrepaidUPI {
		response["upi_link"] = payments.GenerateUPIDeepLink(restaurant.UPIID, restaurant.Name, bill.AmountToPay, order.ShortID)
	}

	c.JSON(http.StatusOK, response)
}

func baseURL() string {
	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return base
}
