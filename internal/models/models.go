package models

import (
	"time"
)

// Roles a user account can hold.
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleRestaurant = "RESTAURANT"
	RoleCustomer   = "CUSTOMER"
	RoleRider      = "RIDER"
)

// Payment methods offered at checkout.
const (
	PaymentPrepaidUPI = "PREPAID_UPI"
	PaymentCODCash    = "COD_CASH"
	PaymentCODUPIScan = "COD_UPI_SCAN"
)

// Mystery box contents tags.
const (
	MysteryVeg    = "VEG"
	MysteryNonVeg = "NON_VEG"
	MysteryAny    = "ANY"
)

// User - any actor on the platform (customer, owner, rider, admin)
type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Username      string    `gorm:"uniqueIndex;size:50" json:"username"`
	PasswordHash  string    `json:"-"` // Never return this in JSON
	Role          string    `json:"role"`
	Phone         string    `gorm:"size:20" json:"phone"`
	FullName      string    `json:"full_name"`
	WalletBalance float64   `json:"wallet_balance"` // customer/rider wallet, credited by approved recharges
	IsRiderOnline bool      `json:"is_rider_online"`
	CreatedAt     time.Time `json:"created_at"`
}

// Restaurant - a tenant on the platform
type Restaurant struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	OwnerID    uint   `json:"owner_id"`
	Name       string `json:"name"`
	Slug       string `gorm:"uniqueIndex;size:60" json:"slug"`
	OwnerPhone string `gorm:"size:20" json:"owner_phone"`
	UPIID      string `json:"upi_id"`
	IsActive   bool   `json:"is_active"`
	ImageURL   string `json:"image_url"`

	// Platform commercials
	TechFee               float64  `json:"tech_fee"`                // flat per-item commission, baked into selling price
	DeliveryFee           float64  `json:"delivery_fee"`            // flat fee per order
	FreeDeliveryThreshold *float64 `json:"free_delivery_threshold"` // nil = never free

	// Prepaid credit ledger. Balance may go negative down to MinBalanceLimit
	// before order acceptance is suspended.
	CreditBalance   float64 `json:"credit_balance"`
	MinBalanceLimit float64 `json:"min_balance_limit"`

	// GST configuration
	GSTNumber       string  `json:"gst_number"`
	IsGSTRegistered bool    `json:"is_gst_registered"`
	GSTEnabled      bool    `json:"gst_enabled"`
	FoodGSTRate     float64 `json:"food_gst_rate"`

	RatingAvg   float64   `json:"rating_avg"`
	RatingCount int       `json:"rating_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// MenuItem - a sellable unit, including flash-sale ("loot") and mystery-box variants
type MenuItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	RestaurantID uint    `gorm:"index" json:"restaurant_id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	ImageURL     string  `json:"image_url"`
	BasePrice    float64 `json:"base_price"`
	SellingPrice float64 `json:"selling_price"` // base price + restaurant tech fee, frozen at creation
	IsAvailable  bool    `json:"is_available"`
	IsVeg        bool    `json:"is_veg"`

	// Loot (clearance flash-sale) fields
	IsClearance     bool     `json:"is_clearance"`
	StockRemaining  int      `json:"stock_remaining"`
	LootDiscountPct *float64 `json:"loot_discount_percentage"` // nil = derive from base vs selling price

	// Mystery box fields
	IsMystery   bool   `json:"is_mystery"`
	MysteryType string `json:"mystery_type"` // VEG, NON_VEG or ANY

	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// EffectiveLootDiscount returns the flash-sale discount percentage: the
// explicit override when set, otherwise derived from the gap between base and
// selling price. Enabling loot mode never changes the price itself.
func (m MenuItem) EffectiveLootDiscount() float64 {
	if m.LootDiscountPct != nil {
		return *m.LootDiscountPct
	}
	if m.BasePrice <= 0 {
		return 0
	}
	return (m.BasePrice - m.SellingPrice) / m.BasePrice * 100
}

// Coupon - a restaurant-scoped absolute discount code
type Coupon struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	RestaurantID  uint      `gorm:"index:idx_coupon_code,unique" json:"restaurant_id"`
	Code          string    `gorm:"index:idx_coupon_code,unique;size:30" json:"code"` // stored uppercase
	DiscountValue float64   `json:"discount_value"`
	MinOrderValue float64   `json:"min_order_value"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

// Order - one customer purchase. Monetary fields are computed at checkout and
// never recomputed; rows are append-only for the finance audit trail.
type Order struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	ShortID      string `gorm:"uniqueIndex;size:30" json:"short_id"`
	RestaurantID uint   `gorm:"index" json:"restaurant_id"`
	CustomerID   uint   `gorm:"index" json:"customer_id"`
	RiderID      *uint  `gorm:"index" json:"rider_id"`

	Status        string `gorm:"size:30;index" json:"status"`
	PaymentMethod string `gorm:"size:20" json:"payment_method"`

	DeliveryAddress string `json:"delivery_address"`
	GPSCoordinates  string `json:"gps_coordinates"` // "lat,lng", empty if not captured
	VoiceNoteURL    string `json:"voice_note_url"`

	CouponCode     string  `json:"coupon_code"`
	DiscountAmount float64 `json:"discount_amount"`

	// GST decomposition, frozen at checkout
	SubtotalBeforeGST float64 `json:"subtotal_before_gst"`
	FoodGSTAmount     float64 `json:"food_gst_amount"`
	DeliveryGSTAmount float64 `json:"delivery_gst_amount"`
	TotalGSTAmount    float64 `json:"total_gst_amount"`
	CGSTAmount        float64 `json:"cgst_amount"`
	SGSTAmount        float64 `json:"sgst_amount"`

	TotalAmount        float64 `json:"total_amount"`
	DeliveryFeeCharged float64 `json:"delivery_fee_charged"`
	WalletDeduction    float64 `json:"wallet_deduction"`
	AmountToPay        float64 `json:"amount_to_pay"`
	NetProfit          float64 `json:"net_profit"` // platform revenue for this order

	PaymentTransactionID string `gorm:"index;size:60" json:"payment_transaction_id"`
	IsPaid               bool   `json:"is_paid"`

	Items     []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// OrderItem - a line item snapshot taken at checkout time
type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	OrderID    uint    `gorm:"index" json:"order_id"`
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"` // selling price at time of sale
	Quantity   int     `json:"quantity"`
	IsMystery  bool    `json:"is_mystery"`
}

// WalletTransaction types and statuses.
const (
	TxnFeeDeduction   = "FEE_DEDUCTION"
	TxnWalletRecharge = "WALLET_RECHARGE"

	TxnPending  = "PENDING"
	TxnApproved = "APPROVED"
	TxnRejected = "REJECTED"
)

// WalletTransaction - ledger entry against a restaurant's prepaid credit.
// Amount is signed: deductions negative, recharges positive.
type WalletTransaction struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	RestaurantID  uint       `gorm:"index" json:"restaurant_id"`
	Amount        float64    `json:"amount"`
	Type          string     `gorm:"size:20" json:"type"`
	Status        string     `gorm:"size:20;index" json:"status"`
	ProofImageURL string     `json:"proof_image_url"`
	Notes         string     `json:"notes"`
	ApprovedBy    *uint      `json:"approved_by"`
	ApprovedAt    *time.Time `json:"approved_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Review - a customer rating against a restaurant, optionally tied to an order
type Review struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RestaurantID uint      `gorm:"index" json:"restaurant_id"`
	CustomerID   uint      `json:"customer_id"`
	OrderID      *uint     `json:"order_id"`
	Rating       int       `json:"rating"` // 1..5
	ReviewText   string    `json:"review_text"`
	CreatedAt    time.Time `json:"created_at"`
}
