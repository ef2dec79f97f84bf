package main

import (
	"log"
	"os"
	"time"

	"go-delivery-platform/internal/database"
	"go-delivery-platform/internal/handlers"
	"go-delivery-platform/internal/middleware"
	"go-delivery-platform/internal/models"
	"go-delivery-platform/internal/notify"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: No .env file found")
	}

	database.Connect()

	// Redis backs the live-dashboard event channel. The platform still takes
	// orders without it; dashboards just fall back to polling.
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		handlers.Notifier = notify.NewPublisher(client)
		log.Println("✅ Connected order events to Redis at " + addr)
	} else {
		log.Println("⚠️ REDIS_ADDR not set. Live dashboard events are disabled.")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "online"}) })
	r.POST("/login", handlers.Login)
	r.Static("/uploads", "./uploads")

	// --- FEATURE FLAG: Self-registration (customers and riders) ---
	if os.Getenv("ALLOW_REGISTRATION") == "true" {
		r.POST("/register", handlers.Register)
		log.Println("⚠️ WARNING: Registration route is OPEN. Disable this in production!")
	} else {
		log.Println("🔒 Registration route is safely DISABLED.")
	}

	// --- PUBLIC STOREFRONT ---
	r.GET("/restaurants", handlers.ListRestaurants)
	r.GET("/r/:slug", handlers.GetRestaurantBySlug)
	r.GET("/restaurants/:id/reviews", handlers.GetRestaurantReviews)

	// Gateway callback comes in unauthenticated and is routed by txn prefix
	r.POST("/payments/callback", handlers.PaymentCallback)

	// --- PROTECTED ROUTES ---
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		// Any authenticated party to an order may view it
		api.GET("/orders/:id", handlers.GetOrder)
		api.GET("/orders/:id/qr", handlers.GetOrderQR)

		// CUSTOMER
		customer := api.Group("/")
		customer.Use(middleware.RequireRole(models.RoleCustomer))
		{
			customer.POST("/checkout", handlers.ProcessCheckout)
			customer.POST("/coupons/apply", handlers.ApplyCoupon)
			customer.GET("/orders", handlers.GetMyOrders)
			customer.POST("/reviews", handlers.SubmitReview)
		}

		// RESTAURANT OWNER
		partner := api.Group("/partner")
		partner.Use(middleware.RequireRole(models.RoleRestaurant))
		{
			partner.GET("/menu", handlers.GetMyMenu)
			partner.POST("/menu", handlers.AddMenuItem)
			partner.PUT("/menu/:id", handlers.UpdateMenuItem)
			partner.DELETE("/menu/:id", handlers.DeleteMenuItem)
			partner.PUT("/menu/:id/loot", handlers.ToggleLootMode)
			partner.POST("/upload", handlers.UploadImage)

			partner.GET("/coupons", handlers.GetMyCoupons)
			partner.POST("/coupons", handlers.CreateCoupon)
			partner.PUT("/coupons/:id/toggle", handlers.ToggleCoupon)
			partner.DELETE("/coupons/:id", handlers.DeleteCoupon)

			partner.GET("/orders", handlers.GetRestaurantOrders)
			partner.PUT("/orders/:id/advance", handlers.AdvanceOrderStatus)
			partner.PUT("/orders/:id/request-rider", handlers.RequestRider)

			partner.GET("/wallet", handlers.GetWalletOverview)
			partner.POST("/wallet/recharge", handlers.RequestRecharge)
			partner.POST("/wallet/recharge/initiate", handlers.InitiateRechargePayment)

			partner.GET("/reports", handlers.GetRestaurantReport)
		}

		// RIDER
		rider := api.Group("/rider")
		rider.Use(middleware.RequireRole(models.RoleRider))
		{
			rider.GET("/orders/available", handlers.ListAvailableOrders)
			rider.PUT("/orders/:id/claim", handlers.ClaimOrder)
			rider.GET("/orders/active", handlers.GetActiveDeliveries)
			rider.PUT("/orders/:id/advance", handlers.AdvanceDelivery)
			rider.GET("/earnings", handlers.GetRiderEarnings)
			rider.PUT("/online", handlers.SetRiderOnline)
		}

		// SUPER ADMIN
		admin := api.Group("/admin")
		admin.Use(middleware.RequireRole(models.RoleSuperAdmin))
		{
			admin.POST("/restaurants", handlers.OnboardRestaurant)
			admin.PUT("/restaurants/:id/active", handlers.SetRestaurantActive)
			admin.GET("/finance", handlers.GetFinanceDashboard)
			admin.GET("/finance/transactions", handlers.ListWalletTransactions)
			admin.PUT("/finance/transactions/:id/resolve", handlers.ResolveRecharge)
		}
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	log.Println("🚀 Server starting on " + baseURL)
	if err := r.Run(":8080"); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
