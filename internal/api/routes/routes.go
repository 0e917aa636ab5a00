package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tablelink/restaurant-backend/internal/api/handlers"
	"github.com/tablelink/restaurant-backend/internal/api/middleware"
	"github.com/tablelink/restaurant-backend/internal/config"
	"github.com/tablelink/restaurant-backend/internal/services"
	"github.com/tablelink/restaurant-backend/pkg/logger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RateLimitMiddleware(cfg))

	// Initialize services
	emailService := services.NewEmailService(cfg)
	smsService := services.NewSMSService(cfg)
	notificationService := services.NewNotificationService(emailService, smsService)
	authService := services.NewAuthService(db, cfg.JWTSecret)
	adminAuthService := services.NewAdminAuthService(db, cfg.JWTSecret)
	reservationService := services.NewReservationService(db)
	reviewService := services.NewReviewService(db)
	menuService := services.NewMenuService(db)
	eventService := services.NewEventService(db)
	s3Service := services.NewS3Service(cfg.S3Region, cfg.S3BucketName, cfg.S3AccessKey, cfg.S3SecretKey)
	imageService := services.NewImageService(db, s3Service)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	adminAuthHandler := handlers.NewAdminAuthHandler(adminAuthService)
	reservationHandler := handlers.NewReservationHandler(reservationService, notificationService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	menuHandler := handlers.NewMenuHandler(menuService)
	eventHandler := handlers.NewEventHandler(eventService)
	imageHandler := handlers.NewImageHandler(imageService)
	notificationHandler := handlers.NewNotificationHandler(emailService, smsService)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "message": "Server is running"})
	})

	// API routes
	api := router.Group("/api")

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.GET("/profile", middleware.AuthMiddleware(cfg), authHandler.GetProfile)
	}

	// Reservation routes (customer)
	reservations := api.Group("/reservations", middleware.AuthMiddleware(cfg))
	{
		reservations.POST("", reservationHandler.CreateReservation)
		reservations.GET("", reservationHandler.ListReservations)
		reservations.DELETE("/:id", reservationHandler.CancelReservation)
	}

	// Review routes
	reviews := api.Group("/reviews")
	{
		reviews.GET("", reviewHandler.GetReviews)
		reviews.GET("/statistics", reviewHandler.GetStatistics)
		reviews.POST("", middleware.AuthMiddleware(cfg), reviewHandler.CreateReview)
		reviews.PATCH("/:id", middleware.AuthMiddleware(cfg), reviewHandler.UpdateReview)
		reviews.DELETE("/:id", middleware.AuthMiddleware(cfg), reviewHandler.DeleteReview)
	}

	// Public catalog routes
	api.GET("/menu", menuHandler.GetMenu)
	api.GET("/events", eventHandler.GetEvents)
	api.GET("/images", imageHandler.GetImages)

	// Internal notification endpoints
	api.POST("/send-email", notificationHandler.SendEmail)
	api.POST("/send-sms", notificationHandler.SendSMS)

	// Admin routes
	api.POST("/admin/auth/login", adminAuthHandler.Login)
	admin := api.Group("/admin", middleware.AdminGate(cfg))
	{
		admin.GET("/menu/categories", menuHandler.GetCategories)
		admin.POST("/menu/categories", menuHandler.CreateCategory)
		admin.PUT("/menu/categories/:id", menuHandler.UpdateCategory)
		admin.DELETE("/menu/categories/:id", menuHandler.DeleteCategory)

		admin.GET("/menu/items", menuHandler.GetItems)
		admin.POST("/menu/items", menuHandler.CreateItem)
		admin.PUT("/menu/items/:id", menuHandler.UpdateItem)
		admin.DELETE("/menu/items/:id", menuHandler.DeleteItem)

		admin.GET("/events", eventHandler.GetEvents)
		admin.POST("/events", eventHandler.CreateEvent)
		admin.PUT("/events/:id", eventHandler.UpdateEvent)
		admin.DELETE("/events/:id", eventHandler.DeleteEvent)

		admin.GET("/images", imageHandler.GetImages)
		admin.POST("/images", imageHandler.UploadImage)
		admin.PUT("/images/:id/primary", imageHandler.SetPrimary)
		admin.DELETE("/images/:id", imageHandler.DeleteImage)
	}

	logger.Info("Routes initialized successfully")
}
