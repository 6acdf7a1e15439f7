package main

import (
	"net/http"
	"time"

	"github.com/bosesayankolkata/dairyexpress/internal/config"
	"github.com/bosesayankolkata/dairyexpress/internal/conversation"
	"github.com/bosesayankolkata/dairyexpress/internal/database"
	"github.com/bosesayankolkata/dairyexpress/internal/handlers"
	"github.com/bosesayankolkata/dairyexpress/internal/logger"
	"github.com/bosesayankolkata/dairyexpress/internal/middleware"
	"github.com/bosesayankolkata/dairyexpress/internal/redis"
	"github.com/bosesayankolkata/dairyexpress/internal/repository"
	"github.com/bosesayankolkata/dairyexpress/internal/services"
	"github.com/bosesayankolkata/dairyexpress/pkg/whatsapp"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL, time.Duration(cfg.ConversationTTL)*time.Second)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize WhatsApp client
	whatsappClient := whatsapp.NewClient(cfg.WhapiAPIURL, cfg.WhapiToken)

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(db)
	productTypeRepo := repository.NewProductTypeRepository(db)
	characteristicRepo := repository.NewCharacteristicRepository(db)
	sizeRepo := repository.NewSizeRepository(db)
	pincodeRepo := repository.NewPinCodeRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)
	personRepo := repository.NewDeliveryPersonRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Initialize services
	authService := services.NewAuthService(adminRepo, personRepo, cfg.JWTSecret)
	catalogService := services.NewCatalogService(categoryRepo, productTypeRepo, characteristicRepo, sizeRepo, pincodeRepo)
	orderService := services.NewOrderService(orderRepo, customerRepo)
	accountService := services.NewAccountService(personRepo, authService)
	deliveryService := services.NewDeliveryService(deliveryRepo, personRepo)

	engine := conversation.NewEngine(redisClient, catalogService, orderService, cfg.SupportPhone, log)

	// Initialize handlers
	webhookHandler := handlers.NewWebhookHandler(engine, whatsappClient, log)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(catalogService, accountService, orderService, deliveryService)
	personHandler := handlers.NewDeliveryPersonHandler(accountService, deliveryService)

	// Setup routes
	router := gin.Default()
	router.Use(middleware.CORS(cfg.CORSOrigins))

	// WhatsApp webhook
	router.POST("/api/whatsapp/webhook", webhookHandler.HandleWebhook)

	api := router.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Milk Delivery API"})
		})
		api.POST("/login", authHandler.Login)
		api.POST("/init-admin", authHandler.InitAdmin)

		admin := api.Group("/admin", middleware.Authenticate(authService), middleware.RequireUserType(services.UserTypeAdmin))
		{
			admin.POST("/delivery-persons", adminHandler.CreateDeliveryPerson)
			admin.POST("/delivery-persons/simple", adminHandler.CreateSimpleDeliveryPerson)
			admin.GET("/delivery-persons", adminHandler.GetDeliveryPersons)
			admin.PUT("/delivery-persons/:id/reset-password", adminHandler.ResetDeliveryPersonPassword)

			admin.POST("/deliveries", adminHandler.CreateDelivery)
			admin.GET("/deliveries", adminHandler.GetDeliveries)
			admin.PUT("/deliveries/:id/reassign", adminHandler.ReassignDelivery)

			admin.POST("/categories", adminHandler.CreateCategory)
			admin.GET("/categories", adminHandler.GetCategories)
			admin.PUT("/categories/:id", adminHandler.UpdateCategory)

			admin.POST("/product-types", adminHandler.CreateProductType)
			admin.GET("/product-types", adminHandler.GetProductTypes)

			admin.POST("/characteristics", adminHandler.CreateCharacteristic)
			admin.GET("/characteristics", adminHandler.GetCharacteristics)

			admin.POST("/sizes", adminHandler.CreateSize)
			admin.GET("/sizes", adminHandler.GetSizes)

			admin.POST("/pincodes", adminHandler.CreatePinCode)
			admin.GET("/pincodes", adminHandler.GetPinCodes)
			admin.PUT("/pincodes/:id", adminHandler.UpdatePinCode)

			admin.GET("/customers", adminHandler.GetCustomers)
			admin.GET("/orders", adminHandler.GetOrders)
			admin.GET("/search", adminHandler.Search)

			admin.POST("/send-whatsapp", webhookHandler.SendMessage)
		}

		person := api.Group("/delivery", middleware.Authenticate(authService), middleware.RequireUserType(services.UserTypeDeliveryPerson))
		{
			person.GET("/profile", personHandler.GetProfile)
			person.GET("/deliveries", personHandler.GetDeliveries)
			person.PUT("/deliveries/:id/status", personHandler.UpdateDeliveryStatus)
			person.GET("/stats", personHandler.GetStats)
		}
	}

	// Start server
	log.Info("Server starting", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
