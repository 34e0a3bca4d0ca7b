package main

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/ajayscafe/cafe-api/docs" // Import generated docs
	"github.com/ajayscafe/cafe-api/internal/config"
	"github.com/ajayscafe/cafe-api/internal/controllers"
	"github.com/ajayscafe/cafe-api/internal/database"
	"github.com/ajayscafe/cafe-api/internal/middleware"
	"github.com/ajayscafe/cafe-api/internal/models"
	"github.com/ajayscafe/cafe-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

var (
	db              *gorm.DB
	menuService     services.MenuService
	orderService    services.OrderService
	menuController  controllers.MenuController
	orderController controllers.OrderController
	configuration   *config.Config
)

// @title Ajay's Cafe API
// @version 1.0
// @description Menu catalog and order ledger for a small café
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	menuService = services.NewMenuService(db)
	orderService = services.NewOrderService(db)
	menuController = controllers.NewMenuController(menuService)
	orderController = controllers.NewOrderController(orderService)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %+v", conf)
	return conf
}

// setupDatabase initializes the database connection and returns a gorm.DB instance
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.FromAppConfig(conf))
	checkPanicErr(err)
	// Migrate the schema
	db.AutoMigrate(&models.MenuItem{}, &models.Order{})

	// Seed only if the menu is empty
	if conf.SeedData {
		var count int64
		db.Model(&models.MenuItem{}).Count(&count)
		if count == 0 {
			log.Info("Menu table is empty, seeding initial data")
			seedDatabase()
		} else {
			log.Info("Menu table already seeded with initial data")
		}
	}
	return db
}

// seedDatabase seeds the menu catalog with initial data
func seedDatabase() {
	items := []models.MenuItem{
		{Name: "Cappuccino", Description: "Espresso with steamed milk foam", Category: "Beverages", Price: 3.50, Popular: true},
		{Name: "Masala Chai", Description: "Spiced black tea with milk", Category: "Beverages", Price: 2.00, Popular: true},
		{Name: "Veg Sandwich", Description: "Grilled sandwich with seasonal vegetables", Category: "Snacks", Price: 4.25},
		{Name: "Margherita Pizza", Description: "Tomato, mozzarella and basil", Category: "Main Course", Price: 8.99, Popular: true},
		{Name: "Chocolate Brownie", Description: "Warm brownie with a fudge center", Category: "Desserts", Price: 3.75},
	}
	for _, item := range items {
		db.Create(&item)
	}
	log.Info("Menu seeded successfully")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	api := router.Group("/api")
	{
		menu := api.Group("/menu")
		{
			menu.GET("", menuController.GetAllMenuItems)
			menu.POST("", menuController.CreateMenuItem)
			menu.GET("/popular", menuController.GetPopularItems)
			menu.GET("/category/:category", menuController.GetMenuItemsByCategory)
			menu.GET("/:id", menuController.GetMenuItemByID)
			menu.PUT("/:id", menuController.UpdateMenuItem)
			menu.DELETE("/:id", menuController.DeleteMenuItem)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", orderController.GetAllOrders)
			orders.POST("", orderController.CreateOrder)
			orders.GET("/status/:status", orderController.GetOrdersByStatus)
			orders.GET("/:id", orderController.GetOrderByID)
			orders.PUT("/:id/status", orderController.UpdateOrderStatus)
			orders.DELETE("/:id", orderController.DeleteOrder)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "cafe-api",
	})
}
