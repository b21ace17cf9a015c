package main

import (
	"admin-backend/internal/handler"
	mid "admin-backend/internal/middleware"
	"admin-backend/internal/model"
	"admin-backend/pkg/config"
	"admin-backend/pkg/database"
	"admin-backend/pkg/jwtutil"
	"admin-backend/pkg/logger"
	"admin-backend/pkg/storage"
	"admin-backend/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration (reads .env when present)
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(&logger.LogConfig{
		Level:       appConfig.Log.Level,
		Environment: appConfig.Server.Env,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting admin backend", appConfig.LogConfig()...)

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if _, err := database.InitDB(&appConfig.DB); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	if err := database.MigrateModels(
		&model.Admin{},
		&model.Customer{},
		&model.Address{},
		&model.ContactPerson{},
		&model.Product{},
		&model.ProductCategory{},
		&model.UsageUnit{},
		&model.State{},
		&model.District{},
		&model.Taluka{},
		&model.City{},
	); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize file storage with the configured root
	store, err := storage.New(appConfig.Upload.Dir)
	if err != nil {
		log.Fatal("Failed to initialize file storage", zap.Error(err))
	}
	handler.Init(store)
	log.Info("File storage initialized", zap.String("root", store.Root()))

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)
	e.Use(logger.Middleware())

	// Uploaded images are served back statically by generated filename
	e.Static("/uploads", store.Root())

	// Metrics and health endpoints
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", handler.Health)

	// Auth routes
	authAPI := e.Group("/api/auth")
	authAPI.POST("/signup", handler.SignUp)
	authAPI.POST("/signin", handler.SignIn)

	// Product routes - behind the bearer-token gate
	productAPI := e.Group("/api/product", mid.AuthMiddleware)
	productAPI.GET("/getAllProducts", handler.GetProducts)
	productAPI.GET("/getCategories", handler.GetCategories)
	productAPI.GET("/getUsageUnits", handler.GetUsageUnits)
	productAPI.GET("/getProductById/:id", handler.GetProductByID)
	productAPI.POST("/addProduct", handler.AddProduct)
	productAPI.PUT("/updateProduct/:id", handler.UpdateProduct)
	productAPI.DELETE("/deleteProduct/:id", handler.DeleteProduct)

	// Customer routes - behind the bearer-token gate
	customerAPI := e.Group("/api/customer", mid.AuthMiddleware)
	customerAPI.GET("/getAllCustomers", handler.GetAllCustomers)
	customerAPI.GET("/states", handler.GetStates)
	customerAPI.GET("/districts/:state_id", handler.GetDistricts)
	customerAPI.GET("/talukas/:district_id", handler.GetTalukas)
	customerAPI.GET("/cities/:taluka_id", handler.GetCities)
	customerAPI.POST("/addCustomer", handler.AddCustomer)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
