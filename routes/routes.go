package routes

import (
	"NileDialysis/cache"
	"NileDialysis/config"
	"NileDialysis/controllers"
	"NileDialysis/handlers"
	"NileDialysis/middlewares"
	"NileDialysis/repositories"
	"NileDialysis/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply shared API token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Api-Token"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories
	patientRepo := repositories.NewPatientRepository(db, cache)
	staffRepo := repositories.NewStaffRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	machineRepo := repositories.NewMachineRepository(db, cache)
	maintenanceRepo := repositories.NewMaintenanceRepository(db)
	labRepo := repositories.NewLabRepository(db, cache)
	scheduleRepo := repositories.NewScheduleRepository(db)
	rosterRepo := repositories.NewRosterRepository(db)
	supplyRepo := repositories.NewSupplyRepository(db, cache)
	supplierRepo := repositories.NewSupplierRepository(db)
	orderRepo := repositories.NewPurchaseOrderRepository(db, cache)
	billingRepo := repositories.NewBillingRepository(db, cache)
	reportRepo := repositories.NewReportRepository(db)
	statisticsRepo := repositories.NewStatisticsRepository(db)
	waterLogRepo := repositories.NewWaterLogRepository(db)
	userRepo := repositories.NewUserRepository(db)
	dataRepo := repositories.NewDataRepository(db, config.BackupDir)

	// Initialize services
	patientService := services.NewPatientService(patientRepo)
	staffService := services.NewStaffService(staffRepo)
	sessionService := services.NewSessionService(sessionRepo)
	machineService := services.NewMachineService(machineRepo, maintenanceRepo)
	labService := services.NewLabService(labRepo)
	scheduleService := services.NewScheduleService(scheduleRepo, rosterRepo)
	inventoryService := services.NewInventoryService(supplyRepo, supplierRepo, orderRepo)
	billingService := services.NewBillingService(billingRepo)
	reportService := services.NewReportService(reportRepo, statisticsRepo, waterLogRepo)
	userService := services.NewUserService(userRepo)
	dataService := services.NewDataService(dataRepo, sessionRepo)

	// Register routes
	controllers.SetupAPIRoutes(router, &controllers.APIHandlers{
		Patient:   handlers.NewPatientHandler(patientService),
		Staff:     handlers.NewStaffHandler(staffService),
		Session:   handlers.NewSessionHandler(sessionService),
		Machine:   handlers.NewMachineHandler(machineService),
		Lab:       handlers.NewLabHandler(labService),
		Schedule:  handlers.NewScheduleHandler(scheduleService),
		Inventory: handlers.NewInventoryHandler(inventoryService),
		Billing:   handlers.NewBillingHandler(billingService),
		Report:    handlers.NewReportHandler(reportService),
		Data:      handlers.NewDataHandler(dataService),
	})

	authController := controllers.NewAuthController(handlers.NewUserHandler(userService))
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
