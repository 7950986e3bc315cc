package v1

import (
	"github.com/gin-gonic/gin"

	appctx "barberdesk/internal/core/context"
	"barberdesk/internal/domain/auth"
	"barberdesk/internal/domain/catalogs/barber"
	"barberdesk/internal/domain/catalogs/client"
	"barberdesk/internal/domain/catalogs/offering"
	"barberdesk/internal/domain/catalogs/product"
	"barberdesk/internal/domain/payroll"
	"barberdesk/internal/domain/reports"
	"barberdesk/internal/domain/sales"
	"barberdesk/internal/domain/scheduling"
	"barberdesk/internal/infrastructure/http/v1/handlers"
	"barberdesk/internal/infrastructure/http/v1/middleware"
	"barberdesk/internal/infrastructure/storage/postgres"
	"barberdesk/internal/infrastructure/storage/postgres/auth_repo"
	"barberdesk/internal/infrastructure/storage/postgres/catalog_repo"
	"barberdesk/internal/infrastructure/storage/postgres/payroll_repo"
	"barberdesk/internal/infrastructure/storage/postgres/report_repo"
	"barberdesk/internal/infrastructure/storage/postgres/sales_repo"
	"barberdesk/internal/infrastructure/storage/postgres/schedule_repo"
	"barberdesk/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (health checks and repos).
	Pool *postgres.Pool

	// TxManager runs repository work in transactions.
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// JWTService issues and validates access tokens.
	JWTService *auth.JWTService
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	base := handlers.NewBaseHandler()
	txm := cfg.TxManager

	// Repositories
	clientRepo := catalog_repo.NewClientRepo(txm)
	barberRepo := catalog_repo.NewBarberRepo(txm)
	offeringRepo := catalog_repo.NewOfferingRepo(txm)
	productRepo := catalog_repo.NewProductRepo(txm)
	userRepo := auth_repo.NewUserRepo(txm)
	saleRepo := sales_repo.NewSaleRepo(txm)
	apptRepo := schedule_repo.NewAppointmentRepo(txm)
	policyRepo := payroll_repo.NewPolicyRepo(txm)
	adjustmentRepo := payroll_repo.NewAdjustmentRepo(txm)
	calculationRepo := payroll_repo.NewCalculationRepo(txm)
	reportRepo := report_repo.NewReportRepo(txm)

	// Services
	authService := auth.NewService(userRepo, cfg.JWTService)
	clientService := client.NewService(clientRepo, txm)
	barberService := barber.NewService(barberRepo, txm)
	offeringService := offering.NewService(offeringRepo, txm)
	productService := product.NewService(productRepo, txm)
	saleService := sales.NewService(saleRepo, productRepo, txm)
	scheduleService := scheduling.NewService(apptRepo, txm)
	policyService := payroll.NewPolicyService(policyRepo, txm)
	adjustmentService := payroll.NewAdjustmentService(adjustmentRepo, txm)
	settlementService := payroll.NewSettlementService(
		calculationRepo,
		adjustmentRepo,
		policyRepo,
		payroll.NewAggregator(saleRepo),
		txm,
	)
	reportService := reports.NewService(reportRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(base, authService)
	clientHandler := handlers.NewClientHandler(base, clientService)
	barberHandler := handlers.NewBarberHandler(base, barberService)
	offeringHandler := handlers.NewOfferingHandler(base, offeringService)
	productHandler := handlers.NewProductHandler(base, productService)
	saleHandler := handlers.NewSaleHandler(base, saleService)
	apptHandler := handlers.NewAppointmentHandler(base, scheduleService)
	payrollHandler := handlers.NewPayrollHandler(base, policyService, settlementService, adjustmentService)
	reportsHandler := handlers.NewReportsHandler(base, reportService)

	// API v1
	api := router.Group("/api/v1")
	{
		// Public
		api.POST("/auth/login", authHandler.Login)

		// Protected
		protected := api.Group("")
		protected.Use(middleware.Auth(cfg.JWTService))

		protected.GET("/auth/me", authHandler.Me)

		// Catalogs
		catalog := protected.Group("/catalog")
		{
			RegisterCatalogRoutes(catalog.Group("/clients"), clientHandler)
			RegisterCatalogRoutes(catalog.Group("/services"), offeringHandler)
			RegisterCatalogRoutes(catalog.Group("/products"), productHandler)

			barbers := catalog.Group("/barbers")
			RegisterCatalogRoutes(barbers, barberHandler)
			barbers.POST("/:id/active", middleware.RequireRole(appctx.RoleAdmin), barberHandler.SetActive)
		}

		// Appointments
		appts := protected.Group("/appointments")
		{
			appts.GET("", apptHandler.List)
			appts.POST("", apptHandler.Create)
			appts.GET("/today", apptHandler.Today)
			appts.GET("/:id", apptHandler.Get)
			appts.PATCH("/:id/status", apptHandler.ChangeStatus)
			appts.DELETE("/:id", apptHandler.Delete)
		}

		// Sales
		salesGroup := protected.Group("/sales")
		{
			salesGroup.GET("", saleHandler.List)
			salesGroup.POST("", saleHandler.Create)
			salesGroup.GET("/current-month", saleHandler.CurrentMonth)
			salesGroup.GET("/:id", saleHandler.Get)
		}

		// Payroll (admin only: money leaves the till here)
		payrollGroup := protected.Group("/payroll")
		payrollGroup.Use(middleware.RequireRole(appctx.RoleAdmin))
		{
			payrollGroup.GET("/policies", payrollHandler.ListPolicies)
			payrollGroup.POST("/policies", payrollHandler.ActivatePolicy)
			payrollGroup.GET("/policies/active/:barberId", payrollHandler.GetActivePolicy)

			payrollGroup.POST("/recalculate", payrollHandler.Recalculate)
			payrollGroup.GET("/calculations", payrollHandler.ListCalculations)
			payrollGroup.GET("/calculations/:id", payrollHandler.GetCalculation)
			payrollGroup.POST("/calculations/:id/pay", payrollHandler.MarkPaid)

			payrollGroup.GET("/adjustments", payrollHandler.ListAdjustments)
			payrollGroup.POST("/adjustments", payrollHandler.CreateAdjustment)
			payrollGroup.DELETE("/adjustments/:id", payrollHandler.DeleteAdjustment)
		}

		// Reports (admin only)
		reportsGroup := protected.Group("/reports")
		reportsGroup.Use(middleware.RequireRole(appctx.RoleAdmin))
		{
			reportsGroup.GET("/payroll-summary", reportsHandler.PayrollSummary)
			reportsGroup.GET("/dashboard", reportsHandler.Dashboard)
		}
	}

	return router
}
