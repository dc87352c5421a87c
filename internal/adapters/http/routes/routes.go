package routes

import (
	"bells-pay/internal/adapters/http/handlers"
	"bells-pay/internal/adapters/http/middleware"
	"bells-pay/internal/adapters/persistence/repositories"
	"bells-pay/internal/config"
	"bells-pay/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, repos *repositories.Registry, cfg *config.Config) {
	// Initialize services
	authService := services.NewAuthService(repos.Users, repos.RefreshTokens, cfg, nil)
	paymentService := services.NewPaymentService(repos.FeeTypes, repos.Transactions, repos.Users, cfg, nil, nil)
	transactionService := services.NewTransactionService(repos.Transactions, repos.Users)
	dashboardService := services.NewDashboardService(repos.Users, repos.Transactions)
	userService := services.NewUserService(repos.Users)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	userHandler := handlers.NewUserHandler(userService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAPIV1Routes(apiV1, healthHandler, authHandler, paymentHandler,
		transactionHandler, dashboardHandler, userHandler, cfg)
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(
	router fiber.Router,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	paymentHandler *handlers.PaymentHandler,
	transactionHandler *handlers.TransactionHandler,
	dashboardHandler *handlers.DashboardHandler,
	userHandler *handlers.UserHandler,
	cfg *config.Config,
) {
	// API Info
	router.Get("/", healthHandler.APIInfo)

	// Auth routes (public)
	authRoutes := router.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Fee catalog (Authenticated)
	feeRoutes := router.Group("/fees")
	feeRoutes.Use(middleware.AuthMiddleware(cfg))
	feeRoutes.Get("/", paymentHandler.ListFees)

	// Payment routes (Authenticated)
	paymentRoutes := router.Group("/payments")
	paymentRoutes.Use(middleware.AuthMiddleware(cfg))
	paymentRoutes.Post("/", middleware.PaymentRateLimiter(), paymentHandler.Pay)

	// Transaction routes (Authenticated)
	transactionRoutes := router.Group("/transactions")
	transactionRoutes.Use(middleware.AuthMiddleware(cfg))
	transactionRoutes.Get("/", transactionHandler.List)
	transactionRoutes.Get("/:id", transactionHandler.Get)
	transactionRoutes.Get("/:id/receipt", transactionHandler.Receipt)

	// Dashboard routes (Authenticated)
	dashboardRoutes := router.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	dashboardRoutes.Get("/", dashboardHandler.GetDashboard)

	// Profile routes (Authenticated)
	profileRoutes := router.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware(cfg))
	profileRoutes.Get("/", userHandler.GetProfile)
	profileRoutes.Put("/", userHandler.UpdateProfile)
	profileRoutes.Put("/password", userHandler.ChangePassword)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (rate-limited against brute force)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}
