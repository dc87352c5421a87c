package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bells-pay/internal/adapters/http/middleware"
	"bells-pay/internal/adapters/http/routes"
	"bells-pay/internal/adapters/persistence/memory"
	"bells-pay/internal/adapters/persistence/models"
	"bells-pay/internal/adapters/persistence/repositories"
	"bells-pay/internal/config"
	"bells-pay/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// @title Bells Pay API
// @version 1.0
// @description Fee payment portal API for Bells University students

// @contact.name API Support
// @contact.email support@bellsuniversity.edu.ng

// @host pay.bellsuniversity.edu.ng
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Build the repository registry for the selected storage driver
	repos, err := buildRegistry(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize storage: %v", err)
	}
	defer config.CloseDatabase()

	// Seed fee catalog (and the demo student in dev mode)
	seeder := config.NewSeeder(repos, cfg)
	if err := seeder.Run(context.Background()); err != nil {
		log.Printf("⚠️ Warning: Failed to seed data: %v", err)
	}

	// Start cron for refresh token cleanup
	cronService := services.NewCronService(repos.RefreshTokens)
	if err := cronService.Start(); err != nil {
		log.Fatalf("❌ Failed to start cron scheduler: %v", err)
	}
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Bells Pay API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, repos, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// buildRegistry wires the repositories for the configured storage driver
func buildRegistry(cfg *config.Config) (*repositories.Registry, error) {
	if !cfg.UsesDatabase() {
		log.Println("✅ Using in-memory storage")
		return memory.NewRegistry(), nil
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		return nil, err
	}

	if err := models.AutoMigrate(db); err != nil {
		return nil, err
	}
	log.Println("✅ Database migration completed")

	return repositories.NewGormRegistry(db), nil
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
