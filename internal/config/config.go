package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode  string
	Port     string
	Storage  StorageConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Auth     AuthConfig
	Payment  PaymentConfig
}

// StorageConfig selects the repository backing
type StorageConfig struct {
	// Driver is "mysql" or "memory". The memory driver keeps every record in
	// process memory and is the default for local development.
	Driver string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	RefreshSecret    string
	AccessTokenMins  int
	RefreshTokenDays int
}

// CookieConfig holds cookie configuration
type CookieConfig struct {
	Secure   bool
	SameSite string
	Domain   string
}

// AuthConfig holds registration and login rules
type AuthConfig struct {
	// EmailDomain is the institutional suffix required for registration.
	EmailDomain string
	// LoginDelay and RegisterDelay simulate upstream latency. Zero in tests.
	LoginDelay    time.Duration
	RegisterDelay time.Duration
}

// PaymentConfig holds payment-simulation settings
type PaymentConfig struct {
	// ProcessingDelay simulates the payment processor round trip.
	ProcessingDelay time.Duration
	// SuccessRate is the probability of a simulated payment succeeding.
	SuccessRate float64
	// Session and Semester label newly created transactions.
	Session  string
	Semester string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	driver := strings.TrimSpace(getEnv("STORAGE_DRIVER", "memory"))
	if driver != "memory" && driver != "mysql" {
		return nil, fmt.Errorf("invalid STORAGE_DRIVER: '%s' (must be 'memory' or 'mysql')", driver)
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		Storage:  StorageConfig{Driver: driver},
		Database: loadDatabaseConfig(appMode),
		JWT:      loadJWTConfig(appMode),
		Cookie:   loadCookieConfig(appMode),
		Auth:     loadAuthConfig(),
		Payment:  loadPaymentConfig(),
	}

	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s, STORAGE: %s]", appMode, driver)
	return config, nil
}

// loadDatabaseConfig loads database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "bellspay"),
	}
}

// loadJWTConfig loads JWT config based on mode
func loadJWTConfig(mode string) JWTConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	accessMins, _ := strconv.Atoi(getEnv("ACCESS_TOKEN_MINUTES", "15"))
	refreshDays, _ := strconv.Atoi(getEnv("REFRESH_TOKEN_DAYS", "7"))

	return JWTConfig{
		Secret:           getEnv(prefix+"JWT_SECRET", "default_secret"),
		RefreshSecret:    getEnv(prefix+"JWT_REFRESH_SECRET", "default_refresh_secret"),
		AccessTokenMins:  accessMins,
		RefreshTokenDays: refreshDays,
	}
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	secure, _ := strconv.ParseBool(getEnv(prefix+"COOKIE_SECURE", "false"))

	return CookieConfig{
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

// loadAuthConfig loads registration and login rules
func loadAuthConfig() AuthConfig {
	return AuthConfig{
		EmailDomain:   getEnv("STUDENT_EMAIL_DOMAIN", "@bellsuniversity.edu.ng"),
		LoginDelay:    getDurationMs("LOGIN_DELAY_MS", 1500),
		RegisterDelay: getDurationMs("REGISTER_DELAY_MS", 2000),
	}
}

// loadPaymentConfig loads payment-simulation settings
func loadPaymentConfig() PaymentConfig {
	rate, err := strconv.ParseFloat(getEnv("PAYMENT_SUCCESS_RATE", "0.95"), 64)
	if err != nil || rate < 0 || rate > 1 {
		rate = 0.95
	}

	return PaymentConfig{
		ProcessingDelay: getDurationMs("PAYMENT_PROCESSING_DELAY_MS", 3000),
		SuccessRate:     rate,
		Session:         getEnv("ACADEMIC_SESSION", "2024/2025"),
		Semester:        getEnv("ACADEMIC_SEMESTER", "Second Semester"),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationMs reads a millisecond env value into a time.Duration
func getDurationMs(key string, defaultMs int) time.Duration {
	ms, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultMs)))
	if err != nil || ms < 0 {
		ms = defaultMs
	}
	return time.Duration(ms) * time.Millisecond
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// UsesDatabase returns true when the mysql storage driver is selected
func (c *Config) UsesDatabase() bool {
	return c.Storage.Driver == "mysql"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		// Default production origins
		return "https://pay.bellsuniversity.edu.ng"
	}
	return origins
}
