package main

import (
	"fmt"
	"os"

	"walletmate/internal/config"
	"walletmate/internal/database"
	"walletmate/internal/logger"
	"walletmate/internal/server"
	"walletmate/internal/services"
	"walletmate/internal/store"
)

// @title           WalletMate API
// @version         1.0
// @description     WalletMate is a personal budget and expense ledger that keeps each budget's spent amount in step with the expenses recorded against it.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Static API key. Omit when the server runs without API_KEY.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("database close error: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	ledger := services.NewLedger(store.New(dbManager.DB()), appConfig.RecurrencePolicy)
	router := server.NewRouter(ledger, appConfig.APIKey)

	if appConfig.APIKey == "" {
		log.Warn("API_KEY is not set, the API is open to anyone who can reach it")
	}
	log.Infow("Starting WalletMate server",
		"port", appConfig.Port,
		"db_driver", dbConfig.Driver,
		"recurrence_policy", appConfig.RecurrencePolicy,
	)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
