package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/assetbook/assetbook-backend/internal/adapter/httpapi"
	"github.com/assetbook/assetbook-backend/internal/adapter/repository/postgres"
	"github.com/assetbook/assetbook-backend/internal/usecase/asset"
	"github.com/assetbook/assetbook-backend/internal/usecase/category"
	"github.com/assetbook/assetbook-backend/internal/usecase/dashboard"
	"github.com/assetbook/assetbook-backend/internal/usecase/seeder"
)

const (
	defaultAPIToken = "dev-token"
	defaultHTTPAddr = ":8080"
)

func main() {
	// Local development reads config from a .env file; in containers the
	// variables come from the environment directly
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if os.Getenv("LOG_LEVEL") == "debug" {
		logger.SetLevel(logrus.DebugLevel)
	}

	// 1. Setup Database
	dbConnStr := os.Getenv("DB_CONN_STR")
	if dbConnStr == "" {
		// If explicit string is missing, build it from individual vars (Docker friendly)
		host := os.Getenv("DB_HOST")
		if host == "" {
			host = "localhost" // Default for local run without docker
		}
		port := os.Getenv("DB_PORT")
		if port == "" {
			port = "5432"
		}
		user := os.Getenv("DB_USER")
		if user == "" {
			user = "postgres"
		}
		password := os.Getenv("DB_PASSWORD")
		if password == "" {
			password = "postgres"
		}
		dbname := os.Getenv("DB_NAME")
		if dbname == "" {
			dbname = "assetbook"
		}

		dbConnStr = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, user, password, dbname)
	}

	// Add 2-second delay to ensure Postgres is up (Simple retry)
	time.Sleep(2 * time.Second)

	db, err := postgres.NewDB(dbConnStr)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	// 2. Initialize Repositories (Postgres)
	assetRepo := postgres.NewAssetRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	maintenanceRepo := postgres.NewMaintenanceRepository(db)
	taskRepo := postgres.NewReplacementTaskRepository(db)

	// 3. Initialize Services (Use Cases)
	assetService := asset.NewAssetService(assetRepo, categoryRepo, maintenanceRepo)
	categoryService := category.NewCategoryService(categoryRepo)
	dashboardService := dashboard.NewDashboardService(assetRepo, categoryRepo)

	// Initialize Category Seeder and run it
	categorySeeder := seeder.NewCategorySeeder(categoryRepo)
	ctx := context.Background()
	if err := categorySeeder.Seed(ctx); err != nil {
		logger.WithError(err).Fatal("Failed to seed default categories")
	}
	logger.Info("Default categories seeded successfully")

	// 4. Start HTTP Server
	apiToken := os.Getenv("API_TOKEN")
	if apiToken == "" {
		apiToken = defaultAPIToken
	}

	httpAddr := os.Getenv("HTTP_ADDR")
	if httpAddr == "" {
		httpAddr = defaultHTTPAddr
	}

	server := httpapi.NewServer(
		assetService,
		categoryService,
		dashboardService,
		taskRepo,
		httpapi.Config{
			APIToken:  apiToken,
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		logger,
	)

	httpServer := &http.Server{
		Addr:         httpAddr,
		Handler:      server.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.WithField("addr", httpAddr).Info("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to serve HTTP server")
		}
	}()

	// Graceful shutdown
	waitForShutdown(httpServer, logger)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(httpServer *http.Server, logger *logrus.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.WithField("signal", sig.String()).Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("HTTP server shutdown failed")
	}
	logger.Info("HTTP server stopped")
}
