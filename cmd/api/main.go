package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"stealthcompany.com/carematch/internal/api"
	"stealthcompany.com/carematch/internal/dal"
	"stealthcompany.com/carematch/internal/metrics"
	"stealthcompany.com/carematch/pkg/zerolog_config"
)

func main() {
	// Load .env file if present
	err := godotenv.Load(".env")
	if err != nil {
		log.Info().Msg("Not found .env file, assuming environment variables are set")
	}

	// Get configuration from environment
	elasticsearchURL := getEnvOrDefault("ELASTICSEARCH_URL", "http://elasticsearch:9200")
	apiPort := getEnvOrDefault("API_PORT", "8080")
	apiLogLevel := getEnvOrDefault("API_LOG_LEVEL", "info")

	// Set app prefix
	zerolog_config.SetAppPrefix("carematch-api")

	// Initialize zerolog with Elasticsearch
	zerolog_config.StartupWithEnv(elasticsearchURL, "logs", apiLogLevel)

	log.Info().Msg("Starting carematch-api service")

	// Start system metrics collection
	metrics.StartSystemMetricsCollection("carematch-api")

	// Connect to Couchbase
	conn, err := dal.NewConnection()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Couchbase")
	}
	defer conn.Close()

	// Wait for dataset ingestion to complete before serving
	waitCtx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := api.WaitForIngestion(waitCtx, conn); err != nil {
		log.Fatal().Err(err).Msg("Failed to wait for dataset ingestion")
	}

	// Load the provider snapshot once at startup; requests only read it,
	// reloads swap it atomically.
	snapshot := dal.NewProviderSnapshot()
	providerModel := dal.NewProviderModel(conn)

	count, err := snapshot.ReloadFrom(waitCtx, providerModel)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load provider snapshot")
	}
	metrics.SetProviderSnapshotSize(count)

	// Setup routes
	handlers := api.NewAPI(dal.NewMemberModel(conn), snapshot, providerModel)
	router := handlers.SetupRoutes()

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + apiPort,
		Handler: router,
	}

	// Listen for shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		log.Info().
			Str("port", apiPort).
			Msg("Server starting")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().
				Err(err).
				Msg("Failed to start server")
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Info().Msg("Received shutdown signal, shutting down gracefully...")

	// Shutdown server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("API service shutdown complete")
}

// Helper function to get environment variable with default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
