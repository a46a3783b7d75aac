package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"stealthcompany.com/carematch/internal/dal"
	"stealthcompany.com/carematch/internal/ingest"
	"stealthcompany.com/carematch/pkg/zerolog_config"
)

func main() {
	// Load .env file if present
	if err := godotenv.Load(".env"); err != nil {
		log.Info().Msg("Not found .env file, assuming environment variables are set")
	}

	elasticsearchURL := getEnvOrDefault("ELASTICSEARCH_URL", "http://elasticsearch:9200")
	datasetDir := getEnvOrDefault("DATASET_DIR", "dataset")
	logLevel := getEnvOrDefault("INGEST_LOG_LEVEL", "info")

	zerolog_config.SetAppPrefix("carematch-ingest")
	zerolog_config.StartupWithEnv(elasticsearchURL, "logs", logLevel)

	log.Info().
		Str("dataset_dir", datasetDir).
		Msg("Starting carematch-ingest service")

	// Initialize Couchbase connection
	conn, err := dal.NewConnection()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Couchbase")
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	ingester := ingest.NewIngester(conn, datasetDir)
	if err := ingester.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to ingest datasets")
	}

	log.Info().Msg("Dataset ingestion completed successfully")
}

// Helper function to get environment variable with default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
