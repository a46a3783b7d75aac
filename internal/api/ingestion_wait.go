package api

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"stealthcompany.com/carematch/internal/dal"
	"stealthcompany.com/carematch/internal/matching"
)

// ingestionStatusGetter is the slice of the status model the wait loop needs.
type ingestionStatusGetter interface {
	GetIngestionStatus(ctx context.Context) (*dal.IngestionStatus, error)
}

// WaitForIngestion blocks until the ingest service marks the datasets
// ready, polling the ingestion status document. A run that completed with
// an empty member dataset is reported as data unavailable rather than
// letting every lookup surface as a missing member.
func WaitForIngestion(ctx context.Context, conn *dal.Connection) error {
	return waitForIngestion(ctx, dal.NewIngestionStatusModel(conn))
}

func waitForIngestion(ctx context.Context, statusModel ingestionStatusGetter) error {
	log.Info().Msg("Waiting for dataset ingestion to complete...")

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		status, err := statusModel.GetIngestionStatus(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Error checking ingestion status")
		} else if status.Ready {
			if status.Members == 0 {
				log.Error().Msg("Ingestion completed with an empty member dataset")
				return fmt.Errorf("member dataset is empty: %w", matching.ErrDataUnavailable)
			}

			log.Info().
				Int("members", status.Members).
				Int("providers", status.Providers).
				Msg("Dataset ingestion completed, API is ready to serve requests")
			return nil
		} else {
			log.Info().Msg("Dataset ingestion still in progress, waiting...")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
