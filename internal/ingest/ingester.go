package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/couchbase/gocb/v2"
	"github.com/rs/zerolog/log"

	"stealthcompany.com/carematch/internal/dal"
	"stealthcompany.com/carematch/internal/matching"
	"stealthcompany.com/carematch/internal/metrics"
)

// Dataset file names, as shipped with the original datasets.
const (
	MembersFile   = "members_large_deterministic.csv"
	ProvidersFile = "providers_enhanced.csv"
)

// Ingester loads the member and provider CSV datasets into Couchbase and
// marks ingestion complete so the API service can start serving.
type Ingester struct {
	conn       *dal.Connection
	datasetDir string
}

// NewIngester creates an ingester reading datasets from datasetDir.
func NewIngester(conn *dal.Connection, datasetDir string) *Ingester {
	return &Ingester{conn: conn, datasetDir: datasetDir}
}

// Run executes a full ingestion pass. Re-running against a bucket whose
// ingestion already completed exits gracefully without rewriting data.
func (ing *Ingester) Run(ctx context.Context) error {
	statusModel := dal.NewIngestionStatusModel(ing.conn)

	status, err := statusModel.GetIngestionStatus(ctx)
	if err != nil {
		return fmt.Errorf("check ingestion status: %w", err)
	}
	if status.Ready {
		log.Info().
			Time("completed_at", status.CompletedAt).
			Msg("Dataset ingestion already completed, nothing to do")
		return nil
	}

	if err := statusModel.SetIngestionStatus(ctx, &dal.IngestionStatus{
		Message: "dataset ingestion started",
	}); err != nil {
		return err
	}

	memberCount, err := ing.ingestMembers(ctx)
	if err != nil {
		return fmt.Errorf("ingest members: %w", err)
	}

	providerCount, err := ing.ingestProviders(ctx)
	if err != nil {
		return fmt.Errorf("ingest providers: %w", err)
	}

	return statusModel.SetIngestionStatus(ctx, &dal.IngestionStatus{
		Ready:     true,
		Message:   "dataset ingestion completed successfully",
		Members:   memberCount,
		Providers: providerCount,
	})
}

func (ing *Ingester) ingestMembers(ctx context.Context) (int, error) {
	startTime := time.Now()

	file, err := os.Open(filepath.Join(ing.datasetDir, MembersFile))
	if err != nil {
		metrics.RecordIngestionMetrics("members", dal.MembersCollection, startTime, "failed", 0, 0, 0)
		return 0, fmt.Errorf("open members dataset: %w", err)
	}
	defer file.Close()

	members, err := LoadMembers(file)
	if err != nil {
		metrics.RecordIngestionMetrics("members", dal.MembersCollection, startTime, "failed", 0, 0, 0)
		return 0, err
	}

	log.Info().
		Int("count", len(members)).
		Msg("Parsed members dataset")

	collection := ing.conn.Collection(dal.MembersCollection)
	stored, failed := 0, 0

	for i, member := range members {
		docID := dal.MemberDocID(member.MemberID)
		if member.MemberID == "" {
			docID = dal.MemberDocID(fmt.Sprintf("row-%d", i+1))
		}

		if _, err := collection.Upsert(docID, member, &gocb.UpsertOptions{Context: ctx}); err != nil {
			log.Error().
				Err(err).
				Str("docID", docID).
				Msg("Failed to store member")
			failed++
			continue
		}
		stored++

		if (i+1)%100 == 0 {
			log.Info().
				Int("processed", i+1).
				Int("total", len(members)).
				Msg("Member ingestion progress")
		}
	}

	metrics.RecordIngestionMetrics("members", dal.MembersCollection, startTime, "success", len(members), stored, failed)

	log.Info().
		Int("total", len(members)).
		Int("stored", stored).
		Int("failed", failed).
		Msg("Completed member ingestion")
	return stored, nil
}

func (ing *Ingester) ingestProviders(ctx context.Context) (int, error) {
	startTime := time.Now()

	file, err := os.Open(filepath.Join(ing.datasetDir, ProvidersFile))
	if err != nil {
		metrics.RecordIngestionMetrics("providers", dal.ProvidersCollection, startTime, "failed", 0, 0, 0)
		return 0, fmt.Errorf("open providers dataset: %w", err)
	}
	defer file.Close()

	providers, err := LoadProviders(file)
	if err != nil {
		metrics.RecordIngestionMetrics("providers", dal.ProvidersCollection, startTime, "failed", 0, 0, 0)
		return 0, err
	}

	log.Info().
		Int("count", len(providers)).
		Msg("Parsed providers dataset")

	collection := ing.conn.Collection(dal.ProvidersCollection)
	stored, failed := 0, 0

	for i, provider := range providers {
		docID := providerDocID(provider, i)

		if _, err := collection.Upsert(docID, provider, &gocb.UpsertOptions{Context: ctx}); err != nil {
			log.Error().
				Err(err).
				Str("docID", docID).
				Msg("Failed to store provider")
			failed++
			continue
		}
		stored++

		if (i+1)%100 == 0 {
			log.Info().
				Int("processed", i+1).
				Int("total", len(providers)).
				Msg("Provider ingestion progress")
		}
	}

	metrics.RecordIngestionMetrics("providers", dal.ProvidersCollection, startTime, "success", len(providers), stored, failed)

	log.Info().
		Int("total", len(providers)).
		Int("stored", stored).
		Int("failed", failed).
		Msg("Completed provider ingestion")
	return stored, nil
}

func providerDocID(provider matching.Provider, row int) string {
	if provider.ProviderID != "" {
		return dal.ProviderDocID(provider.ProviderID)
	}
	return dal.ProviderDocID(fmt.Sprintf("row-%d", row+1))
}
