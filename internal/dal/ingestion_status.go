package dal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/couchbase/gocb/v2"
	"github.com/rs/zerolog/log"
)

// IngestionStatusKey is the well-known document key for ingestion status.
const IngestionStatusKey = "carematch::ingestion::status"

// IngestionStatus tracks whether the dataset ingestion has completed.
type IngestionStatus struct {
	Ready       bool      `json:"ready"`
	Message     string    `json:"message"`
	Members     int       `json:"members"`
	Providers   int       `json:"providers"`
	CompletedAt time.Time `json:"completed_at,omitempty"`
}

// IngestionStatusModel handles the ingestion status document
type IngestionStatusModel struct {
	conn *Connection
}

// NewIngestionStatusModel creates a new ingestion status model instance
func NewIngestionStatusModel(conn *Connection) *IngestionStatusModel {
	return &IngestionStatusModel{conn: conn}
}

// GetIngestionStatus retrieves the ingestion status document. A missing
// document is reported as a zero-value (not ready) status, not an error.
func (ism *IngestionStatusModel) GetIngestionStatus(ctx context.Context) (*IngestionStatus, error) {
	collection := ism.conn.GetBucket().DefaultCollection()

	result, err := collection.Get(IngestionStatusKey, &gocb.GetOptions{Context: ctx})
	if err != nil {
		if errors.Is(err, gocb.ErrDocumentNotFound) {
			return &IngestionStatus{}, nil
		}
		return nil, fmt.Errorf("get ingestion status: %w", err)
	}

	var status IngestionStatus
	if err := result.Content(&status); err != nil {
		return nil, fmt.Errorf("decode ingestion status: %w", err)
	}

	return &status, nil
}

// SetIngestionStatus writes the ingestion status document.
func (ism *IngestionStatusModel) SetIngestionStatus(ctx context.Context, status *IngestionStatus) error {
	if status.Ready && status.CompletedAt.IsZero() {
		status.CompletedAt = time.Now()
	}

	collection := ism.conn.GetBucket().DefaultCollection()
	_, err := collection.Upsert(IngestionStatusKey, status, &gocb.UpsertOptions{Context: ctx})
	if err != nil {
		return fmt.Errorf("upsert ingestion status: %w", err)
	}

	log.Info().
		Bool("ready", status.Ready).
		Str("message", status.Message).
		Msg("Ingestion status updated")
	return nil
}
