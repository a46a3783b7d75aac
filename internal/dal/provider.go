package dal

import (
	"context"
	"fmt"
	"time"

	"github.com/couchbase/gocb/v2"
	"github.com/rs/zerolog/log"

	"stealthcompany.com/carematch/internal/matching"
)

// ProvidersCollection is the Couchbase collection holding provider documents.
const ProvidersCollection = "providers"

// ProviderDocID builds the document key for a provider record.
func ProviderDocID(providerID string) string {
	return fmt.Sprintf("Provider/%s", providerID)
}

// ProviderModel handles provider-specific database operations
type ProviderModel struct {
	conn *Connection
}

// NewProviderModel creates a new provider model instance
func NewProviderModel(conn *Connection) *ProviderModel {
	return &ProviderModel{conn: conn}
}

// ListAll retrieves the full provider collection. Used to build the
// in-memory snapshot, never per request.
func (pm *ProviderModel) ListAll(ctx context.Context) ([]matching.Provider, error) {
	query := fmt.Sprintf("SELECT d.* FROM `%s`.`_default`.`%s` AS d ORDER BY META(d).id",
		pm.conn.GetBucketName(), ProvidersCollection)

	log.Debug().
		Str("collection", ProvidersCollection).
		Msg("Querying all providers")

	start := time.Now()
	rows, err := pm.conn.GetCluster().Query(query, &gocb.QueryOptions{Context: ctx})
	if err != nil {
		log.Error().Err(err).Msg("Provider query failed")
		return nil, fmt.Errorf("query providers: %w", err)
	}
	defer rows.Close()

	var providers []matching.Provider
	for rows.Next() {
		var provider matching.Provider
		if err := rows.Row(&provider); err != nil {
			log.Error().Err(err).Msg("Failed to decode provider row")
			return nil, fmt.Errorf("decode provider row: %w", err)
		}
		providers = append(providers, provider)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate providers: %w", err)
	}

	log.Info().
		Int("count", len(providers)).
		Dur("duration", time.Since(start)).
		Msg("Loaded provider collection")
	return providers, nil
}
