package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"stealthcompany.com/carematch/internal/matching"
	"stealthcompany.com/carematch/internal/metrics"
)

// HealthHandler returns a simple liveness message
func (a *API) HealthHandler(w http.ResponseWriter, r *http.Request) {
	log.Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("remote_addr", r.RemoteAddr).
		Msg("Health endpoint called")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	json.NewEncoder(w).Encode(map[string]string{
		"message": "carematch API is up",
		"status":  "success",
	})
}

// FindProvidersHandler runs the matching pipeline for one member.
// POST /api/find-providers with {"member_id": "...", "top_n": 10}.
func (a *API) FindProvidersHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	w.Header().Set("Content-Type", "application/json")

	var req FindProvidersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error().
			Err(err).
			Msg("Failed to decode find-providers request")

		metrics.RecordMatchFailure("invalid_request")

		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Invalid JSON format",
		})
		return
	}

	if strings.TrimSpace(req.MemberID) == "" {
		log.Warn().Msg("Find-providers request without member id")

		metrics.RecordMatchFailure("invalid_request")

		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Member ID is required.",
		})
		return
	}

	result, err := a.pipeline.Match(r.Context(), req.MemberID, req.TopN)
	if err != nil {
		switch {
		case errors.Is(err, matching.ErrMemberNotFound):
			log.Warn().
				Str("member_id", req.MemberID).
				Msg("Member not found")

			metrics.RecordMatchFailure("member_not_found")

			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{
				"message": "Member ID " + req.MemberID + " not found.",
			})
		case errors.Is(err, matching.ErrDataUnavailable):
			log.Error().
				Str("member_id", req.MemberID).
				Msg("Datasets not available")

			metrics.RecordMatchFailure("data_unavailable")

			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{
				"message": "Server data not available.",
			})
		default:
			log.Error().
				Err(err).
				Str("member_id", req.MemberID).
				Msg("Match pipeline failed")

			metrics.RecordMatchFailure("internal_error")

			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{
				"message": "Internal server error",
			})
		}
		return
	}

	outcome := "success"
	if len(result.Providers) == 0 {
		outcome = "empty_result"
	}
	metrics.RecordMatchRequest(outcome, time.Since(start), len(result.Providers))

	log.Info().
		Str("member_id", req.MemberID).
		Int("providers", len(result.Providers)).
		Str("result", outcome).
		Msg("Find-providers request processed")

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

// GetAllProvidersHandler returns the full normalized provider collection
// from the current snapshot, without scoring.
func (a *API) GetAllProvidersHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	current := a.snapshot.Providers()
	if len(current) == 0 {
		log.Warn().Msg("Provider listing requested before snapshot was loaded")

		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Provider data not available",
		})
		return
	}

	// Normalize names on a copy; the snapshot itself stays untouched.
	providers := make([]matching.Provider, len(current))
	copy(providers, current)
	for i := range providers {
		providers[i].NormalizeName()
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(providers)
}

// ReloadProvidersHandler swaps in a freshly loaded provider snapshot.
func (a *API) ReloadProvidersHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	count, err := a.snapshot.ReloadFrom(r.Context(), a.providers)
	if err != nil {
		log.Error().Err(err).Msg("Provider snapshot reload failed")

		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "Failed to reload providers",
		})
		return
	}

	metrics.SetProviderSnapshotSize(count)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(ReloadResponse{
		Providers: count,
		Status:    "success",
	})
}
