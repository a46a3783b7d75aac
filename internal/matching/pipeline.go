package matching

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// MemberLookup resolves a member id to its record. Implementations return
// an error satisfying errors.Is(err, ErrMemberNotFound) for unknown ids.
type MemberLookup interface {
	MemberByID(ctx context.Context, memberID string) (*Member, error)
}

// ProviderSource exposes the provider collection the pipeline matches
// against. The returned slice must be treated as read-only; the pipeline
// never mutates it.
type ProviderSource interface {
	Providers() []Provider
}

// MatchResult is the pipeline output for one request: the ranked provider
// list and the member's echoed location. An empty Providers slice is a
// valid result, not a failure.
type MatchResult struct {
	Providers      []ScoredProvider `json:"providers"`
	MemberLocation Location         `json:"member_location"`
}

// Pipeline composes the four matching stages for one member request:
// geo filter, quality scoring, payment estimation, specialty ranking.
// It holds no per-request state and is safe for concurrent use.
type Pipeline struct {
	members   MemberLookup
	providers ProviderSource
}

// NewPipeline creates a pipeline over the given member and provider
// capabilities.
func NewPipeline(members MemberLookup, providers ProviderSource) *Pipeline {
	return &Pipeline{
		members:   members,
		providers: providers,
	}
}

// Match runs the full pipeline for one member and returns the top topN
// providers. topN <= 0 selects DefaultTopN.
func (p *Pipeline) Match(ctx context.Context, memberID string, topN int) (*MatchResult, error) {
	start := time.Now()

	providers := p.providers.Providers()
	if len(providers) == 0 {
		return nil, ErrDataUnavailable
	}

	member, err := p.members.MemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	location := Location{Lat: member.Latitude, Lon: member.Longitude}

	inRadius := FilterByRadius(member.Latitude, member.Longitude, member.MaxTravelDistanceKm, providers)
	if len(inRadius) == 0 {
		log.Debug().
			Str("member_id", memberID).
			Float64("max_distance_km", member.MaxTravelDistanceKm).
			Msg("No providers within travel radius")

		return &MatchResult{
			Providers:      []ScoredProvider{},
			MemberLocation: location,
		}, nil
	}

	scored := ScoreQuality(inRadius, member)
	priced := EstimatePayments(scored, member)
	ranked := RankWithSpecialtyPriority(priced, member, topN)

	log.Debug().
		Str("member_id", memberID).
		Int("in_radius", len(inRadius)).
		Int("ranked", len(ranked)).
		Dur("duration", time.Since(start)).
		Msg("Match pipeline completed")

	return &MatchResult{
		Providers:      ranked,
		MemberLocation: location,
	}, nil
}
