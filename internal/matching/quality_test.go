package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreQualityTopMarksProvider(t *testing.T) {
	providers := []ScoredProvider{{
		Provider: Provider{
			ProviderID:            "p1",
			ExperienceYears:       10,
			PatientRating:         5,
			CMSQualityScore:       5,
			RiskRate:              0,
			Certified:             true,
			BackgroundCheckPassed: true,
			TelehealthAvailable:   true,
		},
	}}
	member := &Member{TelehealthPreference: true}

	got := ScoreQuality(providers, member)
	require.Len(t, got, 1)

	// Composite is 8.5 on the 0-10 scale, clamped to the 5.0 ceiling.
	assert.Equal(t, 5.0, got[0].QualityScore)
	assert.Equal(t, 100, got[0].BenchmarkPercent)
	assert.True(t, got[0].TelehealthPreference)
}

func TestScoreQualityZeroValueProvider(t *testing.T) {
	// All-absent attributes default to zero values and must not fail.
	// Only the safety component survives: (1-0)*10*0.15 = 1.5.
	got := ScoreQuality([]ScoredProvider{{Provider: Provider{ProviderID: "p-empty"}}}, &Member{})
	require.Len(t, got, 1)
	assert.Equal(t, 1.5, got[0].QualityScore)
	assert.Equal(t, 30, got[0].BenchmarkPercent)
}

func TestScoreQualityFloor(t *testing.T) {
	// Full risk zeroes the safety component too; the composite is 0 and
	// the score clamps to the floor of 1.
	got := ScoreQuality([]ScoredProvider{{Provider: Provider{ProviderID: "p-risky", RiskRate: 1}}}, &Member{})
	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0].QualityScore)
	assert.Equal(t, 20, got[0].BenchmarkPercent)
}

func TestScoreQualityBounds(t *testing.T) {
	tests := []struct {
		name     string
		provider Provider
	}{
		{"worst possible", Provider{RiskRate: 1}},
		{"mid experience only", Provider{ExperienceYears: 20}},
		{"rating only", Provider{PatientRating: 4.5}},
		{"credentials only", Provider{Certified: true, BackgroundCheckPassed: true}},
		{"overlong experience capped", Provider{ExperienceYears: 90}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreQuality([]ScoredProvider{{Provider: tt.provider}}, &Member{})
			require.Len(t, got, 1)
			assert.GreaterOrEqual(t, got[0].QualityScore, 1.0)
			assert.LessOrEqual(t, got[0].QualityScore, 5.0)
		})
	}
}

func TestScoreQualityRounding(t *testing.T) {
	// rating 3 -> 6.0*0.2 = 1.2, safety 10*0.15 = 1.5, composite 2.7,
	// certified 5*0.1 = 0.5 -> 3.2; exercises one-decimal rounding.
	got := ScoreQuality([]ScoredProvider{{Provider: Provider{
		PatientRating: 3,
		Certified:     true,
	}}}, &Member{})
	require.Len(t, got, 1)
	assert.Equal(t, 3.2, got[0].QualityScore)
	assert.Equal(t, 64, got[0].BenchmarkPercent)
}

func TestScoreQualityDoesNotMutateInput(t *testing.T) {
	in := []ScoredProvider{{Provider: Provider{ProviderID: "p1", PatientRating: 4}}}
	_ = ScoreQuality(in, &Member{TelehealthPreference: true})

	assert.Zero(t, in[0].QualityScore)
	assert.Zero(t, in[0].BenchmarkPercent)
	assert.False(t, in[0].TelehealthPreference)
}

func TestScoreQualityPreferenceDoesNotAffectScore(t *testing.T) {
	provider := ScoredProvider{Provider: Provider{PatientRating: 4, TelehealthAvailable: true}}

	withPref := ScoreQuality([]ScoredProvider{provider}, &Member{TelehealthPreference: true})
	withoutPref := ScoreQuality([]ScoredProvider{provider}, &Member{TelehealthPreference: false})

	assert.Equal(t, withPref[0].QualityScore, withoutPref[0].QualityScore)
}
