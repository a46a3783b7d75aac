package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedIDs(providers []ScoredProvider) []string {
	ids := make([]string, len(providers))
	for i, p := range providers {
		ids[i] = p.ProviderID
	}
	return ids
}

func TestRankSpecialtyPriorityAssignment(t *testing.T) {
	member := &Member{
		PrimarySpecialtyNeeded:   "Cardiology",
		SecondarySpecialtyNeeded: "Dermatology",
	}
	providers := []ScoredProvider{
		{Provider: Provider{ProviderID: "other", Specialty: "Oncology"}},
		{Provider: Provider{ProviderID: "secondary", Specialty: "Dermatology"}},
		{Provider: Provider{ProviderID: "primary", Specialty: "Cardiology"}},
	}

	got := RankWithSpecialtyPriority(providers, member, 10)
	require.Len(t, got, 3)

	assert.Equal(t, []string{"primary", "secondary", "other"}, rankedIDs(got))
	assert.Equal(t, PriorityPrimary, got[0].SpecialtyPriority)
	assert.Equal(t, PrioritySecondary, got[1].SpecialtyPriority)
	assert.Equal(t, PriorityOther, got[2].SpecialtyPriority)
}

func TestRankTieBreakOrder(t *testing.T) {
	member := &Member{PrimarySpecialtyNeeded: "Cardiology"}
	providers := []ScoredProvider{
		// Same priority; quality breaks the tie first, descending.
		{Provider: Provider{ProviderID: "low-quality", Specialty: "Cardiology"}, QualityScore: 3.0},
		{Provider: Provider{ProviderID: "high-quality", Specialty: "Cardiology"}, QualityScore: 4.5},
		// Same priority and quality; nearer wins.
		{Provider: Provider{ProviderID: "far", Specialty: "Cardiology"}, QualityScore: 4.5, DistanceMiles: 20},
		{Provider: Provider{ProviderID: "near", Specialty: "Cardiology"}, QualityScore: 4.5, DistanceMiles: 5},
		// Same on all but payment; cheaper wins.
		{Provider: Provider{ProviderID: "pricey", Specialty: "Cardiology"}, QualityScore: 4.5, DistanceMiles: 5, InsurancePayment: 900},
	}
	// Give the non-annotated entries distinct payments so the expected
	// order is fully determined.
	providers[0].InsurancePayment = 100
	providers[1].InsurancePayment = 100
	providers[2].InsurancePayment = 100
	providers[3].InsurancePayment = 100

	got := RankWithSpecialtyPriority(providers, member, 10)
	assert.Equal(t, []string{"high-quality", "near", "pricey", "far", "low-quality"}, rankedIDs(got))
}

func TestRankIsSortedOnAllKeys(t *testing.T) {
	got := RankWithSpecialtyPriority([]ScoredProvider{
		{Provider: Provider{ProviderID: "a", Specialty: "X"}, QualityScore: 2, DistanceMiles: 3, InsurancePayment: 40},
		{Provider: Provider{ProviderID: "b", Specialty: "Y"}, QualityScore: 5, DistanceMiles: 9, InsurancePayment: 10},
		{Provider: Provider{ProviderID: "c", Specialty: "X"}, QualityScore: 2, DistanceMiles: 3, InsurancePayment: 20},
		{Provider: Provider{ProviderID: "d", Specialty: "X"}, QualityScore: 4, DistanceMiles: 1, InsurancePayment: 30},
	}, &Member{PrimarySpecialtyNeeded: "X"}, 10)

	for i := 1; i < len(got); i++ {
		a, b := got[i-1], got[i]
		ordered := a.SpecialtyPriority < b.SpecialtyPriority ||
			(a.SpecialtyPriority == b.SpecialtyPriority && a.QualityScore > b.QualityScore) ||
			(a.SpecialtyPriority == b.SpecialtyPriority && a.QualityScore == b.QualityScore && a.DistanceMiles < b.DistanceMiles) ||
			(a.SpecialtyPriority == b.SpecialtyPriority && a.QualityScore == b.QualityScore && a.DistanceMiles == b.DistanceMiles && a.InsurancePayment <= b.InsurancePayment)
		assert.True(t, ordered, "pair %d (%s before %s) violates sort order", i, a.ProviderID, b.ProviderID)
	}
}

func TestRankStabilityOnFullTies(t *testing.T) {
	// Two providers identical on all four keys must keep input order.
	tied := func(id string) ScoredProvider {
		return ScoredProvider{
			Provider:         Provider{ProviderID: id, Specialty: "Cardiology"},
			QualityScore:     4.0,
			DistanceMiles:    10,
			InsurancePayment: 500,
		}
	}

	got := RankWithSpecialtyPriority(
		[]ScoredProvider{tied("first"), tied("second"), tied("third")},
		&Member{PrimarySpecialtyNeeded: "Cardiology"}, 10)

	assert.Equal(t, []string{"first", "second", "third"}, rankedIDs(got))
}

func TestRankTruncation(t *testing.T) {
	providers := make([]ScoredProvider, 25)
	for i := range providers {
		providers[i] = ScoredProvider{Provider: Provider{ProviderID: string(rune('a' + i))}}
	}

	assert.Len(t, RankWithSpecialtyPriority(providers, &Member{}, 10), 10)
	assert.Len(t, RankWithSpecialtyPriority(providers, &Member{}, 3), 3)
	assert.Len(t, RankWithSpecialtyPriority(providers[:2], &Member{}, 10), 2)

	// Non-positive topN falls back to the default of 10.
	assert.Len(t, RankWithSpecialtyPriority(providers, &Member{}, 0), DefaultTopN)
}
