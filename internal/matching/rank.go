package matching

import "sort"

// DefaultTopN is the result size used when the caller does not ask for one.
const DefaultTopN = 10

// Specialty priority classes.
const (
	PriorityPrimary   = 1
	PrioritySecondary = 2
	PriorityOther     = 3
)

// specialtyPriority classifies a provider specialty against the member's
// stated needs.
func specialtyPriority(specialty string, member *Member) int {
	switch specialty {
	case member.PrimarySpecialtyNeeded:
		return PriorityPrimary
	case member.SecondarySpecialtyNeeded:
		return PrioritySecondary
	default:
		return PriorityOther
	}
}

// RankWithSpecialtyPriority orders the priced providers by
// (specialty priority ASC, quality score DESC, distance miles ASC,
// insurance payment ASC) and truncates to topN. The sort must be stable:
// providers tying on all four keys keep their pre-sort relative order.
func RankWithSpecialtyPriority(providers []ScoredProvider, member *Member, topN int) []ScoredProvider {
	if topN <= 0 {
		topN = DefaultTopN
	}

	ranked := make([]ScoredProvider, len(providers))
	for i, provider := range providers {
		provider.SpecialtyPriority = specialtyPriority(provider.Specialty, member)
		ranked[i] = provider
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := &ranked[i], &ranked[j]
		if a.SpecialtyPriority != b.SpecialtyPriority {
			return a.SpecialtyPriority < b.SpecialtyPriority
		}
		if a.QualityScore != b.QualityScore {
			return a.QualityScore > b.QualityScore
		}
		if a.DistanceMiles != b.DistanceMiles {
			return a.DistanceMiles < b.DistanceMiles
		}
		return a.InsurancePayment < b.InsurancePayment
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
