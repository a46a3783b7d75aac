package matching

import "math"

// Component weights of the quality composite. They sum to 1.0 and the sum
// is used directly as the normalizing divisor.
const (
	weightExperience  = 0.20
	weightRating      = 0.20
	weightCMS         = 0.25
	weightSafety      = 0.15
	weightCredentials = 0.10
	weightTelehealth  = 0.10
)

// qualityComposite computes the weighted 0-10 composite for one provider,
// normalized by the total weight, clamped to [1, 5]. Zero-valued fields
// contribute zero; the composite never fails on partial data.
func qualityComposite(p *Provider) float64 {
	score, totalWeight := 0.0, 0.0

	expScore := math.Min(p.ExperienceYears/40, 1) * 10
	score += expScore * weightExperience
	totalWeight += weightExperience

	ratingScore := (p.PatientRating / 5) * 10
	score += ratingScore * weightRating
	totalWeight += weightRating

	cmsScore := (p.CMSQualityScore / 5) * 10
	score += cmsScore * weightCMS
	totalWeight += weightCMS

	safetyScore := (1 - p.RiskRate) * 10
	score += safetyScore * weightSafety
	totalWeight += weightSafety

	credScore := 0.0
	if p.Certified {
		credScore += 5
	}
	if p.BackgroundCheckPassed {
		credScore += 5
	}
	score += credScore * weightCredentials
	totalWeight += weightCredentials

	teleScore := 0.0
	if p.TelehealthAvailable {
		teleScore = 10
	}
	score += teleScore * weightTelehealth
	totalWeight += weightTelehealth

	return math.Max(1, math.Min(5, score/totalWeight))
}

// ScoreQuality computes the 1-5 quality score and benchmark percent for
// each geo-filtered provider. Pure: the input slice is not mutated. The
// member's telehealth preference is attached for display only and does not
// influence the score.
func ScoreQuality(providers []ScoredProvider, member *Member) []ScoredProvider {
	scored := make([]ScoredProvider, len(providers))

	for i, provider := range providers {
		provider.TelehealthPreference = member.TelehealthPreference
		provider.QualityScore = roundTo1Decimal(qualityComposite(&provider.Provider))
		provider.BenchmarkPercent = int(math.Round(2 * provider.QualityScore * 10))
		scored[i] = provider
	}

	return scored
}

func roundTo1Decimal(x float64) float64 {
	return math.Round(x*10) / 10
}
