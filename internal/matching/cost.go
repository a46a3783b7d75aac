package matching

import "math"

// paymentEstimate holds the cost model output for one provider.
type paymentEstimate struct {
	InsurancePayment float64
	MemberShare      float64
}

// estimatePayment runs the payment projection for one provider.
//
// The member share is 0.2 of the member's invested amount, independent of
// the provider, so the same value is attached to every provider in a
// batch. That mirrors the original actuarial model verbatim; whether it
// should also depend on provider cost is a question for the domain owners.
func estimatePayment(p *Provider, member *Member) paymentEstimate {
	adjustedCost := p.ServiceCost * (1 + 0.01*p.ExperienceYears)
	waitPenalty := 1 + 0.01*math.Max(0, p.WaitTimeDays-member.ExpectedWaitTimeDays)

	coverageShare := CoverageShare(member.CoveragePlan)
	visits := ProjectedVisits(member.RiskLevel)

	basePayment := adjustedCost * coverageShare
	memberShare := 0.2 * member.InvestedAmount

	rawPayment := (basePayment - memberShare) * visits * waitPenalty

	// Guaranteed payment floor, independent of coverage and invested amount.
	minPayment := 0.2 * adjustedCost * visits

	return paymentEstimate{
		InsurancePayment: math.Max(rawPayment, minPayment),
		MemberShare:      memberShare,
	}
}

// EstimatePayments computes the projected insurance payment and member
// cost share for each scored provider. Each provider is priced
// independently; the input slice is not mutated. Legacy provider_name
// fields are promoted to the canonical name here, on the per-request copy.
func EstimatePayments(providers []ScoredProvider, member *Member) []ScoredProvider {
	priced := make([]ScoredProvider, len(providers))

	for i, provider := range providers {
		estimate := estimatePayment(&provider.Provider, member)
		provider.InsurancePayment = estimate.InsurancePayment
		provider.MemberShare = estimate.MemberShare
		provider.NormalizeName()
		priced[i] = provider
	}

	return priced
}
