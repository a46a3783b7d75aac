package matching

// Member is a plan member as loaded from the members dataset. Records are
// immutable for the duration of a request; absent dataset fields stay at
// their zero values and every formula in this package is defined over them.
type Member struct {
	MemberID                 string  `json:"member_id"`
	Name                     string  `json:"name,omitempty"`
	Latitude                 float64 `json:"latitude"`
	Longitude                float64 `json:"longitude"`
	MaxTravelDistanceKm      float64 `json:"max_travel_distance_km"`
	CoveragePlan             string  `json:"coverage_plan"`
	RiskLevel                string  `json:"risk_level"`
	ExpectedWaitTimeDays     float64 `json:"expected_wait_time_days"`
	InvestedAmount           float64 `json:"invested_amount"`
	TelehealthPreference     bool    `json:"telehealth_preference"`
	PrimarySpecialtyNeeded   string  `json:"primary_specialty_needed"`
	SecondarySpecialtyNeeded string  `json:"secondary_specialty_needed"`
}

// Provider is a care provider as loaded from the providers dataset.
// Read-only to the pipeline; every stage works on per-request copies.
//
// Some provider exports carry the display name under "provider_name"
// instead of "name". The legacy column is kept as a separate field and
// promoted by NormalizeName rather than silently merged at decode time.
type Provider struct {
	ProviderID            string  `json:"provider_id"`
	Name                  string  `json:"name,omitempty"`
	LegacyName            string  `json:"provider_name,omitempty"`
	Latitude              float64 `json:"latitude"`
	Longitude             float64 `json:"longitude"`
	Specialty             string  `json:"specialty"`
	ExperienceYears       float64 `json:"experience_years"`
	PatientRating         float64 `json:"patient_rating"`
	CMSQualityScore       float64 `json:"CMS_quality_score"`
	RiskRate              float64 `json:"risk_rate"`
	Certified             bool    `json:"certified"`
	BackgroundCheckPassed bool    `json:"background_check_passed"`
	TelehealthAvailable   bool    `json:"telehealth_available"`
	WaitTimeDays          float64 `json:"wait_time_days"`
	ServiceCost           float64 `json:"service_cost"`
}

// NormalizeName promotes the legacy provider_name column to the canonical
// name field when the canonical one is empty.
func (p *Provider) NormalizeName() {
	if p.Name == "" && p.LegacyName != "" {
		p.Name = p.LegacyName
		p.LegacyName = ""
	}
}

// ScoredProvider is a Provider plus the per-request annotations added by
// the pipeline stages, in stage order. It is transient: built for one
// request, serialized into the response, then discarded.
type ScoredProvider struct {
	Provider

	// Stage 1: geo filter
	DistanceKm       float64 `json:"distance_km"`
	DistanceMiles    float64 `json:"distance_miles"`
	DriveTimeMinutes float64 `json:"drive_time_minutes"`

	// Stage 2: quality scoring
	TelehealthPreference bool    `json:"telehealth_preference"`
	QualityScore         float64 `json:"quality_score"`
	BenchmarkPercent     int     `json:"benchmark_percent"`

	// Stage 3: cost model
	InsurancePayment float64 `json:"insurance_payment"`
	MemberShare      float64 `json:"member_share"`

	// Stage 4: ranking
	SpecialtyPriority int `json:"specialty_priority"`
}

// Location is a member's geographic position echoed back in the response.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Insurer cost-share fraction per coverage plan. Plans outside the table
// fall back to DefaultCoverageShare.
var coverageShareByPlan = map[string]float64{
	"PPO": 0.85,
	"HMO": 0.75,
	"EPO": 0.65,
}

// Projected visit count per member risk level. Levels outside the table
// fall back to DefaultVisits.
var visitsByRiskLevel = map[string]float64{
	"Low":    2,
	"Medium": 5,
	"High":   10,
}

const (
	// DefaultCoverageShare applies to unknown coverage plans.
	DefaultCoverageShare = 0.6

	// DefaultVisits applies to unknown risk levels.
	DefaultVisits = 5
)

// CoverageShare returns the insurer's cost-share fraction for a plan.
func CoverageShare(plan string) float64 {
	if share, ok := coverageShareByPlan[plan]; ok {
		return share
	}
	return DefaultCoverageShare
}

// ProjectedVisits returns the expected visit count for a risk level.
func ProjectedVisits(riskLevel string) float64 {
	if visits, ok := visitsByRiskLevel[riskLevel]; ok {
		return visits
	}
	return DefaultVisits
}
