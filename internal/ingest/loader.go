package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"stealthcompany.com/carematch/internal/matching"
)

// csvRow gives header-indexed access to one CSV record with lenient typed
// getters. Missing columns and unparsable cells yield zero values; a
// malformed-but-present record must never abort an ingestion run.
type csvRow struct {
	index  map[string]int
	record []string
}

func (r csvRow) str(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

func (r csvRow) float(column string) float64 {
	v, err := strconv.ParseFloat(r.str(column), 64)
	if err != nil {
		return 0
	}
	return v
}

func (r csvRow) boolean(column string) bool {
	switch strings.ToLower(r.str(column)) {
	case "true", "t", "1", "yes", "y":
		return true
	default:
		return false
	}
}

// readRows parses a CSV stream into header-indexed rows. Short records are
// tolerated; a structurally broken stream is an error.
func readRows(r io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, column := range header {
		index[strings.TrimSpace(column)] = i
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}
		rows = append(rows, csvRow{index: index, record: record})
	}

	return rows, nil
}

// LoadMembers parses the members dataset.
func LoadMembers(r io.Reader) ([]matching.Member, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	members := make([]matching.Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, matching.Member{
			MemberID:                 row.str("member_id"),
			Name:                     row.str("name"),
			Latitude:                 row.float("latitude"),
			Longitude:                row.float("longitude"),
			MaxTravelDistanceKm:      row.float("max_travel_distance_km"),
			CoveragePlan:             row.str("coverage_plan"),
			RiskLevel:                row.str("risk_level"),
			ExpectedWaitTimeDays:     row.float("expected_wait_time_days"),
			InvestedAmount:           row.float("invested_amount"),
			TelehealthPreference:     row.boolean("telehealth_preference"),
			PrimarySpecialtyNeeded:   row.str("primary_specialty_needed"),
			SecondarySpecialtyNeeded: row.str("secondary_specialty_needed"),
		})
	}
	return members, nil
}

// LoadProviders parses the providers dataset. The legacy provider_name
// column is kept as-is; name normalization happens downstream.
func LoadProviders(r io.Reader) ([]matching.Provider, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	providers := make([]matching.Provider, 0, len(rows))
	for _, row := range rows {
		providers = append(providers, matching.Provider{
			ProviderID:            row.str("provider_id"),
			Name:                  row.str("name"),
			LegacyName:            row.str("provider_name"),
			Latitude:              row.float("latitude"),
			Longitude:             row.float("longitude"),
			Specialty:             row.str("specialty"),
			ExperienceYears:       row.float("experience_years"),
			PatientRating:         row.float("patient_rating"),
			CMSQualityScore:       row.float("CMS_quality_score"),
			RiskRate:              row.float("risk_rate"),
			Certified:             row.boolean("certified"),
			BackgroundCheckPassed: row.boolean("background_check_passed"),
			TelehealthAvailable:   row.boolean("telehealth_available"),
			WaitTimeDays:          row.float("wait_time_days"),
			ServiceCost:           row.float("service_cost"),
		})
	}
	return providers, nil
}
