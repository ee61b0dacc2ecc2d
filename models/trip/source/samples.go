package source

import (
	_ "embed"
	"fmt"

	"github.com/NomadCrew/tripboard/types"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed samples.yaml
var samplesYAML []byte

// sampleTrip mirrors samples.yaml. Amounts and dates stay text so the same
// parsing rules as the remote path apply.
type sampleTrip struct {
	ID                   string   `yaml:"id"`
	Title                string   `yaml:"title"`
	Cities               []string `yaml:"cities"`
	StartDate            string   `yaml:"startDate"`
	EndDate              string   `yaml:"endDate"`
	DurationDays         int      `yaml:"duration"`
	TotalBudget          string   `yaml:"totalBudget"`
	Spent                string   `yaml:"spent"`
	Status               string   `yaml:"status"`
	CompletionPercentage int      `yaml:"completionPercentage"`
	CreatedDate          string   `yaml:"createdDate"`
	CoverImageURL        string   `yaml:"coverImageUrl"`
}

// ParseSamples decodes a YAML list of sample trips.
func ParseSamples(data []byte) ([]types.TripRecord, error) {
	var raw []sampleTrip
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode sample trips: %w", err)
	}

	out := make([]types.TripRecord, 0, len(raw))
	for i, st := range raw {
		rec, err := normalizeSample(st)
		if err != nil {
			return nil, fmt.Errorf("sample trip %d: %w", i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// BundledSamples returns the sample trips compiled into the binary.
func BundledSamples() ([]types.TripRecord, error) {
	return ParseSamples(samplesYAML)
}

func normalizeSample(st sampleTrip) (types.TripRecord, error) {
	if st.ID == "" {
		return types.TripRecord{}, fmt.Errorf("id is required")
	}
	if st.Title == "" {
		return types.TripRecord{}, fmt.Errorf("title is required")
	}
	if len(st.Cities) == 0 {
		return types.TripRecord{}, fmt.Errorf("at least one city is required")
	}

	start, ok := ParseDate(st.StartDate)
	if !ok {
		return types.TripRecord{}, fmt.Errorf("invalid startDate %q", st.StartDate)
	}
	end, ok := ParseDate(st.EndDate)
	if !ok {
		return types.TripRecord{}, fmt.Errorf("invalid endDate %q", st.EndDate)
	}
	if end.Before(start) {
		return types.TripRecord{}, fmt.Errorf("endDate before startDate")
	}
	created, _ := ParseDate(st.CreatedDate)

	budget, err := parseAmount(st.TotalBudget)
	if err != nil {
		return types.TripRecord{}, fmt.Errorf("totalBudget: %w", err)
	}
	spent, err := parseAmount(st.Spent)
	if err != nil {
		return types.TripRecord{}, fmt.Errorf("spent: %w", err)
	}

	duration := st.DurationDays
	if duration < 1 {
		duration = DurationDays(start, end)
	}
	if st.CompletionPercentage < 0 || st.CompletionPercentage > 100 {
		return types.TripRecord{}, fmt.Errorf("completionPercentage out of range: %d", st.CompletionPercentage)
	}

	status := types.TripStatus(st.Status)
	if status == "" {
		status = types.TripStatusPlanned
	}

	return types.TripRecord{
		ID:                   st.ID,
		Title:                st.Title,
		Cities:               st.Cities,
		StartDate:            start,
		EndDate:              end,
		DurationDays:         duration,
		TotalBudget:          budget,
		Spent:                spent,
		Status:               status,
		CompletionPercentage: st.CompletionPercentage,
		CreatedDate:          created,
		CoverImageURL:        st.CoverImageURL,
		Origin:               types.TripOriginSample,
	}, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount cannot be negative")
	}
	return d, nil
}
