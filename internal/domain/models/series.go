package models

// Indicator is a macroeconomic statistical series known to the catalog.
type Indicator struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Country is an ISO3 country known to the catalog.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Observation is one normalized (country, year, value) row.
// Missing marks values the source reported as null or non-numeric;
// Value is meaningless when Missing is set.
type Observation struct {
	Country string
	Year    int
	Value   float64
	Missing bool
}

// ObservationTable holds observations in source order. Rows for different
// countries may interleave; duplicate (country, year) rows pass through.
type ObservationTable struct {
	Rows []Observation
}

// Countries returns distinct country codes in first-appearance order.
func (t ObservationTable) Countries() []string {
	seen := make(map[string]struct{}, 8)
	out := make([]string, 0, 8)
	for _, r := range t.Rows {
		if _, ok := seen[r.Country]; ok {
			continue
		}
		seen[r.Country] = struct{}{}
		out = append(out, r.Country)
	}
	return out
}

// ForCountry returns the rows for one country, preserving source order.
func (t ObservationTable) ForCountry(code string) []Observation {
	out := make([]Observation, 0, len(t.Rows))
	for _, r := range t.Rows {
		if r.Country == code {
			out = append(out, r)
		}
	}
	return out
}

// TrendPoint is one predicted value on a fitted trend line.
type TrendPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// TrendLine is an ordinary-least-squares line fitted to one country's
// observations, with one predicted point per observed year.
type TrendLine struct {
	Country   string       `json:"country"`
	Slope     float64      `json:"slope"`
	Intercept float64      `json:"intercept"`
	Points    []TrendPoint `json:"points"`
}
