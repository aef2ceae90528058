package models

// Series kinds emitted by the chart assembler.
const (
	SeriesKindRaw   = "raw"
	SeriesKindTrend = "trend"
)

// SeriesPoint is one (year, value) pair. Value is nil when the observation
// is missing, which renders as a gap in the raw series.
type SeriesPoint struct {
	Year  int      `json:"year"`
	Value *float64 `json:"value"`
}

// ChartSeries is one named line in the chart.
type ChartSeries struct {
	Name    string        `json:"name"`
	Country string        `json:"country"`
	Kind    string        `json:"kind"`
	Dash    bool          `json:"dash"`
	Opacity float64       `json:"opacity"`
	Points  []SeriesPoint `json:"points"`
}

// ChartSpec is the declarative chart description handed to renderers.
// Rebuilt on every request, never persisted.
type ChartSpec struct {
	Title      string        `json:"title"`
	YAxisLabel string        `json:"y_axis_label"`
	Series     []ChartSeries `json:"series"`
}
