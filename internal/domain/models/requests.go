package models

// Requests for dashboard HTTP endpoints. Defined in domain for consistency and reuse.

// ChartRequest selects an indicator, up to five countries and a year range.
// Countries is comma-separated ISO3 codes; the five-country cap is a UI
// bound enforced here, the pipeline itself accepts any non-empty list.
type ChartRequest struct {
	Indicator string `query:"indicator" json:"indicator" validate:"required"`
	Countries string `query:"countries" json:"countries" validate:"required"`
	Start     int    `query:"start" json:"start" default:"2004" validate:"gte=1960"`
	End       int    `query:"end" json:"end" default:"2024" validate:"gte=1960"`
	Trend     *bool  `query:"trend" json:"trend" default:"true"`
}

// ShowTrend reports whether trend overlays were requested. The pointer keeps
// an explicit trend=false distinguishable from an absent parameter.
func (r *ChartRequest) ShowTrend() bool {
	return r.Trend == nil || *r.Trend
}
