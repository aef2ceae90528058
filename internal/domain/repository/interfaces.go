package repository

import (
	"context"
	"encoding/json"
)

// SourceRecord is one raw record from the statistical source, prior to
// normalization. Value stays raw JSON so non-numeric payloads survive until
// the normalization boundary decides what they are.
type SourceRecord struct {
	Country string          `json:"countryiso3code"`
	Date    string          `json:"date"`
	Value   json.RawMessage `json:"value"`
}

// SeriesSource fetches one indicator time series for a set of countries.
// A (nil, nil) return means the source had no usable data for the request,
// which is a normal empty outcome, not an error.
type SeriesSource interface {
	Fetch(ctx context.Context, indicator string, countries []string, yearStart, yearEnd int) ([]SourceRecord, error)
}

// Metrics records pipeline observability signals.
type Metrics interface {
	RecordFetch(indicator, outcome string)
	RecordCacheLookup(result string)
	RecordFetchLatency(indicator string, seconds float64)
	RecordChartBuilt(trend bool)
}
