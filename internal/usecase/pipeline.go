package usecase

import (
	"context"

	"EconWatch/internal/catalog"
	"EconWatch/internal/domain/models"
	drepo "EconWatch/internal/domain/repository"
)

// ChartBuilder runs one fetch → normalize → trend → assemble cycle per
// request. All intermediate state is request-scoped; only the source's memo
// cache outlives a cycle.
type ChartBuilder struct {
	source  drepo.SeriesSource
	metrics drepo.Metrics
}

func NewChartBuilder(source drepo.SeriesSource, metrics drepo.Metrics) *ChartBuilder {
	return &ChartBuilder{source: source, metrics: metrics}
}

// Build produces a chart for the request, or (nil, nil) when the source has
// no data for the selection. Trend lines are fitted per country actually
// present in the table, not per requested country.
func (b *ChartBuilder) Build(ctx context.Context, indicator string, countries []string, yearStart, yearEnd int, showTrend bool) (*models.ChartSpec, error) {
	records, err := b.source.Fetch(ctx, indicator, countries, yearStart, yearEnd)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	table, err := Normalize(records)
	if err != nil {
		return nil, err
	}

	trends := make(map[string]models.TrendLine)
	names := make(map[string]string)
	if showTrend {
		for _, code := range table.Countries() {
			if t, ok := EstimateTrend(table, code); ok {
				trends[code] = t
			}
			names[code] = catalog.CountryName(code)
		}
	}

	spec := AssembleChart(table, trends, catalog.IndicatorLabel(indicator), names, showTrend)
	if b.metrics != nil {
		b.metrics.RecordChartBuilt(showTrend)
	}
	return &spec, nil
}
