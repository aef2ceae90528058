package usecase

import "EconWatch/internal/domain/models"

const trendOpacity = 0.5

// AssembleChart builds the declarative chart description from a normalized
// table and per-country trend lines. One raw series per distinct country in
// first-appearance order; when showTrend is set, one dashed trend series per
// country that has a fit. Pure transform, no state.
func AssembleChart(
	table models.ObservationTable,
	trends map[string]models.TrendLine,
	indicatorLabel string,
	countryNames map[string]string,
	showTrend bool,
) models.ChartSpec {
	spec := models.ChartSpec{
		Title:      indicatorLabel + " Over Time",
		YAxisLabel: indicatorLabel,
	}

	countries := table.Countries()
	for _, code := range countries {
		rows := table.ForCountry(code)
		points := make([]models.SeriesPoint, len(rows))
		for i, r := range rows {
			p := models.SeriesPoint{Year: r.Year}
			if !r.Missing {
				v := r.Value
				p.Value = &v
			}
			points[i] = p
		}
		spec.Series = append(spec.Series, models.ChartSeries{
			Name:    code,
			Country: code,
			Kind:    models.SeriesKindRaw,
			Opacity: 1,
			Points:  points,
		})
	}

	if !showTrend {
		return spec
	}

	for _, code := range countries {
		trend, ok := trends[code]
		if !ok {
			continue
		}
		points := make([]models.SeriesPoint, len(trend.Points))
		for i, tp := range trend.Points {
			v := tp.Value
			points[i] = models.SeriesPoint{Year: tp.Year, Value: &v}
		}
		spec.Series = append(spec.Series, models.ChartSeries{
			Name:    displayName(countryNames, code) + " trend",
			Country: code,
			Kind:    models.SeriesKindTrend,
			Dash:    true,
			Opacity: trendOpacity,
			Points:  points,
		})
	}

	return spec
}

func displayName(names map[string]string, code string) string {
	if n, ok := names[code]; ok {
		return n
	}
	return code
}
