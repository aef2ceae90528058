package usecase

import (
	"EconWatch/internal/domain/models"

	"gonum.org/v1/gonum/stat"
)

// EstimateTrend fits an ordinary-least-squares line to one country's
// observations and predicts a value for each observed year, in source
// order. Returns false when the table has no rows for the country.
//
// Missing values enter the fit as 0.0; the raw series keeps them missing.
func EstimateTrend(table models.ObservationTable, country string) (models.TrendLine, bool) {
	rows := table.ForCountry(country)
	if len(rows) == 0 {
		return models.TrendLine{}, false
	}

	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	for i, r := range rows {
		xs[i] = float64(r.Year)
		if r.Missing {
			ys[i] = 0
		} else {
			ys[i] = r.Value
		}
	}

	slope, intercept := fitLine(xs, ys)

	points := make([]models.TrendPoint, len(rows))
	for i, r := range rows {
		points[i] = models.TrendPoint{
			Year:  r.Year,
			Value: intercept + slope*float64(r.Year),
		}
	}

	return models.TrendLine{
		Country:   country,
		Slope:     slope,
		Intercept: intercept,
		Points:    points,
	}, true
}

// fitLine computes the degree-1 least-squares fit. A single point, or zero
// variance in the years, degenerates to a horizontal line through the mean
// rather than an error.
func fitLine(xs, ys []float64) (slope, intercept float64) {
	if len(xs) == 1 || allEqual(xs) {
		return 0, stat.Mean(ys, nil)
	}
	intercept, slope = stat.LinearRegression(xs, ys, nil, false)
	return slope, intercept
}

func allEqual(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}
