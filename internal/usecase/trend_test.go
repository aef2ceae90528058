package usecase

import (
	"math"
	"testing"

	"EconWatch/internal/domain/models"
)

func obs(country string, year int, value float64) models.Observation {
	return models.Observation{Country: country, Year: year, Value: value}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEstimateTrendExactLine(t *testing.T) {
	table := models.ObservationTable{Rows: []models.Observation{
		obs("USA", 2000, 1),
		obs("USA", 2001, 3),
		obs("USA", 2002, 5),
	}}

	trend, ok := EstimateTrend(table, "USA")
	if !ok {
		t.Fatalf("expected a trend")
	}
	if !almostEqual(trend.Slope, 2) {
		t.Fatalf("expected slope 2, got %v", trend.Slope)
	}
	if len(trend.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(trend.Points))
	}
	for i, want := range []float64{1, 3, 5} {
		if !almostEqual(trend.Points[i].Value, want) {
			t.Fatalf("point %d: expected %v, got %v", i, want, trend.Points[i].Value)
		}
	}
}

func TestEstimateTrendSingleRowDegenerates(t *testing.T) {
	table := models.ObservationTable{Rows: []models.Observation{
		obs("USA", 2015, 42.5),
	}}

	trend, ok := EstimateTrend(table, "USA")
	if !ok {
		t.Fatalf("expected a trend")
	}
	if trend.Slope != 0 {
		t.Fatalf("expected slope 0, got %v", trend.Slope)
	}
	if len(trend.Points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(trend.Points))
	}
	if trend.Points[0].Year != 2015 || !almostEqual(trend.Points[0].Value, 42.5) {
		t.Fatalf("unexpected point %+v", trend.Points[0])
	}
}

func TestEstimateTrendNoRowsIsNoTrend(t *testing.T) {
	table := models.ObservationTable{Rows: []models.Observation{
		obs("USA", 2015, 1),
	}}

	if _, ok := EstimateTrend(table, "CHN"); ok {
		t.Fatalf("expected no trend for absent country")
	}
}

func TestEstimateTrendMissingValuesCountAsZero(t *testing.T) {
	table := models.ObservationTable{Rows: []models.Observation{
		obs("USA", 2000, 10),
		{Country: "USA", Year: 2001, Missing: true},
		obs("USA", 2002, 10),
	}}

	trend, ok := EstimateTrend(table, "USA")
	if !ok {
		t.Fatalf("expected a trend")
	}
	// fit over {10, 0, 10}: flat line through the mean
	if !almostEqual(trend.Slope, 0) {
		t.Fatalf("expected slope 0, got %v", trend.Slope)
	}
	if !almostEqual(trend.Points[1].Value, 20.0/3.0) {
		t.Fatalf("expected mean prediction, got %v", trend.Points[1].Value)
	}
}

func TestEstimateTrendFiltersOtherCountries(t *testing.T) {
	table := models.ObservationTable{Rows: []models.Observation{
		obs("USA", 2000, 1),
		obs("CHN", 2000, 100),
		obs("USA", 2001, 2),
		obs("CHN", 2001, 200),
	}}

	trend, ok := EstimateTrend(table, "USA")
	if !ok {
		t.Fatalf("expected a trend")
	}
	if len(trend.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(trend.Points))
	}
	if !almostEqual(trend.Slope, 1) {
		t.Fatalf("expected slope 1, got %v", trend.Slope)
	}
}
