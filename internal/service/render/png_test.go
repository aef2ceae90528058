package render

import (
	"bytes"
	"testing"

	"EconWatch/internal/domain/models"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func fv(v float64) *float64 { return &v }

func TestPNGRendersSeries(t *testing.T) {
	spec := &models.ChartSpec{
		Title:      "GDP (current US$) Over Time",
		YAxisLabel: "GDP (current US$)",
		Series: []models.ChartSeries{
			{
				Name: "USA", Country: "USA", Kind: models.SeriesKindRaw, Opacity: 1,
				Points: []models.SeriesPoint{
					{Year: 2019, Value: fv(1.0)},
					{Year: 2020, Value: nil}, // gap
					{Year: 2021, Value: fv(3.0)},
				},
			},
			{
				Name: "United States trend", Country: "USA", Kind: models.SeriesKindTrend,
				Dash: true, Opacity: 0.5,
				Points: []models.SeriesPoint{
					{Year: 2019, Value: fv(1.0)},
					{Year: 2021, Value: fv(3.0)},
				},
			},
		},
	}

	b, err := PNG(spec)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(b, pngMagic) {
		t.Fatalf("expected PNG output")
	}
}

func TestPNGEmptySpec(t *testing.T) {
	b, err := PNG(&models.ChartSpec{Title: "empty"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(b) == 0 {
		t.Fatalf("expected a blank chart, not empty output")
	}
}
