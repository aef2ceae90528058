// Package render draws a ChartSpec into a static PNG for export. The
// interactive rendering happens client-side; this is the server-side
// fallback for downloads and embedding.
package render

import (
	"bytes"
	"fmt"
	"image/color"

	"EconWatch/internal/domain/models"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 7 * vg.Inch
)

// PNG renders the chart specification into PNG bytes. Missing raw points
// are skipped, producing a gap-free polyline per series; trend series come
// out dashed with reduced alpha, matching their style hints.
func PNG(spec *models.ChartSpec) ([]byte, error) {
	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = "Year"
	p.Y.Label.Text = spec.YAxisLabel
	p.Legend.Top = true

	rawIdx := 0
	colors := make(map[string]color.Color)
	for _, s := range spec.Series {
		xys := make(plotter.XYs, 0, len(s.Points))
		for _, pt := range s.Points {
			if pt.Value == nil {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(pt.Year), Y: *pt.Value})
		}
		if len(xys) == 0 {
			continue
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("render series %q: %w", s.Name, err)
		}
		line.LineStyle.Width = vg.Points(1.5)

		// Trend series reuse the raw series color of the same country.
		base, ok := colors[s.Country]
		if !ok {
			base = plotutil.Color(rawIdx)
			colors[s.Country] = base
			rawIdx++
		}
		line.LineStyle.Color = withOpacity(base, s.Opacity)
		if s.Dash {
			line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
		}

		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	wt, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return nil, fmt.Errorf("render png: %w", err)
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write png: %w", err)
	}
	return buf.Bytes(), nil
}

func withOpacity(c color.Color, opacity float64) color.Color {
	if opacity >= 1 || opacity <= 0 {
		return c
	}
	r, g, b, _ := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(opacity * 255),
	}
}
