// Package chart draws the analytics bar charts as PNG images.
package chart

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/pgEdge/pgedge-agrigen/internal/analysis"
)

// File names written by the charts command.
const (
	TopStatesFile = "top_states_by_value.png"
	YieldFile     = "yield_index_by_crop.png"
)

var (
	valueColor = color.RGBA{R: 0, G: 212, B: 255, A: 255}
	yieldColor = color.RGBA{R: 0, G: 255, B: 136, A: 255}
)

// Size is the rendered image size.
type Size struct {
	Width  vg.Length
	Height vg.Length
}

// DefaultSize fits a half-width dashboard column.
var DefaultSize = Size{Width: 8 * vg.Inch, Height: 5 * vg.Inch}

// TopStates plots summed market value for the given states.
func TopStates(values []analysis.StateValue, size Size) ([]byte, error) {
	names := make([]string, len(values))
	bars := make(plotter.Values, len(values))
	for i, v := range values {
		names[i] = v.State
		bars[i] = v.MarketValueUSD
	}
	return barChart(fmt.Sprintf("Top %d States by Market Value", len(values)), "Market_Value_USD", names, bars, valueColor, size)
}

// YieldByCrop plots the mean yield index per crop.
func YieldByCrop(yields []analysis.CropYield, size Size) ([]byte, error) {
	names := make([]string, len(yields))
	bars := make(plotter.Values, len(yields))
	for i, y := range yields {
		names[i] = y.Crop
		bars[i] = y.YieldIndex
	}
	return barChart("Average Yield Index by Crop", "Yield_Index", names, bars, yieldColor, size)
}

func barChart(title, yLabel string, names []string, values plotter.Values, c color.Color, size Size) ([]byte, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	// An empty filtered set still produces an (empty) chart.
	if len(values) > 0 {
		bars, err := plotter.NewBarChart(values, vg.Points(20))
		if err != nil {
			return nil, fmt.Errorf("failed to build bars: %w", err)
		}
		bars.Color = c
		bars.LineStyle.Width = vg.Length(0)
		p.Add(bars)
		p.NominalX(names...)
		p.X.Tick.Label.Rotation = 0.6
		p.X.Tick.Label.XAlign = -0.9
	}

	w, err := p.WriterTo(size.Width, size.Height, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create chart canvas: %w", err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}
	return buf.Bytes(), nil
}
