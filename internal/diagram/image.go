package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportDropChart exports the drop-per-gauge chart to an image file and
// returns the path written. The format follows the extension (png, svg, pdf);
// anything else gets ".png" appended.
func ExportDropChart(data DropChartData, filename string) (string, error) {
	if len(data.Rows) == 0 {
		return "", fmt.Errorf("no drop data to plot")
	}

	p := plot.New()
	p.Title.Text = data.Title
	if p.Title.Text == "" {
		p.Title.Text = "Voltage Drop per Conductor Section"
	}
	p.X.Label.Text = "Section (mm²)"
	p.Y.Label.Text = "Voltage drop (%)"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = gaugeTicks(data)
	p.Add(plotter.NewGrid())

	minX, maxX := data.Rows[0].Gauge, data.Rows[len(data.Rows)-1].Gauge

	// Drop curve
	curve := make(plotter.XYs, len(data.Rows))
	for i, row := range data.Rows {
		curve[i] = plotter.XY{X: row.Gauge, Y: row.DropPercentage}
	}
	dropLine, err := plotter.NewLine(curve)
	if err != nil {
		return "", err
	}
	dropLine.LineStyle.Width = vg.Points(2)
	dropLine.LineStyle.Color = color.RGBA{R: 59, G: 130, B: 246, A: 255}
	p.Add(dropLine)

	// Gauges split by compliance
	var ok, over plotter.XYs
	for _, row := range data.Rows {
		pt := plotter.XY{X: row.Gauge, Y: row.DropPercentage}
		if row.WithinLimit {
			ok = append(ok, pt)
		} else {
			over = append(over, pt)
		}
	}
	if err := addPoints(p, ok, color.RGBA{R: 34, G: 139, B: 34, A: 255}, 4); err != nil {
		return "", err
	}
	if err := addPoints(p, over, color.RGBA{R: 220, G: 38, B: 38, A: 255}, 4); err != nil {
		return "", err
	}

	// Allowed drop line
	limitLine, err := plotter.NewLine(plotter.XYs{
		{X: minX, Y: data.AllowedPercentage},
		{X: maxX, Y: data.AllowedPercentage},
	})
	if err != nil {
		return "", err
	}
	limitLine.LineStyle.Width = vg.Points(1.5)
	limitLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	limitLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(limitLine)

	labels := []struct {
		x, y float64
		text string
	}{
		{maxX * 0.6, data.AllowedPercentage, fmt.Sprintf("limit %.2f%%", data.AllowedPercentage)},
	}

	// Suggested gauge marker
	for _, row := range data.Rows {
		if row.Gauge != data.SelectedGauge {
			continue
		}
		sel, err := plotter.NewScatter(plotter.XYs{{X: row.Gauge, Y: row.DropPercentage}})
		if err != nil {
			return "", err
		}
		sel.GlyphStyle.Color = color.Black
		sel.GlyphStyle.Radius = vg.Points(7)
		sel.GlyphStyle.Shape = draw.RingGlyph{}
		p.Add(sel)
		labels = append(labels, struct {
			x, y float64
			text string
		}{row.Gauge, row.DropPercentage, fmt.Sprintf("  %.1f mm² (%.2f%%)", row.Gauge, row.DropPercentage)})
	}

	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return "", err
		}
		p.Add(l)
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}

func addPoints(p *plot.Plot, pts plotter.XYs, c color.Color, radius float64) error {
	if len(pts) == 0 {
		return nil
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(radius)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)
	return nil
}

// gaugeTicks labels the x axis with the commercial sections
func gaugeTicks(data DropChartData) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(data.Rows))
	for i, row := range data.Rows {
		ticks[i] = plot.Tick{Value: row.Gauge, Label: fmt.Sprintf("%g", row.Gauge)}
	}
	return ticks
}
