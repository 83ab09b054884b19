package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/govdrop/internal/conductor"
	"github.com/guptarohit/asciigraph"
)

// DropChartData holds the data for drawing drop charts of one circuit
type DropChartData struct {
	Rows []conductor.GaugeDrop

	// Allowed drop (%)
	AllowedPercentage float64

	// Suggested commercial section (mm²), 0 if none
	SelectedGauge float64

	// Optional chart title
	Title string
}

// DrawDropBars creates an ASCII bar chart of the realized drop per gauge.
// Bars are scaled so the allowed drop sits at a fixed column.
func DrawDropBars(data DropChartData) string {
	var sb strings.Builder

	barWidth := 40
	limitCol := barWidth / 2

	sb.WriteString("\n")
	sb.WriteString("  VOLTAGE DROP PER GAUGE\n")
	sb.WriteString("  ──────────────────────\n\n")

	if len(data.Rows) == 0 || data.AllowedPercentage <= 0 {
		sb.WriteString("  (no data)\n")
		return sb.String()
	}

	scale := float64(limitCol) / data.AllowedPercentage

	for _, row := range data.Rows {
		// Clamp before converting; huge drops overflow int
		barLen, overflow := 0, false
		if v := row.DropPercentage * scale; v > float64(barWidth) || math.IsNaN(v) {
			barLen = barWidth
			overflow = true
		} else if v > 0 {
			barLen = int(v)
		}

		bar := []rune(strings.Repeat("█", barLen) + strings.Repeat(" ", barWidth-barLen))
		if bar[limitCol] == ' ' {
			bar[limitCol] = '┊'
		}

		end := "│"
		if overflow {
			end = "▶"
		}

		mark := ""
		if row.Gauge == data.SelectedGauge {
			mark = " ◄─ suggested"
		} else if !row.WithinLimit {
			mark = " ✗"
		}

		sb.WriteString(fmt.Sprintf("  %5.1f mm² │%s%s %6.2f%%%s\n", row.Gauge, string(bar), end, row.DropPercentage, mark))
	}

	sb.WriteString(fmt.Sprintf("\n  %s┊ = allowed drop %.2f%%\n", strings.Repeat(" ", 12+limitCol), data.AllowedPercentage))
	sb.WriteString("  ✗ = exceeds the allowed drop\n")

	return sb.String()
}

// DrawDropCurve plots the realized drop (%) across the gauge ladder
func DrawDropCurve(data DropChartData) string {
	if len(data.Rows) == 0 {
		return ""
	}

	drops := make([]float64, len(data.Rows))
	limit := make([]float64, len(data.Rows))
	for i, row := range data.Rows {
		drops[i] = row.DropPercentage
		limit[i] = data.AllowedPercentage
	}

	caption := fmt.Sprintf("drop %% from %.1f to %.1f mm² (flat line: allowed %.2f%%)",
		data.Rows[0].Gauge, data.Rows[len(data.Rows)-1].Gauge, data.AllowedPercentage)

	return asciigraph.PlotMany([][]float64{drops, limit},
		asciigraph.Height(12),
		asciigraph.Width(55),
		asciigraph.Precision(2),
		asciigraph.Offset(4),
		asciigraph.Caption(caption),
	)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := runeLen(title)
	for _, line := range lines {
		if n := runeLen(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to width runes; %-*s counts bytes and breaks on mm²
func pad(s string, width int) string {
	if n := runeLen(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func runeLen(s string) int {
	return len([]rune(s))
}
