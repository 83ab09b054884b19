package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"codeberg.org/go-pdf/fpdf"
	"github.com/alexiusacademia/govdrop/internal/conductor"
	"github.com/google/uuid"
)

const placeholder = "---"

// footnote closes every memorial
const footnote = "Copper conductor, resistivity 0.0172 ohm·mm²/m at 20 °C, " +
	"two-way run S = 2·rho·L·I / dV. Design aid only, not a certified calculation."

// Meta identifies who and what a memorial is for
type Meta struct {
	Company string
	Client  string
	Site    string
	Date    time.Time
}

// Memorial is the calculation record of one sized circuit
type Memorial struct {
	ID uuid.UUID
	Meta

	Input  conductor.Input
	Result conductor.Result
	Table  []conductor.GaugeDrop
}

// NewMemorial assembles a memorial for a computed circuit
func NewMemorial(meta Meta, in conductor.Input, res conductor.Result) *Memorial {
	if strings.TrimSpace(meta.Client) == "" {
		meta.Client = placeholder
	}
	if strings.TrimSpace(meta.Site) == "" {
		meta.Site = placeholder
	}
	if meta.Date.IsZero() {
		meta.Date = time.Now()
	}

	return &Memorial{
		ID:     uuid.New(),
		Meta:   meta,
		Input:  in,
		Result: res,
		Table:  conductor.DropTable(in),
	}
}

// Parameters returns the one-line input summary
func (m *Memorial) Parameters(f Formatter) string {
	return fmt.Sprintf("Voltage: %s V | Current: %s A | Distance: %s m | Max drop: %s %%",
		f.Number(m.Input.Voltage, 0), f.Number(m.Input.Current, 1),
		f.Number(m.Input.Distance, 1), f.Number(m.Input.AllowedDropPercentage, 1))
}

// Summary returns the result lines shared by the terminal and PDF outputs
func (m *Memorial) Summary(f Formatter) []string {
	status := "Feasible"
	if !m.Result.IsFeasible {
		status = "NOT feasible with standard gauges"
	}
	return []string{
		"Suggested gauge: " + f.Gauge(m.Result.SuggestedGauge),
		"Exact section: " + f.Fixed(m.Result.CalculatedMinSection) + " mm²",
		"Voltage drop: " + f.Fixed(m.Result.ActualDropVolts) + " V",
		"Actual drop: " + f.Fixed(m.Result.ActualDropPercentage) + " %",
		"Status: " + status,
	}
}

// WritePDF renders the memorial as an A4 PDF
func (m *Memorial) WritePDF(filename string, f Formatter) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(m.Company+" - Calculation Memorial", true)
	pdf.SetCreationDate(m.Date)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(59, 130, 246)
	pdf.CellFormat(0, 10, tr(strings.ToUpper(m.Company)+" - CALCULATION MEMORIAL"), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 100, 100)
	for _, line := range []string{
		"Client: " + m.Client,
		"Site: " + m.Site,
		"Date: " + f.Date(m.Date),
		"Memorial: " + m.ID.String(),
	} {
		pdf.CellFormat(0, 7, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 7, tr(m.Parameters(f)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Result block
	if m.Result.IsFeasible {
		pdf.SetDrawColor(34, 197, 94)
	} else {
		pdf.SetDrawColor(239, 68, 68)
	}
	pdf.SetLineWidth(0.6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	for i, line := range m.Summary(f) {
		border := "LR"
		if i == 0 {
			border = "LTR"
			pdf.SetFont("Helvetica", "B", 16)
		} else {
			pdf.SetFont("Helvetica", "", 11)
		}
		pdf.CellFormat(0, 9, tr("  "+line), border, 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 2, "", "LBR", 1, "L", false, 0, "")
	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Ln(6)

	// Drop per gauge
	if len(m.Table) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, tr("Voltage drop per standard gauge"), "", 1, "L", false, 0, "")

		widths := []float64{40, 45, 45, 40}
		pdf.SetFillColor(229, 231, 235)
		for i, h := range []string{"Gauge (mm²)", "Drop (V)", "Drop (%)", "Within limit"} {
			pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 10)
		for _, row := range m.Table {
			within := "no"
			if row.WithinLimit {
				within = "yes"
			}
			fill := row.Gauge == m.Result.SuggestedGauge
			pdf.SetFillColor(219, 234, 254)
			cells := []string{
				f.Number(row.Gauge, 1),
				f.Number(row.DropVolts, 2),
				f.Number(row.DropPercentage, 2),
				within,
			}
			for i, c := range cells {
				pdf.CellFormat(widths[i], 6, tr(c), "1", 0, "C", fill, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.MultiCell(0, 4, tr(footnote), "", "L", false)

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := pdf.OutputFileAndClose(filename); err != nil {
		return fmt.Errorf("writing memorial %s: %w", filename, err)
	}
	return nil
}

// DefaultFilename returns the memorial file name for a client
func DefaultFilename(client string) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, strings.TrimSpace(client))
	if strings.Trim(name, "_") == "" || client == placeholder {
		name = "technical"
	}
	return "memorial_" + name + ".pdf"
}
