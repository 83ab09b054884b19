package conductor

import "github.com/alexiusacademia/govdrop/internal/nbr"

// limitTolerance absorbs float noise when comparing a drop with its limit
const limitTolerance = 1e-9

// GaugeDrop is the realized drop of a circuit for one commercial section
type GaugeDrop struct {
	Gauge          float64 `json:"gauge"`           // mm²
	DropVolts      float64 `json:"drop_volts"`      // V
	DropPercentage float64 `json:"drop_percentage"` // %
	WithinLimit    bool    `json:"within_limit"`
}

// DropTable evaluates the circuit against every commercial section, smallest
// first. It returns nil for invalid input.
func DropTable(in Input) []GaugeDrop {
	if !in.Valid() {
		return nil
	}

	loop := LoopFactor(in)
	gauges := nbr.StandardGauges()
	rows := make([]GaugeDrop, 0, len(gauges))
	for _, g := range gauges {
		dropV := loop / g
		dropPct := dropV / in.Voltage * 100
		rows = append(rows, GaugeDrop{
			Gauge:          g,
			DropVolts:      dropV,
			DropPercentage: dropPct,
			WithinLimit:    dropPct <= in.AllowedDropPercentage+limitTolerance,
		})
	}
	return rows
}
