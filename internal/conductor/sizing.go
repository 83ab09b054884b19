package conductor

import (
	"math"

	"github.com/alexiusacademia/govdrop/internal/nbr"
	"github.com/shopspring/decimal"
)

// Input describes a single-phase copper circuit to be sized
type Input struct {
	Voltage               float64 `json:"voltage" yaml:"voltage"`                                 // Nominal voltage (V)
	Current               float64 `json:"current" yaml:"current"`                                 // Design current (A)
	Distance              float64 `json:"distance" yaml:"distance"`                               // One-way run length (m)
	AllowedDropPercentage float64 `json:"allowed_drop_percentage" yaml:"allowed_drop_percentage"` // Maximum drop (%)
}

// Result holds the sized conductor. The three section/drop fields are
// fixed two-decimal strings ready for display.
type Result struct {
	SuggestedGauge       float64 `json:"suggested_gauge"`        // Commercial section (mm²)
	CalculatedMinSection string  `json:"calculated_min_section"` // Theoretical section before rounding up (mm²)
	ActualDropVolts      string  `json:"actual_drop_volts"`      // Drop with the suggested gauge (V)
	ActualDropPercentage string  `json:"actual_drop_percentage"` // Drop with the suggested gauge (%)
	IsFeasible           bool    `json:"is_feasible"`
}

const zeroFixed = "0.00"

// invalidResult is returned when no meaningful computation is possible
var invalidResult = Result{
	SuggestedGauge:       0,
	CalculatedMinSection: zeroFixed,
	ActualDropVolts:      zeroFixed,
	ActualDropPercentage: zeroFixed,
	IsFeasible:           false,
}

// Valid reports whether every field is a positive finite number
func (in Input) Valid() bool {
	return positive(in.Voltage) && positive(in.Current) &&
		positive(in.Distance) && positive(in.AllowedDropPercentage)
}

// MaxDropVolts returns the allowed drop converted to volts
func (in Input) MaxDropVolts() float64 {
	return in.Voltage * (in.AllowedDropPercentage / 100)
}

// LoopFactor returns 2·ρ·L·I (V·mm²), the drop across a 1 mm² conductor
// for the round trip of the current.
func LoopFactor(in Input) float64 {
	return 2 * nbr.RhoCopper * in.Distance * in.Current
}

// Calculate selects the smallest commercial copper section that keeps the
// voltage drop within the allowed percentage.
//
// Invalid input (any field non-positive or non-finite) yields a zeroed
// result with IsFeasible false. When even the largest commercial section is
// not enough, the largest one is suggested and IsFeasible is false.
func Calculate(in Input) Result {
	if !in.Valid() {
		return invalidResult
	}

	loop := LoopFactor(in)

	// S = 2ρLI / ΔVmax
	exactSection := loop / in.MaxDropVolts()
	if !finite(exactSection) {
		return invalidResult
	}
	exactSection = math.Max(exactSection, nbr.MinSectionPower)

	gauge, feasible := nbr.CeilGauge(exactSection)
	if !feasible {
		gauge = nbr.LargestGauge()
	}

	// ΔV = 2ρLI / S with the commercial section
	dropV := loop / gauge
	dropPct := dropV / in.Voltage * 100
	if !finite(dropV) || !finite(dropPct) {
		return invalidResult
	}

	return Result{
		SuggestedGauge:       gauge,
		CalculatedMinSection: Fixed2(exactSection),
		ActualDropVolts:      Fixed2(dropV),
		ActualDropPercentage: Fixed2(dropPct),
		IsFeasible:           feasible,
	}
}

// Fixed2 formats v with exactly two decimals, rounding half away from zero.
// Non-finite values format as "0.00".
func Fixed2(v float64) string {
	if !finite(v) {
		return zeroFixed
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
