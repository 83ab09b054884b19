package batch

import (
	"fmt"

	"github.com/alexiusacademia/govdrop/internal/conductor"
	"github.com/xuri/excelize/v2"
)

// Outcome pairs a circuit with its sizing result
type Outcome struct {
	Circuit Circuit
	Result  conductor.Result
}

// Valid reports whether the circuit could be computed at all.
// Positive inputs too large to size come back with gauge 0 and are invalid too.
func (o Outcome) Valid() bool {
	return o.Circuit.Valid() && o.Result.SuggestedGauge != 0
}

// Run sizes every circuit in order
func Run(circuits []Circuit) []Outcome {
	outcomes := make([]Outcome, len(circuits))
	for i, c := range circuits {
		outcomes[i] = Outcome{Circuit: c, Result: conductor.Calculate(c.Input)}
	}
	return outcomes
}

// Summary counts outcomes by status
type Summary struct {
	Total      int
	Feasible   int
	Infeasible int
	Invalid    int
}

// Summarize tallies the outcomes
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		switch {
		case !o.Valid():
			s.Invalid++
		case o.Result.IsFeasible:
			s.Feasible++
		default:
			s.Infeasible++
		}
	}
	return s
}

// ResultsSheet is the sheet written by WriteWorkbook
const ResultsSheet = "Results"

var resultHeader = []interface{}{
	"name", "voltage", "current", "distance", "allowed_drop_percentage",
	"suggested_gauge", "calculated_min_section", "actual_drop_volts",
	"actual_drop_percentage", "is_feasible",
}

// WriteWorkbook saves the outcomes as an .xlsx workbook
func WriteWorkbook(path string, outcomes []Outcome) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ResultsSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(ResultsSheet, "A1", &resultHeader); err != nil {
		return err
	}

	for i, o := range outcomes {
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			o.Circuit.Name,
			o.Circuit.Voltage,
			o.Circuit.Current,
			o.Circuit.Distance,
			o.Circuit.AllowedDropPercentage,
			o.Result.SuggestedGauge,
			o.Result.CalculatedMinSection,
			o.Result.ActualDropVolts,
			o.Result.ActualDropPercentage,
			o.Result.IsFeasible,
		}
		if err := f.SetSheetRow(ResultsSheet, cellName, &row); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
