package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/govdrop/internal/batch"
	"github.com/spf13/cobra"
)

var (
	batchFile   string
	batchOutput string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Size many circuits from a JSON, YAML or Excel file",
	Long: `Size every circuit listed in a file and print a results table.

Supported inputs:
  .json         array of circuits
  .yaml / .yml  list of circuits
  .xlsx         first sheet, header row with the columns below

Fields / columns:
  name, voltage, current, distance, allowed_drop_percentage

Example JSON file:
[
  {"name": "Shower", "voltage": 220, "current": 30, "distance": 50, "allowed_drop_percentage": 4},
  {"name": "Pump", "voltage": 380, "current": 45, "distance": 120, "allowed_drop_percentage": 4}
]

Examples:
  govdrop batch --file circuits.json
  govdrop batch -f circuits.xlsx -o results.xlsx`,
	Run: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Path to the circuits file [required]")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Write the results to an .xlsx workbook")
	batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, args []string) {
	circuits, err := batch.LoadFile(batchFile, log)
	if err != nil {
		fmt.Printf("Error loading circuits: %v\n", err)
		return
	}

	outcomes := batch.Run(circuits)
	f := formatter()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("              BATCH VOLTAGE DROP SIZING")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Circuit\tV\tA\tm\tMax %%\tGauge (mm²)\tS min\tΔV (V)\tΔV (%%)\tStatus\n")
	fmt.Fprintf(w, "  ───────\t─\t─\t─\t─────\t───────────\t─────\t──────\t──────\t──────\n")
	for _, o := range outcomes {
		c, r := o.Circuit, o.Result
		status := "✓"
		switch {
		case !o.Valid():
			status = "invalid input"
			log.WithField("circuit", c.Name).Warn("circuit has non-positive or out-of-range values")
		case !r.IsFeasible:
			status = "⚠ not feasible"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.Name,
			f.Number(c.Voltage, 0), f.Number(c.Current, 2), f.Number(c.Distance, 2), f.Number(c.AllowedDropPercentage, 2),
			f.Number(r.SuggestedGauge, 1), f.Fixed(r.CalculatedMinSection),
			f.Fixed(r.ActualDropVolts), f.Fixed(r.ActualDropPercentage),
			status)
	}
	w.Flush()
	fmt.Println()

	s := batch.Summarize(outcomes)
	fmt.Println("SUMMARY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Circuits:\t%d\n", s.Total)
	fmt.Fprintf(w, "  Feasible:\t%d\n", s.Feasible)
	fmt.Fprintf(w, "  Not feasible:\t%d\n", s.Infeasible)
	fmt.Fprintf(w, "  Invalid input:\t%d\n", s.Invalid)
	w.Flush()
	fmt.Println()

	if batchOutput != "" {
		if err := batch.WriteWorkbook(batchOutput, outcomes); err != nil {
			fmt.Printf("Error writing results: %v\n", err)
			return
		}
		log.WithField("file", batchOutput).Info("results workbook written")
		fmt.Printf("  Results written to: %s\n", batchOutput)
	}
}
