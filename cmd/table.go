package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/govdrop/internal/conductor"
	"github.com/alexiusacademia/govdrop/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	tableCircuit   circuitFlags
	tableShowChart bool
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Show the voltage drop of every standard gauge",
	Long: `Evaluate a circuit against every standard copper section and show the
realized voltage drop, marking the sections that stay within the limit.

Examples:
  govdrop table --voltage 220 --current 30 --distance 50 --drop 4

  # With a terminal chart of the drop curve
  govdrop table -i 30 -d 50 --chart`,
	Run: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)

	addCircuitFlags(tableCmd, &tableCircuit)
	tableCmd.Flags().BoolVarP(&tableShowChart, "chart", "c", false, "Plot the drop curve in the terminal")
}

func runTable(cmd *cobra.Command, args []string) {
	in := tableCircuit.input(cmd)
	if !in.Valid() {
		fmt.Println("Error: voltage, current, distance and drop must all be positive numbers.")
		fmt.Println("Use 'govdrop table --help' for usage information.")
		return
	}
	result := conductor.Calculate(in)
	if result.SuggestedGauge == 0 {
		fmt.Println("Error: the values are too large to size a conductor.")
		return
	}
	rows := conductor.DropTable(in)
	f := formatter()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("             VOLTAGE DROP PER STANDARD GAUGE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  %s V, %s A, %s m, max %s%% (ΔVmax = %s V)\n",
		f.Number(in.Voltage, 0), f.Number(in.Current, 2), f.Number(in.Distance, 2),
		f.Number(in.AllowedDropPercentage, 2), f.Number(in.MaxDropVolts(), 2))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Gauge (mm²)\tDrop (V)\tDrop (%%)\tStatus\n")
	fmt.Fprintf(w, "  ───────────\t────────\t────────\t──────\n")
	for _, row := range rows {
		status := "✗"
		if row.WithinLimit {
			status = "✓"
		}
		if row.Gauge == result.SuggestedGauge {
			status += " ← SUGGESTED"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", f.Number(row.Gauge, 1), f.Number(row.DropVolts, 2), f.Number(row.DropPercentage, 2), status)
	}
	w.Flush()
	fmt.Println()

	if !result.IsFeasible {
		fmt.Println("  ⚠ No standard gauge keeps the drop within the limit.")
		fmt.Println()
	}

	if tableShowChart {
		fmt.Println(diagram.DrawDropCurve(diagram.DropChartData{
			Rows:              rows,
			AllowedPercentage: in.AllowedDropPercentage,
			SelectedGauge:     result.SuggestedGauge,
		}))
		fmt.Println()
	}
}
