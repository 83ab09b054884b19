package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/alexiusacademia/govdrop/internal/conductor"
	"github.com/alexiusacademia/govdrop/internal/diagram"
	"github.com/alexiusacademia/govdrop/internal/nbr"
	"github.com/alexiusacademia/govdrop/internal/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	sizeCircuit circuitFlags

	// Memorial inputs
	sizeClient string
	sizeSite   string

	// Output options
	sizeShowDiagram bool
	sizeExportFile  string
	sizePDFFile     string
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Size a copper conductor by voltage drop",
	Long: `Select the smallest standard copper section that keeps the voltage
drop of a single-phase circuit within the allowed percentage.

The required section is S = 2·ρ·L·I / ΔVmax, with a 1.5 mm² minimum,
rounded up to the next standard gauge. When no standard gauge is large
enough, 95 mm² is reported as not feasible.

Examples:
  # 30 A shower circuit, 50 m away, 220 V, 4% maximum drop
  govdrop size --voltage 220 --current 30 --distance 50 --drop 4

  # Using short flags and the configured voltage/drop defaults
  govdrop size -i 30 -d 50

  # With a drop chart and a PDF memorial
  govdrop size -i 60 -d 100 -V 127 -p 3 --client "ACME" --site "Warehouse" \
    --output drop.png --pdf memorial.pdf`,
	Run: runSize,
}

func init() {
	rootCmd.AddCommand(sizeCmd)

	addCircuitFlags(sizeCmd, &sizeCircuit)

	// Memorial flags
	sizeCmd.Flags().StringVar(&sizeClient, "client", "", "Client name for the memorial")
	sizeCmd.Flags().StringVar(&sizeSite, "site", "", "Site / job name for the memorial")

	// Diagram options
	sizeCmd.Flags().BoolVar(&sizeShowDiagram, "diagram", false, "Show ASCII drop-per-gauge chart")
	sizeCmd.Flags().StringVarP(&sizeExportFile, "output", "o", "", "Export drop chart to file (png, svg, pdf)")
	sizeCmd.Flags().StringVar(&sizePDFFile, "pdf", "", "Write the PDF calculation memorial to this file (use 'auto' for a name from the client)")
}

func runSize(cmd *cobra.Command, args []string) {
	in := sizeCircuit.input(cmd)
	result := conductor.Calculate(in)

	if !in.Valid() {
		fmt.Println("Error: voltage, current, distance and drop must all be positive numbers.")
		fmt.Println("Use 'govdrop size --help' for usage information.")
		return
	}
	if result.SuggestedGauge == 0 {
		fmt.Println("Error: the values are too large to size a conductor.")
		return
	}

	f := formatter()
	memorial := report.NewMemorial(report.Meta{
		Company: cfg.Company,
		Client:  sizeClient,
		Site:    sizeSite,
		Date:    time.Now(),
	}, in, result)

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          VOLTAGE DROP CONDUCTOR SIZING - COPPER")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if sizeClient != "" || sizeSite != "" {
		fmt.Printf("  Client: %s\n", memorial.Client)
		fmt.Printf("  Site:   %s\n", memorial.Site)
		fmt.Println()
	}

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nominal Voltage:\t%s V\n", f.Number(in.Voltage, 0))
	fmt.Fprintf(w, "  Design Current:\t%s A\n", f.Number(in.Current, 2))
	fmt.Fprintf(w, "  One-way Distance:\t%s m\n", f.Number(in.Distance, 2))
	fmt.Fprintf(w, "  Allowed Drop:\t%s %%\n", f.Number(in.AllowedDropPercentage, 2))
	w.Flush()
	fmt.Println()

	// Intermediate values
	fmt.Println("CALCULATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Copper resistivity (ρ):\t%s Ω·mm²/m\n", f.Number(nbr.RhoCopper, 4))
	fmt.Fprintf(w, "  Allowed drop (ΔVmax):\t%s V\n", f.Number(in.MaxDropVolts(), 2))
	fmt.Fprintf(w, "  2·ρ·L·I:\t%s V·mm²\n", f.Number(conductor.LoopFactor(in), 2))
	fmt.Fprintf(w, "  Required section (min %s mm²):\t%s mm²\n", f.Number(nbr.MinSectionPower, 1), f.Fixed(result.CalculatedMinSection))
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("RESULT", memorial.Summary(f)))
	fmt.Println()

	// Status
	fmt.Println("STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	if result.IsFeasible {
		fmt.Printf("  ✓ %s keeps the drop within %s%%\n", f.Gauge(result.SuggestedGauge), f.Number(in.AllowedDropPercentage, 2))
	} else {
		fmt.Printf("  ⚠ Required section exceeds %s. Split the load, raise the\n", f.Gauge(nbr.LargestGauge()))
		fmt.Println("    voltage or shorten the run; the drop shown is for the largest gauge.")
	}
	fmt.Println()

	chart := diagram.DropChartData{
		Rows:              memorial.Table,
		AllowedPercentage: in.AllowedDropPercentage,
		SelectedGauge:     result.SuggestedGauge,
	}

	if sizeShowDiagram {
		fmt.Print(diagram.DrawDropBars(chart))
		fmt.Println()
	}

	if sizeExportFile != "" {
		if path, err := diagram.ExportDropChart(chart, sizeExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			log.WithField("file", path).Info("drop chart exported")
			fmt.Printf("  Diagram exported to: %s\n", path)
		}
	}

	if sizePDFFile != "" {
		path := sizePDFFile
		if path == "auto" {
			path = filepath.Join(".", report.DefaultFilename(sizeClient))
		}
		if err := memorial.WritePDF(path, f); err != nil {
			fmt.Printf("Error writing memorial: %v\n", err)
		} else {
			log.WithFields(logrus.Fields{"file": path, "id": memorial.ID}).Info("memorial written")
			fmt.Printf("  Memorial written to: %s\n", path)
		}
	}
}
