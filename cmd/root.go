package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/govdrop/internal/config"
	"github.com/alexiusacademia/govdrop/internal/report"
	"github.com/alexiusacademia/govdrop/internal/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	envFile string
	verbose bool

	// Loaded before any command runs
	cfg = config.Default()
	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "govdrop",
	Short: "Voltage Drop Wire Sizing Tool",
	Long: `govdrop - Go Voltage Drop Conductor Sizer

A CLI tool that selects the smallest standard copper conductor section
keeping the voltage drop of a low-voltage circuit within a limit.

This tool helps electrical designers:
  - Size single-phase copper circuits by voltage drop
  - Compare the realized drop of every standard gauge
  - Size many circuits at once from JSON, YAML or Excel files
  - Produce a PDF calculation memorial

Standard sections: 1.5 to 95 mm². Copper at 20 °C (ρ = 0.0172 Ω·mm²/m).
This is a design aid, not a certified engineering tool.`,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   govdrop v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Voltage Drop Conductor Sizer                         ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Selects the minimum commercial copper section for a")
		fmt.Println("  maximum allowed voltage drop.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Voltage drop sizing with 1.5 mm² safety minimum")
		fmt.Println("    • Drop table and charts for every standard gauge")
		fmt.Println("    • Batch sizing from JSON, YAML and Excel files")
		fmt.Println("    • PDF calculation memorial")
		fmt.Println()
		fmt.Println("  Use 'govdrop --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "Environment file with GOVDROP_* defaults")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")
}

// setup loads the configuration and configures the logger
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(envFile)
	if err != nil {
		return err
	}
	cfg = c

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level := cfg.LogLevel
	if verbose && level < logrus.InfoLevel {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	log.WithFields(logrus.Fields{
		"locale":  cfg.Locale.String(),
		"voltage": cfg.Voltage,
		"drop":    cfg.MaxDrop,
	}).Debug("configuration loaded")

	return nil
}

// formatter returns the number formatter for the configured locale
func formatter() report.Formatter {
	return report.FormatterFor(cfg.Locale)
}
