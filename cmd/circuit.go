package cmd

import (
	"github.com/alexiusacademia/govdrop/internal/conductor"
	"github.com/alexiusacademia/govdrop/internal/nbr"
	"github.com/spf13/cobra"
)

// circuitFlags are the sizing inputs shared by size and table
type circuitFlags struct {
	voltage  float64
	current  float64
	distance float64
	drop     float64
}

func addCircuitFlags(cmd *cobra.Command, f *circuitFlags) {
	cmd.Flags().Float64VarP(&f.voltage, "voltage", "V", 0, "Nominal voltage (V) (default GOVDROP_VOLTAGE or 220)")
	cmd.Flags().Float64VarP(&f.current, "current", "i", 0, "Design current (A) [required]")
	cmd.Flags().Float64VarP(&f.distance, "distance", "d", 0, "One-way cable length (m) [required]")
	cmd.Flags().Float64VarP(&f.drop, "drop", "p", 0, "Maximum voltage drop (%) (default GOVDROP_MAX_DROP or 4)")

	cmd.MarkFlagRequired("current")
	cmd.MarkFlagRequired("distance")
}

// input builds the calculator input, filling unset flags from the configuration
func (f *circuitFlags) input(cmd *cobra.Command) conductor.Input {
	in := conductor.Input{
		Voltage:               f.voltage,
		Current:               f.current,
		Distance:              f.distance,
		AllowedDropPercentage: f.drop,
	}
	if !cmd.Flags().Changed("voltage") {
		in.Voltage = cfg.Voltage
	}
	if !cmd.Flags().Changed("drop") {
		in.AllowedDropPercentage = cfg.MaxDrop
	}

	if in.Voltage > 0 && !nbr.IsNominalVoltage(in.Voltage) {
		log.WithField("voltage", in.Voltage).Warn("voltage is not one of the usual 127/220/380 V")
	}
	return in
}
