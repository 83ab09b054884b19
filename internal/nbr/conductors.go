package nbr

import "sort"

// Low-voltage copper conductor constants (NBR 5410 practice)

const (
	// Resistivity of annealed copper at 20 °C (Ω·mm²/m)
	RhoCopper = 0.0172

	// Minimum section for power circuits (mm²)
	MinSectionPower = 1.5

	// Default maximum voltage drop for a terminal circuit (%)
	DefaultMaxDropPercentage = 4.0
)

// standardGauges is the commercial section ladder in mm², strictly ascending
var standardGauges = [...]float64{
	1.5, 2.5, 4.0, 6.0, 10.0, 16.0, 25.0, 35.0, 50.0, 70.0, 95.0,
}

// NominalVoltages are the distribution voltages offered by the calculator form (V)
var NominalVoltages = [...]float64{127, 220, 380}

// StandardGauges returns a copy of the commercial section ladder
func StandardGauges() [len(standardGauges)]float64 {
	return standardGauges
}

// LargestGauge returns the largest commercial section (mm²)
func LargestGauge() float64 {
	return standardGauges[len(standardGauges)-1]
}

// IsStandardGauge reports whether s is one of the commercial sections
func IsStandardGauge(s float64) bool {
	for _, g := range standardGauges {
		if g == s {
			return true
		}
	}
	return false
}

// CeilGauge returns the first commercial section not smaller than target.
// ok is false when target exceeds the largest section.
func CeilGauge(target float64) (gauge float64, ok bool) {
	i := sort.SearchFloat64s(standardGauges[:], target)
	if i == len(standardGauges) {
		return 0, false
	}
	return standardGauges[i], true
}

// IsNominalVoltage reports whether v is one of the usual distribution voltages
func IsNominalVoltage(v float64) bool {
	for _, nv := range NominalVoltages {
		if nv == v {
			return true
		}
	}
	return false
}
