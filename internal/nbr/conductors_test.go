package nbr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardGaugesAscending(t *testing.T) {
	gauges := StandardGauges()
	for i := 1; i < len(gauges); i++ {
		assert.Less(t, gauges[i-1], gauges[i], "ladder must be strictly ascending at %d", i)
	}
	assert.Equal(t, MinSectionPower, gauges[0])
	assert.Equal(t, 95.0, LargestGauge())
}

func TestStandardGaugesIsCopy(t *testing.T) {
	gauges := StandardGauges()
	gauges[0] = 999
	assert.Equal(t, 1.5, StandardGauges()[0])
}

func TestCeilGauge(t *testing.T) {
	tests := []struct {
		target float64
		want   float64
		ok     bool
	}{
		{0, 1.5, true},
		{1.5, 1.5, true},
		{1.50001, 2.5, true},
		{5.8636, 6.0, true},
		{54.17, 70.0, true},
		{95.0, 95.0, true},
		{95.0001, 0, false},
		{390.9, 0, false},
		{math.Inf(1), 0, false},
	}

	for _, tt := range tests {
		got, ok := CeilGauge(tt.target)
		assert.Equal(t, tt.ok, ok, "target %v", tt.target)
		assert.Equal(t, tt.want, got, "target %v", tt.target)
	}
}

func TestIsStandardGauge(t *testing.T) {
	assert.True(t, IsStandardGauge(2.5))
	assert.True(t, IsStandardGauge(95))
	assert.False(t, IsStandardGauge(3))
	assert.False(t, IsStandardGauge(120))
}

func TestIsNominalVoltage(t *testing.T) {
	assert.True(t, IsNominalVoltage(127))
	assert.True(t, IsNominalVoltage(220))
	assert.True(t, IsNominalVoltage(380))
	assert.False(t, IsNominalVoltage(230))
}
