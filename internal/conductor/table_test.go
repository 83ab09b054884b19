package conductor

import (
	"testing"

	"github.com/alexiusacademia/govdrop/internal/nbr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropTable(t *testing.T) {
	in := Input{Voltage: 220, Current: 30, Distance: 50, AllowedDropPercentage: 4}
	rows := DropTable(in)

	gauges := nbr.StandardGauges()
	require.Len(t, rows, len(gauges))

	for i, row := range rows {
		assert.Equal(t, gauges[i], row.Gauge)
		if i > 0 {
			assert.Less(t, row.DropVolts, rows[i-1].DropVolts)
		}
	}

	// 4 mm² gives 12.9 V, 6 mm² gives 8.6 V against an 8.8 V limit
	assert.False(t, rows[2].WithinLimit)
	assert.True(t, rows[3].WithinLimit)
	assert.InDelta(t, 8.6, rows[3].DropVolts, 1e-9)
	assert.InDelta(t, 3.909, rows[3].DropPercentage, 1e-3)
}

func TestDropTableAgreesWithCalculate(t *testing.T) {
	forEachGridInput(func(in Input) {
		res := Calculate(in)
		for _, row := range DropTable(in) {
			if row.Gauge == res.SuggestedGauge {
				assert.Equal(t, res.ActualDropVolts, Fixed2(row.DropVolts), "%+v", in)
				assert.Equal(t, res.ActualDropPercentage, Fixed2(row.DropPercentage), "%+v", in)
				if res.IsFeasible {
					assert.True(t, row.WithinLimit, "%+v", in)
				}
			}
		}
	})
}

func TestDropTableInvalidInput(t *testing.T) {
	assert.Nil(t, DropTable(Input{Voltage: 220, Current: 10, Distance: -5, AllowedDropPercentage: 4}))
}
