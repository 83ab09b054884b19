package conductor

import (
	"math"
	"strconv"
	"sync"
	"testing"

	"github.com/alexiusacademia/govdrop/internal/nbr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	gridVoltages  = []float64{12, 127, 220, 380}
	gridCurrents  = []float64{0.5, 10, 32, 100, 400}
	gridDistances = []float64{1, 25, 100, 800}
	gridDrops     = []float64{0.5, 2, 4, 10}
)

func forEachGridInput(fn func(in Input)) {
	for _, v := range gridVoltages {
		for _, c := range gridCurrents {
			for _, d := range gridDistances {
				for _, p := range gridDrops {
					fn(Input{Voltage: v, Current: c, Distance: d, AllowedDropPercentage: p})
				}
			}
		}
	}
}

func section(t *testing.T, r Result) float64 {
	t.Helper()
	s, err := strconv.ParseFloat(r.CalculatedMinSection, 64)
	require.NoError(t, err)
	return s
}

func TestCalculateExamples(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want Result
	}{
		{
			name: "220V 30A 50m 4%",
			in:   Input{Voltage: 220, Current: 30, Distance: 50, AllowedDropPercentage: 4},
			want: Result{
				SuggestedGauge:       6.0,
				CalculatedMinSection: "5.86",
				ActualDropVolts:      "8.60",
				ActualDropPercentage: "3.91",
				IsFeasible:           true,
			},
		},
		{
			name: "127V 60A 100m 3%",
			in:   Input{Voltage: 127, Current: 60, Distance: 100, AllowedDropPercentage: 3},
			want: Result{
				SuggestedGauge:       70.0,
				CalculatedMinSection: "54.17",
				ActualDropVolts:      "2.95",
				ActualDropPercentage: "2.32",
				IsFeasible:           true,
			},
		},
		{
			name: "220V 200A 500m 4% exceeds the ladder",
			in:   Input{Voltage: 220, Current: 200, Distance: 500, AllowedDropPercentage: 4},
			want: Result{
				SuggestedGauge:       95.0,
				CalculatedMinSection: "390.91",
				ActualDropVolts:      "36.21",
				ActualDropPercentage: "16.46",
				IsFeasible:           false,
			},
		},
		{
			name: "short light circuit floors at minimum section",
			in:   Input{Voltage: 220, Current: 10, Distance: 10, AllowedDropPercentage: 4},
			want: Result{
				SuggestedGauge:       1.5,
				CalculatedMinSection: "1.50",
				ActualDropVolts:      "2.29",
				ActualDropPercentage: "1.04",
				IsFeasible:           true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Calculate(tt.in))
		})
	}
}

func TestCalculateInvalidInput(t *testing.T) {
	valid := Input{Voltage: 220, Current: 30, Distance: 50, AllowedDropPercentage: 4}
	sentinel := Result{
		SuggestedGauge:       0,
		CalculatedMinSection: "0.00",
		ActualDropVolts:      "0.00",
		ActualDropPercentage: "0.00",
		IsFeasible:           false,
	}

	bad := []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)}
	mutators := map[string]func(*Input, float64){
		"voltage":  func(in *Input, v float64) { in.Voltage = v },
		"current":  func(in *Input, v float64) { in.Current = v },
		"distance": func(in *Input, v float64) { in.Distance = v },
		"drop":     func(in *Input, v float64) { in.AllowedDropPercentage = v },
	}

	for field, set := range mutators {
		for _, v := range bad {
			in := valid
			set(&in, v)
			assert.Equal(t, sentinel, Calculate(in), "%s=%v", field, v)
		}
	}

	t.Run("zero current", func(t *testing.T) {
		res := Calculate(Input{Voltage: 220, Current: 0, Distance: 50, AllowedDropPercentage: 4})
		assert.False(t, res.IsFeasible)
		assert.Zero(t, res.SuggestedGauge)
	})

	t.Run("zero value input", func(t *testing.T) {
		assert.Equal(t, sentinel, Calculate(Input{}))
	})
}

func TestCalculateOverflowFallsBackToSentinel(t *testing.T) {
	res := Calculate(Input{Voltage: 220, Current: math.MaxFloat64, Distance: math.MaxFloat64, AllowedDropPercentage: 4})
	assert.Equal(t, invalidResult, res)
}

func TestCalculateGaugeAlwaysStandard(t *testing.T) {
	forEachGridInput(func(in Input) {
		res := Calculate(in)
		assert.True(t, nbr.IsStandardGauge(res.SuggestedGauge), "%+v -> %v", in, res.SuggestedGauge)
		assert.GreaterOrEqual(t, section(t, res), nbr.MinSectionPower, "%+v", in)
	})
}

func TestCalculateFeasibilityBoundary(t *testing.T) {
	// V=100 and 1% give ΔVmax = 1 V, so S = 0.0344·L·I
	t.Run("just below the largest gauge", func(t *testing.T) {
		res := Calculate(Input{Voltage: 100, Current: 27, Distance: 100, AllowedDropPercentage: 1})
		assert.True(t, res.IsFeasible)
		assert.Equal(t, 95.0, res.SuggestedGauge)
		assert.Equal(t, "92.88", res.CalculatedMinSection)
	})

	t.Run("just above the largest gauge", func(t *testing.T) {
		res := Calculate(Input{Voltage: 100, Current: 28, Distance: 100, AllowedDropPercentage: 1})
		assert.False(t, res.IsFeasible)
		assert.Equal(t, 95.0, res.SuggestedGauge)
		assert.Equal(t, "96.32", res.CalculatedMinSection)
	})

	forEachGridInput(func(in Input) {
		res := Calculate(in)
		exact := math.Max(LoopFactor(in)/in.MaxDropVolts(), nbr.MinSectionPower)
		if exact <= nbr.LargestGauge() {
			assert.True(t, res.IsFeasible, "%+v", in)
		} else {
			assert.False(t, res.IsFeasible, "%+v", in)
			assert.Equal(t, nbr.LargestGauge(), res.SuggestedGauge)
		}
	})
}

func TestCalculateMonotonic(t *testing.T) {
	base := Input{Voltage: 220, Current: 32, Distance: 40, AllowedDropPercentage: 4}
	steps := []float64{0.5, 1, 2, 5, 10, 50}

	grows := map[string]func(Input, float64) Input{
		"current":  func(in Input, k float64) Input { in.Current *= k; return in },
		"distance": func(in Input, k float64) Input { in.Distance *= k; return in },
	}
	shrinks := map[string]func(Input, float64) Input{
		"voltage": func(in Input, k float64) Input { in.Voltage *= k; return in },
		"drop":    func(in Input, k float64) Input { in.AllowedDropPercentage *= k; return in },
	}

	for name, scale := range grows {
		prev := 0.0
		for _, k := range steps {
			s := section(t, Calculate(scale(base, k)))
			assert.GreaterOrEqual(t, s, prev, "%s x%v", name, k)
			prev = s
		}
	}
	for name, scale := range shrinks {
		prev := math.Inf(1)
		for _, k := range steps {
			s := section(t, Calculate(scale(base, k)))
			assert.LessOrEqual(t, s, prev, "%s x%v", name, k)
			prev = s
		}
	}
}

func TestCalculateIdempotent(t *testing.T) {
	forEachGridInput(func(in Input) {
		assert.Equal(t, Calculate(in), Calculate(in))
	})
}

func TestCalculateConcurrentCallers(t *testing.T) {
	in := Input{Voltage: 127, Current: 60, Distance: 100, AllowedDropPercentage: 3}
	want := Calculate(in)

	var wg sync.WaitGroup
	results := make([]Result, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Calculate(in)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, want, r)
	}
}

func TestFixed2(t *testing.T) {
	assert.Equal(t, "0.00", Fixed2(0))
	assert.Equal(t, "8.60", Fixed2(8.6))
	assert.Equal(t, "1.13", Fixed2(1.125))
	assert.Equal(t, "2.68", Fixed2(2.675))
	assert.Equal(t, "0.00", Fixed2(math.NaN()))
	assert.Equal(t, "0.00", Fixed2(math.Inf(1)))
}
