package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleY(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		min, max float64
		expected float64
	}{
		{"min maps to bottom", 0, 0, 1, 200},
		{"max maps to top", 1, 0, 1, 100},
		{"midpoint maps to center", 0.5, 0, 1, 150},
		{"below min clamps to bottom", -3, 0, 1, 200},
		{"above max clamps to top", 7, 0, 1, 100},
		{"degenerate range maps to bottom", 0.5, 1, 1, 200},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := scaleY(test.v, test.min, test.max, 100, 100)
			assert.InDelta(t, test.expected, got, 1e-9)
		})
	}
}

func TestScaleY_Monotone(t *testing.T) {
	prev := scaleY(0, 0, 1, 0, 300)
	for v := 0.1; v <= 1.0; v += 0.1 {
		cur := scaleY(v, 0, 1, 0, 300)
		assert.Less(t, cur, prev, "larger values must map higher (smaller y)")
		prev = cur
	}
}

func TestSeriesRange(t *testing.T) {
	min, max := seriesRange([]series{
		{values: []float64{1, 2, 3}},
		{values: []float64{-4, 0}},
	})
	assert.InDelta(t, -4.35, min, 1e-9) // 5% padding on a span of 7
	assert.InDelta(t, 3.35, max, 1e-9)
}

func TestSeriesRange_Flat(t *testing.T) {
	min, max := seriesRange([]series{{values: []float64{2, 2, 2}}})
	assert.Equal(t, 1.5, min)
	assert.Equal(t, 2.5, max)
}

func TestSeriesRange_Empty(t *testing.T) {
	min, max := seriesRange(nil)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 1.0, max)
}

func TestSeriesRange_SkipsNonFinite(t *testing.T) {
	min, max := seriesRange([]series{
		{values: []float64{math.NaN(), 0, math.Inf(1), 1, math.Inf(-1)}},
	})
	assert.InDelta(t, -0.05, min, 1e-9)
	assert.InDelta(t, 1.05, max, 1e-9)
}
