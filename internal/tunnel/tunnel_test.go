package tunnel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Reproducible(t *testing.T) {
	a := Generate(DefaultSteps, rand.New(rand.NewSource(42)))
	b := Generate(DefaultSteps, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b, "same seed must produce the same curve")

	c := Generate(DefaultSteps, rand.New(rand.NewSource(43)))
	assert.NotEqual(t, a, c, "different seeds should change the fluctuations")
}

func TestGenerate_Properties(t *testing.T) {
	points := Generate(DefaultSteps, rand.New(rand.NewSource(1)))
	require.Len(t, points, DefaultSteps)

	for i, p := range points {
		assert.Equal(t, i, p.Step)

		// Lambda decays but never leaves (0, 1), so depth stays positive
		// and finite for every step in range.
		assert.Greater(t, p.Lambda, 0.0, "step %d", i)
		assert.Less(t, p.Lambda, 1.0, "step %d", i)
		assert.Greater(t, p.Depth, 0.0, "step %d", i)
		assert.False(t, math.IsInf(p.Depth, 0), "step %d", i)

		assert.GreaterOrEqual(t, p.TunnelingEffect, 0.0, "step %d", i)
		assert.LessOrEqual(t, p.TunnelingEffect, 10.0, "step %d", i)

		assert.False(t, math.IsNaN(p.Fluctuation), "step %d", i)
		assert.False(t, math.IsInf(p.Fluctuation, 0), "step %d", i)

		// Unreachable within the default step bound.
		assert.False(t, p.LimitExceeded, "step %d", i)
	}
}

func TestGenerate_OnlyFluctuationIsRandom(t *testing.T) {
	a := Generate(DefaultSteps, rand.New(rand.NewSource(7)))
	b := Generate(DefaultSteps, rand.New(rand.NewSource(8)))

	for i := range a {
		assert.Equal(t, a[i].Depth, b[i].Depth, "step %d", i)
		assert.Equal(t, a[i].Lambda, b[i].Lambda, "step %d", i)
		assert.Equal(t, a[i].TunnelingEffect, b[i].TunnelingEffect, "step %d", i)
	}
}

func TestGenerate_ZeroSteps(t *testing.T) {
	points := Generate(0, rand.New(rand.NewSource(1)))
	assert.Empty(t, points)
}
