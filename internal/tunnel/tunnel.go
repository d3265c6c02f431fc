// Package tunnel generates the singularity tunnel depth curve: a fixed
// number of descent steps with an exponentially growing base depth, a
// sigmoid tunneling probability, and randomized quantum fluctuations.
package tunnel

import (
	"math"
	"math/rand"
)

// DefaultSteps is the number of descent steps per run.
const DefaultSteps = 100

// Float64Limit is the overflow threshold tracked per step. The base depth
// cannot reach it within the default step count; the flag stays for the
// tooltip contract.
const Float64Limit = 1e308

// Point is one descent step of the tunnel curve.
type Point struct {
	Step            int
	Depth           float64
	Fluctuation     float64
	Lambda          float64
	TunnelingEffect float64
	LimitExceeded   bool
}

// Generate produces one Point per descent step in [0, steps). Fluctuations
// draw from rng, the only nondeterministic input, so a seeded source makes
// the output reproducible.
func Generate(steps int, rng *rand.Rand) []Point {
	points := make([]Point, 0, steps)
	for t := 0; t < steps; t++ {
		ft := float64(t)

		// Exponential dive with a sigmoid-like tunneling probability.
		baseDepth := math.Exp(ft / 10)
		tunnelProbability := 1 / (1 + math.Exp(baseDepth/10))

		fluctuation := math.Sin(ft*0.5) * math.Exp(ft/20) * (1 + tunnelProbability*rng.Float64())

		lambda := 1 / (baseDepth + 1) * (1 + tunnelProbability)

		// Tunneling shows up as spikes once lambda has decayed.
		tunnelingEffect := math.Max(0, math.Sin(ft*0.2)*(1-lambda)) * 10

		points = append(points, Point{
			Step:            t,
			Depth:           -math.Log10(lambda),
			Fluctuation:     fluctuation,
			Lambda:          lambda,
			TunnelingEffect: tunnelingEffect,
			LimitExceeded:   baseDepth > Float64Limit,
		})
	}
	return points
}
