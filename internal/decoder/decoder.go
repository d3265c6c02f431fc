// Package decoder implements the lambda-stabilized prime decoder: a
// deterministic pass over the integers 1..N that classifies each integer as
// prime or not and evaluates a "quantum field" per integer, with a lambda
// value and a cumulative stability product threaded through the loop.
//
// The formulas are decorative rather than mathematical; they exist to drive
// the charts and must be reproduced exactly, not simplified.
package decoder

import "math"

const (
	// BaseLambda is the initial lambda baseline for stabilization.
	BaseLambda = 0.99999999999

	// DefaultMaxRange is the upper bound of the decoded integer range.
	DefaultMaxRange = 1000
)

// ZetaZeros are the reference constants used as moduli in the field
// formulas (high-precision imaginary parts of the first six nontrivial
// zeta zeros).
var ZetaZeros = []float64{
	14.134725141734693790457251983562470270784257115699243,
	21.022039638771554992628479593896902777334340524902781,
	25.010857580145688763213790992562821818659549672557996,
	30.424876125859513210311897530584091320181560023715390,
	32.935061587739189690662368964074903488812715603517039,
	37.586178158825671257217763480705332821405597350830793,
}

// Point is one decoded integer with every intermediate factor retained, so
// the renderer can chart each of them as its own line.
type Point struct {
	X              int
	InitialField   float64
	FinalField     float64
	Lambda         float64
	Stability      float64
	PhaseCoherence float64
	ZetaAlignment  float64
	TunnelEffect   float64
	Alignment      float64
	IsPrime        bool
}

// Metrics are the summary values derived from the last point of a run and
// the cumulative stability product, all expressed as percentages.
type Metrics struct {
	DecodingRate     float64
	Accuracy         float64
	Resonance        float64
	StabilityIndex   float64
	LambdaStability  float64
	TotalPrimesFound int
}

// Result is the complete output of one decoding run.
type Result struct {
	Points  []Point
	Primes  []int
	Metrics Metrics
}

// stability holds the intermediate factors of one lambda stabilization step.
type stability struct {
	phaseCoherence   float64
	noiseReduction   float64
	primeEnhancement float64
	zetaAlignment    float64
	factor           float64
}

// quantumField evaluates the field at x for the given lambda: the product
// over the reference zeros of the periodic resonance term scaled by lambda.
func quantumField(x, lambda float64) float64 {
	field := 1.0
	for _, zero := range ZetaZeros {
		r := math.Mod(x, zero) / zero
		resonance := math.Exp(-(r * r))
		field *= resonance * lambda
	}
	return field
}

// stabilizeLambda computes the next lambda from the current field value and
// the primality of x.
func stabilizeLambda(x, currentField float64, prime bool) (float64, stability) {
	var s stability

	// Phase coherence: how close the field already is to 1.
	d := 1 - currentField
	s.phaseCoherence = math.Exp(-(d * d) / 0.01)

	s.noiseReduction = 1 - math.Exp(-x*BaseLambda)

	if prime {
		s.primeEnhancement = 1
	} else {
		s.primeEnhancement = math.Exp(-(x * x) / 1000)
	}

	s.zetaAlignment = 1
	for _, zero := range ZetaZeros {
		r := math.Mod(x, zero) / zero
		alignment := math.Exp(-(r * r))
		s.zetaAlignment = s.zetaAlignment * (alignment + 1) / 2
	}

	p := 1 - s.phaseCoherence*s.noiseReduction*s.primeEnhancement*s.zetaAlignment
	s.factor = math.Exp(-(p * p))

	return BaseLambda * s.factor, s
}

// Decode runs the full pass over 1..maxRange. Lambda and the cumulative
// stability product are local to the call and reset on every run, so
// repeated runs with the same maxRange are bit-identical. A maxRange below
// 1 yields an empty Result.
func Decode(maxRange int) Result {
	if maxRange < 1 {
		return Result{}
	}

	res := Result{Points: make([]Point, 0, maxRange)}

	currentLambda := BaseLambda
	cumulativeStability := 1.0

	for x := 1; x <= maxRange; x++ {
		fx := float64(x)
		prime := IsPrime(x)

		// Field before and after this step's stabilization.
		initialField := quantumField(fx, currentLambda)
		lambda, s := stabilizeLambda(fx, initialField, prime)
		currentLambda = lambda
		finalField := quantumField(fx, currentLambda)

		t := (1 - currentLambda) * fx
		tunnelEffect := math.Exp(-(t * t))

		alignment := math.Pow(finalField*s.factor*tunnelEffect, 1.0/3.0)

		if prime {
			res.Primes = append(res.Primes, x)
		}
		cumulativeStability *= s.factor

		res.Points = append(res.Points, Point{
			X:              x,
			InitialField:   initialField,
			FinalField:     finalField,
			Lambda:         currentLambda,
			Stability:      s.factor,
			PhaseCoherence: s.phaseCoherence,
			ZetaAlignment:  s.zetaAlignment,
			TunnelEffect:   tunnelEffect,
			Alignment:      alignment,
			IsPrime:        prime,
		})
	}

	last := res.Points[len(res.Points)-1]
	res.Metrics = Metrics{
		DecodingRate:     float64(len(res.Primes)) / float64(maxRange) * 100,
		Accuracy:         last.Alignment * 100,
		Resonance:        last.FinalField * 100,
		StabilityIndex:   math.Pow(cumulativeStability, 1/float64(maxRange)) * 100,
		LambdaStability:  last.Lambda * 100,
		TotalPrimesFound: len(res.Primes),
	}
	return res
}
