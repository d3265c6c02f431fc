package decoder

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TestDecode_Golden pins the full N=10 sequence at six decimal places.
//
// To regenerate the fixture, run:
//
//	go test ./internal/decoder -update
func TestDecode_Golden(t *testing.T) {
	res := Decode(10)

	var b bytes.Buffer
	for _, p := range res.Points {
		fmt.Fprintf(&b, "x=%d prime=%t initial=%.6f final=%.6f lambda=%.6f stability=%.6f phase=%.6f zeta=%.6f tunnel=%.6f alignment=%.6f\n",
			p.X, p.IsPrime, p.InitialField, p.FinalField, p.Lambda, p.Stability,
			p.PhaseCoherence, p.ZetaAlignment, p.TunnelEffect, p.Alignment)
	}
	fmt.Fprintf(&b, "primes=%v\n", res.Primes)
	m := res.Metrics
	fmt.Fprintf(&b, "decodingRate=%.6f accuracy=%.6f resonance=%.6f stabilityIndex=%.6f lambdaStability=%.6f\n",
		m.DecodingRate, m.Accuracy, m.Resonance, m.StabilityIndex, m.LambdaStability)

	g := goldie.New(t)
	g.Assert(t, "decode_n10", b.Bytes())
}
