package coesine

import (
	"math"

	"github.com/tphakala/go-coe-sine/internal/simdops"
	"gonum.org/v1/gonum/floats"
)

// Generate returns the SampleCount pre-truncation table values:
//
//	f[i] = (0.5*sin(2*pi*i/(N-1)) + 0.5) * Amplitude
//
// Every value lies in [0, Amplitude]. The result is freshly allocated.
func Generate() []float64 {
	samples := make([]float64, SampleCount)
	floats.Span(samples, spanStart, spanEnd)

	for i, t := range samples {
		samples[i] = math.Sin(twoPi * t)
	}

	// Same operation order as the reference tables, so output stays bit-exact
	ops := simdops.Float64Ops()
	ops.ScaleInPlace(samples, halfRange)
	floats.AddConst(midpoint, samples)
	ops.ScaleInPlace(samples, Amplitude)

	return samples
}

// Quantize truncates each sample toward zero. 39.999 becomes 39, not 40.
func Quantize(samples []float64) []int {
	out := make([]int, len(samples))
	for i, v := range samples {
		out[i] = int(v)
	}
	return out
}

// Table returns the quantized lookup table.
func Table() []int {
	return Quantize(Generate())
}
