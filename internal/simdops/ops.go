// Package simdops exposes the SIMD vector operations used to rescale the
// generated sine table. Calls go through function pointers so the scalar
// and accelerated paths share one call site.
package simdops

import (
	"github.com/tphakala/simd/f64"
)

// Ops provides SIMD-accelerated float64 operations.
type Ops struct {
	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)
}

var ops64 = Ops{
	Scale: f64.Scale,
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops {
	return &ops64
}

// ScaleInPlace multiplies every element of a by s.
func (o *Ops) ScaleInPlace(a []float64, s float64) {
	o.Scale(a, a, s)
}
