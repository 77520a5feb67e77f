// Package simdops wraps the tphakala/simd kernels used for tone rendering
// and WAV packing.
//
// Tone periods are rendered in float64 while WAV frames are float32, so the
// helpers are generic over both precisions.
package simdops

import (
	"math"

	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops holds the simd kernels for type F.
type Ops[F Float] struct {
	// DotProductUnsafe computes the dot product without bounds checking.
	// Slices must have equal length.
	DotProductUnsafe func(a, b []F) F

	// Interleave2 writes dst[2i] = a[i], dst[2i+1] = b[i].
	Interleave2 func(dst, a, b []F)

	// Scale writes dst[i] = a[i] * s. dst may alias a.
	Scale func(dst, a []F, s F)
}

var (
	ops32 = Ops[float32]{
		DotProductUnsafe: f32.DotProductUnsafe,
		Interleave2:      f32.Interleave2,
		Scale:            f32.Scale,
	}
	ops64 = Ops[float64]{
		DotProductUnsafe: f64.DotProductUnsafe,
		Interleave2:      f64.Interleave2,
		Scale:            f64.Scale,
	}
)

// For returns the kernels for type F.
func For[F Float]() *Ops[F] {
	var ops any
	var zero F
	switch any(zero).(type) {
	case float32:
		ops = &ops32
	case float64:
		ops = &ops64
	}
	o, ok := ops.(*Ops[F])
	if !ok {
		panic("simdops: unsupported float type")
	}
	return o
}

// Float32Ops returns the float32 kernels.
func Float32Ops() *Ops[float32] { return &ops32 }

// Float64Ops returns the float64 kernels.
func Float64Ops() *Ops[float64] { return &ops64 }

// Interleave packs the first frames samples of every planar channel into
// dst, frame by frame. dst must hold frames*len(planar) samples. Stereo
// uses the simd kernel.
func Interleave[F Float](dst []F, planar [][]F, frames int) {
	nch := len(planar)
	if nch == 2 {
		For[F]().Interleave2(dst[:2*frames], planar[0][:frames], planar[1][:frames])
		return
	}
	for ch, samples := range planar {
		for i, s := range samples[:frames] {
			dst[i*nch+ch] = s
		}
	}
}

// RMS returns the root mean square of s, or 0 for an empty slice.
func RMS[F Float](s []F) float64 {
	if len(s) == 0 {
		return 0
	}
	energy := For[F]().DotProductUnsafe(s, s)
	return math.Sqrt(float64(energy) / float64(len(s)))
}
