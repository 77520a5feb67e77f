// Package fft wraps gonum's Fourier transforms behind the small planning
// interface the tone synthesizer needs.
//
// Plans are created once per window size and reused. Neither direction is
// normalized: a forward transform followed by an inverse multiplies the
// sequence by its length, exactly as gonum documents.
package fft

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// minSize is the smallest transform that can hold a fundamental bin and its
// mirror as two distinct bins.
const minSize = 3

// Errors returned by transform plans.
var (
	// ErrInvalidSize indicates a plan was requested for an unusable length.
	ErrInvalidSize = errors.New("invalid transform size")

	// ErrLength indicates a buffer does not match the planned length.
	ErrLength = errors.New("buffer length does not match transform size")
)

// Handle is a planned fixed-size inverse transform.
type Handle interface {
	// Len returns the planned transform length.
	Len() int

	// ScratchLen returns the number of complex values ApplyInPlace needs as
	// workspace. The scratch carries no state between calls.
	ScratchLen() int

	// ApplyInPlace replaces buf with its inverse transform.
	ApplyInPlace(buf, scratch []complex128) error
}

// Inverse is a gonum-backed inverse complex transform.
type Inverse struct {
	fft *fourier.CmplxFFT
	n   int
}

// PlanInverse plans an inverse complex transform of the given size.
func PlanInverse(size int) (*Inverse, error) {
	if size < minSize {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrInvalidSize, size, minSize)
	}
	return &Inverse{
		fft: fourier.NewCmplxFFT(size),
		n:   size,
	}, nil
}

// Len returns the planned transform length.
func (t *Inverse) Len() int { return t.n }

// ScratchLen returns the workspace length: one full sequence, which receives
// the transform output before it is copied back over the input.
func (t *Inverse) ScratchLen() int { return t.n }

// ApplyInPlace computes the unnormalized inverse transform of buf into buf.
func (t *Inverse) ApplyInPlace(buf, scratch []complex128) error {
	if len(buf) != t.n {
		return fmt.Errorf("%w: buffer has %d values, plan is %d", ErrLength, len(buf), t.n)
	}
	if len(scratch) < t.n {
		return fmt.Errorf("%w: scratch has %d values, need %d", ErrLength, len(scratch), t.n)
	}

	out := t.fft.Sequence(scratch[:t.n], buf)
	copy(buf, out)
	return nil
}

// Forward computes single bins of a real sequence's spectrum.
type Forward struct {
	fft   *fourier.FFT
	coeff []complex128
	n     int
}

// PlanForward plans a forward real transform of the given size.
func PlanForward(size int) (*Forward, error) {
	if size < minSize {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrInvalidSize, size, minSize)
	}
	return &Forward{
		fft:   fourier.NewFFT(size),
		coeff: make([]complex128, size/2+1),
		n:     size,
	}, nil
}

// Len returns the planned transform length.
func (t *Forward) Len() int { return t.n }

// Bin returns coefficient k of the unnormalized spectrum of seq.
// k must be in [0, Len()/2].
func (t *Forward) Bin(seq []float64, k int) (complex128, error) {
	if len(seq) != t.n {
		return 0, fmt.Errorf("%w: sequence has %d values, plan is %d", ErrLength, len(seq), t.n)
	}
	if k < 0 || k >= len(t.coeff) {
		return 0, fmt.Errorf("%w: bin %d outside [0, %d]", ErrInvalidSize, k, len(t.coeff)-1)
	}

	t.coeff = t.fft.Coefficients(t.coeff, seq)
	return t.coeff[k], nil
}
