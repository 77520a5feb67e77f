package tones

import (
	"fmt"
	"math"

	"github.com/tphakala/go-matrix-tones/internal/fft"
	"github.com/tphakala/go-matrix-tones/internal/simdops"
	"github.com/tphakala/go-matrix-tones/wavio"
)

// Normalization selects how the inverse transform output is scaled.
type Normalization int

const (
	// NormalizePeak scales rendered tones so their peak equals the requested
	// magnitude, for every window size. Encoded SQ tones exceed 1.0 at this
	// level.
	NormalizePeak Normalization = iota

	// NormalizeOrthonormal scales by 1/sqrt(WindowSize), giving a peak of
	// 2|T|/sqrt(WindowSize). This is the level of the standard files.
	NormalizeOrthonormal
)

func (n Normalization) String() string {
	switch n {
	case NormalizePeak:
		return "peak"
	case NormalizeOrthonormal:
		return "orthonormal"
	default:
		return fmt.Sprintf("Normalization(%d)", int(n))
	}
}

func (n Normalization) valid() bool {
	return n == NormalizePeak || n == NormalizeOrthonormal
}

// scale returns the factor applied to the unnormalized inverse transform.
func (n Normalization) scale(size int) float64 {
	if n == NormalizeOrthonormal {
		return 1 / math.Sqrt(float64(size))
	}
	return peakScale
}

// FrameWriter receives frames at explicit frame indices.
type FrameWriter interface {
	WriteFrame(index int, frame wavio.Frame) error
}

// Synthesizer renders spectral windows to time-domain tone periods and
// writes them out. It owns the transform plan and its scratch buffer, which
// are reused for every render. A Synthesizer is not safe for concurrent use.
type Synthesizer struct {
	plan    fft.Handle
	size    int
	scale   float64
	scratch []complex128
	ops     *simdops.Ops[float64]

	// checkResidue rejects renders whose imaginary part is not negligible.
	checkResidue bool
}

// NewSynthesizer plans an inverse transform of the given window size.
func NewSynthesizer(size int, norm Normalization, checkResidue bool) (*Synthesizer, error) {
	if !norm.valid() {
		return nil, fmt.Errorf("%w: unknown normalization %v", ErrInvalidConfig, norm)
	}

	plan, err := fft.PlanInverse(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &Synthesizer{
		plan:         plan,
		size:         size,
		scale:        norm.scale(size),
		scratch:      make([]complex128, plan.ScratchLen()),
		ops:          simdops.Float64Ops(),
		checkResidue: checkResidue,
	}, nil
}

// Size returns the window size in frames.
func (s *Synthesizer) Size() int { return s.size }

// Scale returns the normalization factor applied after the inverse transform.
func (s *Synthesizer) Scale() float64 { return s.scale }

// Render inverse-transforms window in place and returns the scaled real part,
// one tone period of Size() samples. The window is consumed.
func (s *Synthesizer) Render(window []complex128) ([]float64, error) {
	if len(window) != s.size {
		return nil, fmt.Errorf("%w: window has %d bins, synthesizer is %d", ErrWindowSize, len(window), s.size)
	}

	if err := s.plan.ApplyInPlace(window, s.scratch); err != nil {
		return nil, fmt.Errorf("inverse transform failed: %w", err)
	}

	out := make([]float64, s.size)
	var peak, residue float64
	for i, v := range window {
		out[i] = real(v)
		peak = max(peak, math.Abs(real(v)))
		residue = max(residue, math.Abs(imag(v)))
	}

	// NaN compares false, so NaN tones pass through unchecked.
	if s.checkResidue && residue > residueTolerance*max(1, peak) {
		return nil, fmt.Errorf("%w: %g (peak %g)", ErrImaginaryResidue, residue, peak)
	}

	s.ops.Scale(out, out, s.scale)
	return out, nil
}

// RenderTone renders both channels of t.
func (s *Synthesizer) RenderTone(t DirectionalTone) (left, right []float64, err error) {
	window := make([]complex128, s.size)

	fillWindow(window, t.Left)
	if left, err = s.Render(window); err != nil {
		return nil, nil, fmt.Errorf("left channel: %w", err)
	}

	fillWindow(window, t.Right)
	if right, err = s.Render(window); err != nil {
		return nil, nil, fmt.Errorf("right channel: %w", err)
	}
	return left, right, nil
}

// Emit writes the left/right period repeat times, back to back, starting at
// frame index. It returns the index after the last frame written. There is no
// crossfade between repetitions.
func (s *Synthesizer) Emit(w FrameWriter, index int, left, right []float64, repeat int) (int, error) {
	if len(left) != len(right) {
		return index, fmt.Errorf("%w: left has %d samples, right has %d", ErrWindowSize, len(left), len(right))
	}

	for range repeat {
		for i := range left {
			frame := wavio.NewFrame().
				FrontLeft(float32(left[i])).
				FrontRight(float32(right[i]))
			if err := w.WriteFrame(index, frame); err != nil {
				return index, fmt.Errorf("failed to write tone frame %d: %w", index, err)
			}
			index++
		}
	}
	return index, nil
}

// EmitSilence writes frames zero-valued frames starting at index and
// returns the index after the last one.
func (s *Synthesizer) EmitSilence(w FrameWriter, index, frames int) (int, error) {
	silence := wavio.NewFrame().FrontLeft(0).FrontRight(0)
	for range frames {
		if err := w.WriteFrame(index, silence); err != nil {
			return index, fmt.Errorf("failed to write silence frame %d: %w", index, err)
		}
		index++
	}
	return index, nil
}
