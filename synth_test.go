package tones

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-matrix-tones/internal/testutil"
	"github.com/tphakala/go-matrix-tones/wavio"
)

func newTestSynth(t *testing.T, size int, norm Normalization) *Synthesizer {
	t.Helper()
	s, err := NewSynthesizer(size, norm, true)
	require.NoError(t, err)
	return s
}

// TestRender_PeakEqualsMagnitude verifies the rendered peak equals the
// requested magnitude for every window size when the phase lands on a sample.
func TestRender_PeakEqualsMagnitude(t *testing.T) {
	sizes := []int{3, 4, 5, 7, 8, 16, 50, 64, 101, 256}
	mags := []float64{0, 0.1, levelMinus3, 1, 2.5}

	for _, size := range sizes {
		s := newTestSynth(t, size, NormalizePeak)
		for _, m := range mags {
			for k := range 3 {
				phase := 2 * math.Pi * float64(k) / float64(size)
				out, err := s.Render(BuildWindow(cmplx.Rect(m, phase), size))
				require.NoError(t, err)
				require.Len(t, out, size)

				assert.InDelta(t, m, testutil.PeakAbs(out), 1e-12,
					"size=%d mag=%g phase=%g", size, m, phase)
			}
		}
	}
}

// TestRender_PeakBoundedForAnyPhase checks that off-sample phases never exceed
// the magnitude and never fall below the worst-case sampling loss.
func TestRender_PeakBoundedForAnyPhase(t *testing.T) {
	for _, size := range []int{3, 10, 50} {
		s := newTestSynth(t, size, NormalizePeak)
		for _, phase := range []float64{0.1, 0.77, -1.3, math.Pi / 2, 3} {
			out, err := s.Render(BuildWindow(cmplx.Rect(0.8, phase), size))
			require.NoError(t, err)

			peak := testutil.PeakAbs(out)
			assert.LessOrEqual(t, peak, 0.8+1e-12)
			assert.GreaterOrEqual(t, peak, 0.8*math.Cos(math.Pi/float64(size))-1e-12)
		}
	}
}

func TestRender_Waveform(t *testing.T) {
	s := newTestSynth(t, WindowSize, NormalizePeak)
	out, err := s.Render(BuildWindow(cmplx.Rect(0.5, 0.3), WindowSize))
	require.NoError(t, err)

	for n, v := range out {
		want := 0.5 * math.Cos(2*math.Pi*float64(n)/WindowSize+0.3)
		assert.InDelta(t, want, v, 1e-12, "sample %d", n)
	}
}

func TestRender_OrthonormalLevel(t *testing.T) {
	s := newTestSynth(t, WindowSize, NormalizeOrthonormal)
	assert.InDelta(t, 1/math.Sqrt(WindowSize), s.Scale(), 1e-15)

	out, err := s.Render(BuildWindow(levelMinus3, WindowSize))
	require.NoError(t, err)
	assert.InDelta(t, 2*levelMinus3/math.Sqrt(WindowSize), testutil.PeakAbs(out), 1e-12)
}

func TestRender_ImaginaryResidue(t *testing.T) {
	s := newTestSynth(t, 16, NormalizePeak)

	// Mirror bin not conjugated: the time-domain result is complex.
	w := make([]complex128, 16)
	w[1] = 1i
	w[15] = 1i
	_, err := s.Render(w)
	require.ErrorIs(t, err, ErrImaginaryResidue)

	lax, err := NewSynthesizer(16, NormalizePeak, false)
	require.NoError(t, err)
	w[1], w[15] = 1i, 1i
	_, err = lax.Render(w)
	require.NoError(t, err)
}

func TestRender_NaNPropagates(t *testing.T) {
	s := newTestSynth(t, 8, NormalizePeak)
	out, err := s.Render(BuildWindow(complex(math.NaN(), math.NaN()), 8))
	require.NoError(t, err)
	for i, v := range out {
		assert.True(t, math.IsNaN(v), "sample %d = %v", i, v)
	}
}

func TestRender_WrongSize(t *testing.T) {
	s := newTestSynth(t, 8, NormalizePeak)
	_, err := s.Render(make([]complex128, 9))
	require.ErrorIs(t, err, ErrWindowSize)
}

func TestRender_ScratchReuseIsStateless(t *testing.T) {
	s := newTestSynth(t, WindowSize, NormalizePeak)
	tone := cmplx.Rect(0.6, 1.2)

	first, err := s.Render(BuildWindow(tone, WindowSize))
	require.NoError(t, err)
	_, err = s.Render(BuildWindow(cmplx.Rect(0.9, -2), WindowSize))
	require.NoError(t, err)
	again, err := s.Render(BuildWindow(tone, WindowSize))
	require.NoError(t, err)

	assert.Equal(t, first, again)
}

func TestNewSynthesizer_Errors(t *testing.T) {
	_, err := NewSynthesizer(2, NormalizePeak, true)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewSynthesizer(WindowSize, Normalization(7), true)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestEmit_RepeatsWindow(t *testing.T) {
	s := newTestSynth(t, 4, NormalizePeak)
	rec := &recordingWriter{}

	left := []float64{1, 2, 3, 4}
	right := []float64{-1, -2, -3, -4}
	next, err := s.Emit(rec, 10, left, right, 3)
	require.NoError(t, err)
	assert.Equal(t, 22, next)
	require.Len(t, rec.left, 22)

	for rep := range 3 {
		for i := range 4 {
			idx := 10 + rep*4 + i
			assert.InDelta(t, left[i], float64(rec.left[idx]), 0)
			assert.InDelta(t, right[i], float64(rec.right[idx]), 0)
		}
	}
	assert.Equal(t, 12, rec.writes)
}

func TestEmit_ZeroRepeat(t *testing.T) {
	s := newTestSynth(t, 4, NormalizePeak)
	rec := &recordingWriter{}

	next, err := s.Emit(rec, 7, make([]float64, 4), make([]float64, 4), 0)
	require.NoError(t, err)
	assert.Equal(t, 7, next)
	assert.Zero(t, rec.writes)
}

func TestEmit_MismatchedChannels(t *testing.T) {
	s := newTestSynth(t, 4, NormalizePeak)
	_, err := s.Emit(&recordingWriter{}, 0, make([]float64, 4), make([]float64, 3), 1)
	require.ErrorIs(t, err, ErrWindowSize)
}

func TestEmit_WriteFailureStops(t *testing.T) {
	s := newTestSynth(t, 4, NormalizePeak)
	errDisk := errors.New("disk full")
	rec := &recordingWriter{failAt: 5, failErr: errDisk}

	next, err := s.Emit(rec, 0, make([]float64, 4), make([]float64, 4), 10)
	require.ErrorIs(t, err, errDisk)
	assert.Equal(t, 5, next)
	assert.Equal(t, 5, rec.writes)
}

func TestEmitSilence(t *testing.T) {
	s := newTestSynth(t, 4, NormalizePeak)
	rec := &recordingWriter{}

	next, err := s.EmitSilence(rec, 3, 6)
	require.NoError(t, err)
	assert.Equal(t, 9, next)
	assert.Equal(t, 6, rec.writes)
	testutil.AssertSilent(t, rec.left[3:9])
	testutil.AssertSilent(t, rec.right[3:9])
}

func TestRenderTone(t *testing.T) {
	s := newTestSynth(t, WindowSize, NormalizePeak)
	left, right, err := s.RenderTone(Polar(1, 0, 0.25, math.Pi))
	require.NoError(t, err)

	assert.InDelta(t, 1, left[0], 1e-12)
	assert.InDelta(t, -0.25, right[0], 1e-12)
	assert.InDelta(t, 1, testutil.PeakAbs(left), 1e-12)
	assert.InDelta(t, 0.25, testutil.PeakAbs(right), 1e-12)
}

func BenchmarkRenderTone(b *testing.B) {
	s, err := NewSynthesizer(WindowSize, NormalizePeak, true)
	if err != nil {
		b.Fatal(err)
	}
	tone := SQPlan().Tone(RearCenter)

	b.ReportAllocs()
	for b.Loop() {
		if _, _, err := s.RenderTone(tone); err != nil {
			b.Fatal(err)
		}
	}
}

// recordingWriter keeps every frame in memory and can fail after a number
// of writes.
type recordingWriter struct {
	left, right []float32
	writes      int

	failAt  int
	failErr error
}

func (r *recordingWriter) WriteFrame(index int, frame wavio.Frame) error {
	if r.failErr != nil && r.writes == r.failAt {
		return r.failErr
	}
	l, okL := frame.Get(wavio.FrontLeft)
	rt, okR := frame.Get(wavio.FrontRight)
	if !okL || !okR {
		return wavio.ErrChannelMismatch
	}
	for len(r.left) <= index {
		r.left = append(r.left, 0)
		r.right = append(r.right, 0)
	}
	r.left[index] = l
	r.right[index] = rt
	r.writes++
	return nil
}
