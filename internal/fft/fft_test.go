package fft

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanInverse_InvalidSize(t *testing.T) {
	for _, size := range []int{-1, 0, 1, 2} {
		_, err := PlanInverse(size)
		require.ErrorIs(t, err, ErrInvalidSize, "size %d", size)
	}
}

func TestInverse_ScratchLen(t *testing.T) {
	plan, err := PlanInverse(50)
	require.NoError(t, err)
	assert.Equal(t, 50, plan.Len())
	assert.Equal(t, 50, plan.ScratchLen())
}

// TestInverse_SingleBin verifies the unnormalized inverse of a single bin is
// a unit-magnitude complex exponential scaled by the bin value.
func TestInverse_SingleBin(t *testing.T) {
	const n = 16
	plan, err := PlanInverse(n)
	require.NoError(t, err)

	buf := make([]complex128, n)
	buf[1] = 1
	scratch := make([]complex128, plan.ScratchLen())
	require.NoError(t, plan.ApplyInPlace(buf, scratch))

	for i, v := range buf {
		want := cmplx.Rect(1, 2*math.Pi*float64(i)/n)
		assert.InDelta(t, real(want), real(v), 1e-12, "re[%d]", i)
		assert.InDelta(t, imag(want), imag(v), 1e-12, "im[%d]", i)
	}
}

func TestInverse_ConjugatePairIsReal(t *testing.T) {
	const n = 50
	plan, err := PlanInverse(n)
	require.NoError(t, err)

	tone := cmplx.Rect(0.7, 1.1)
	buf := make([]complex128, n)
	buf[1] = tone
	buf[n-1] = cmplx.Conj(tone)
	require.NoError(t, plan.ApplyInPlace(buf, make([]complex128, plan.ScratchLen())))

	for i, v := range buf {
		assert.InDelta(t, 0, imag(v), 1e-12, "imaginary residue at %d", i)
		want := 2 * 0.7 * math.Cos(2*math.Pi*float64(i)/n+1.1)
		assert.InDelta(t, want, real(v), 1e-12, "re[%d]", i)
	}
}

func TestInverse_ScratchReuse(t *testing.T) {
	const n = 8
	plan, err := PlanInverse(n)
	require.NoError(t, err)
	scratch := make([]complex128, plan.ScratchLen())

	first := make([]complex128, n)
	first[1], first[n-1] = 1, 1
	require.NoError(t, plan.ApplyInPlace(first, scratch))

	// Dirty scratch must not leak into the next transform.
	second := make([]complex128, n)
	second[1], second[n-1] = 1, 1
	require.NoError(t, plan.ApplyInPlace(second, scratch))

	assert.Equal(t, first, second)
}

func TestInverse_LengthMismatch(t *testing.T) {
	plan, err := PlanInverse(8)
	require.NoError(t, err)

	err = plan.ApplyInPlace(make([]complex128, 7), make([]complex128, 8))
	require.ErrorIs(t, err, ErrLength)

	err = plan.ApplyInPlace(make([]complex128, 8), make([]complex128, 4))
	require.ErrorIs(t, err, ErrLength)
}

func TestForward_RecoversBin(t *testing.T) {
	const n = 50
	plan, err := PlanForward(n)
	require.NoError(t, err)

	seq := make([]float64, n)
	for i := range seq {
		seq[i] = 0.5 * math.Cos(2*math.Pi*float64(i)/n-0.3)
	}

	c, err := plan.Bin(seq, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, 2*cmplx.Abs(c)/n, 1e-12)
	assert.InDelta(t, -0.3, cmplx.Phase(c), 1e-12)

	_, err = plan.Bin(seq, n)
	require.ErrorIs(t, err, ErrInvalidSize)
	_, err = plan.Bin(seq[:10], 1)
	require.ErrorIs(t, err, ErrLength)
}
