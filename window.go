package tones

import (
	"fmt"
	"math/cmplx"
)

// BuildWindow returns a size-bin spectrum holding only tone at the
// fundamental bin and its complex conjugate at the mirror bin. Its inverse
// transform is one period of a real sinusoid. BuildWindow panics if size is
// less than 3.
func BuildWindow(tone complex128, size int) []complex128 {
	if size < minWindowSize {
		panic(fmt.Sprintf("tones: window size %d < %d", size, minWindowSize))
	}
	w := make([]complex128, size)
	fillWindow(w, tone)
	return w
}

// BuildWindows returns the left and right channel windows for t.
func BuildWindows(t DirectionalTone, size int) (left, right []complex128) {
	return BuildWindow(t.Left, size), BuildWindow(t.Right, size)
}

// fillWindow overwrites w with the spectrum of tone. The mirror bin must be
// the exact conjugate of the fundamental: anything else leaves an imaginary
// part in the time domain that rendering would silently drop.
func fillWindow(w []complex128, tone complex128) {
	clear(w)
	w[fundamentalBin] = tone
	w[len(w)-fundamentalBin] = cmplx.Conj(tone)
}
