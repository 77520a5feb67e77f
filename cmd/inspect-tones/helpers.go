package main

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"strings"

	tones "github.com/tphakala/go-matrix-tones"
)

const (
	minRequiredArgs  = 1
	degreesPerRadian = 180 / math.Pi
	silentMagnitude  = 1e-6
)

func parseNormalization(s string) (tones.Normalization, error) {
	switch strings.ToLower(s) {
	case "peak":
		return tones.NormalizePeak, nil
	case "orthonormal", "":
		return tones.NormalizeOrthonormal, nil
	default:
		return 0, fmt.Errorf("unknown normalization %q", s)
	}
}

// writeReport prints one line per direction. Verbose output adds the
// segment position and RMS levels.
func writeReport(w io.Writer, report *tones.Report, verbose bool) {
	fmt.Fprintf(w, "  %-12s %8s %8s %8s %8s %8s\n", "direction", "L mag", "L deg", "R mag", "R deg", "R-L deg")
	for _, tr := range report.Tones {
		fmt.Fprintf(w, "  %-12s %8.4f %8.1f %8.4f %8.1f %8.1f\n",
			tr.Direction,
			cmplx.Abs(tr.Tone.Left), phaseDegrees(tr.Tone.Left),
			cmplx.Abs(tr.Tone.Right), phaseDegrees(tr.Tone.Right),
			tr.PhaseDifferenceDegrees())
		if verbose {
			fmt.Fprintf(w, "  %-12s frames %d-%d, rms L %.4f R %.4f\n",
				"", tr.Start, tr.Start+tr.Frames, tr.LeftRMS, tr.RightRMS)
		}
	}
	if report.NonSilentFrames > 0 {
		fmt.Fprintf(w, "  warning: %d non-silent frames in silence segments\n", report.NonSilentFrames)
	}
}

// phaseDegrees reports zero for silent channels instead of a meaningless
// angle.
func phaseDegrees(v complex128) float64 {
	if cmplx.Abs(v) < silentMagnitude {
		return 0
	}
	return cmplx.Phase(v) * degreesPerRadian
}
