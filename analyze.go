package tones

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-matrix-tones/internal/fft"
	"github.com/tphakala/go-matrix-tones/internal/simdops"
	"github.com/tphakala/go-matrix-tones/wavio"
)

// ErrLayoutMismatch indicates a file whose shape does not match the
// expected segment layout.
var ErrLayoutMismatch = errors.New("file does not match test layout")

// ToneReport describes the tone recovered from one tone segment.
type ToneReport struct {
	Direction Direction
	Start     int
	Frames    int

	// Tone is the requested tone recovered from the first period of the
	// segment, undoing the configured normalization.
	Tone DirectionalTone

	// LeftRMS and RightRMS are measured over the whole segment.
	LeftRMS  float64
	RightRMS float64
}

// PhaseDifferenceDegrees returns the right minus left phase in degrees.
func (r ToneReport) PhaseDifferenceDegrees() float64 {
	return r.Tone.PhaseDifference() * degreesPerRadian
}

// Report is the analysis of a whole file.
type Report struct {
	Frames int
	Tones  []ToneReport

	// NonSilentFrames counts frames inside silence segments that are not
	// exactly zero on both channels.
	NonSilentFrames int
}

// Analyze splits data into the segments a generator with config writes and
// measures every tone segment.
func Analyze(data *wavio.Data, config Config) (*Report, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	left := data.Channel(wavio.FrontLeft)
	right := data.Channel(wavio.FrontRight)
	if left == nil || right == nil {
		return nil, fmt.Errorf("%w: need front left and front right channels", ErrLayoutMismatch)
	}
	if want := TotalFrames(config); data.Frames != want {
		return nil, fmt.Errorf("%w: %d frames, want %d", ErrLayoutMismatch, data.Frames, want)
	}

	plan, err := fft.PlanForward(config.WindowSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	// Bin 1 of one period holds scale*W*T.
	unscale := 1 / (config.Normalization.scale(config.WindowSize) * float64(config.WindowSize))

	report := &Report{Frames: data.Frames}
	period := make([]float64, config.WindowSize)

	for _, seg := range SegmentLayout(config) {
		l := left[seg.Start : seg.Start+seg.Frames]
		r := right[seg.Start : seg.Start+seg.Frames]

		if seg.Kind == StateSilence {
			for i := range l {
				if l[i] != 0 || r[i] != 0 {
					report.NonSilentFrames++
				}
			}
			continue
		}

		tr := ToneReport{
			Direction: seg.Direction,
			Start:     seg.Start,
			Frames:    seg.Frames,
			LeftRMS:   simdops.RMS(l),
			RightRMS:  simdops.RMS(r),
		}
		if seg.Frames >= config.WindowSize {
			lt, err := fundamental(plan, period, l[:config.WindowSize])
			if err != nil {
				return nil, err
			}
			rt, err := fundamental(plan, period, r[:config.WindowSize])
			if err != nil {
				return nil, err
			}
			tr.Tone = DirectionalTone{
				Left:  lt * complex(unscale, 0),
				Right: rt * complex(unscale, 0),
			}
		}
		report.Tones = append(report.Tones, tr)
	}
	return report, nil
}

// AnalyzeFile reads the WAV file at path and analyzes it.
func AnalyzeFile(path string, config Config) (*Report, error) {
	data, err := wavio.Read(path)
	if err != nil {
		return nil, err
	}
	return Analyze(data, config)
}

func fundamental(plan *fft.Forward, period []float64, samples []float32) (complex128, error) {
	for i, s := range samples {
		period[i] = float64(s)
	}
	return plan.Bin(period, fundamentalBin)
}
