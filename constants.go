package tones

import "math"

// Fixed synthesis parameters. The tone frequency is SampleRate/WindowSize.
const (
	// SampleRate is the output sample rate in Hz.
	SampleRate = 44100

	// WindowSize is the inverse transform length: one tone period in frames.
	WindowSize = 50

	// IterationsPerTone is the number of tone periods in a tone segment.
	IterationsPerTone = 200

	// IterationsPerSilence is the number of window lengths in a silence segment.
	IterationsPerSilence = 20
)

// Window layout
const (
	minWindowSize  = 3 // DC bin, fundamental and a distinct mirror bin
	fundamentalBin = 1
)

// Synthesis normalization
const (
	// A conjugate bin pair inverse-transforms to 2|T|cos(...), so halving
	// gives a peak of exactly |T|.
	peakScale = 0.5

	// residueTolerance bounds the imaginary part left after the inverse
	// transform, relative to the real peak.
	residueTolerance = 1e-9
)

// Matrix encoding
const (
	rearBlend = 0.7 // rear-to-encoded-channel gain
	halfPi    = math.Pi / 2
)

// Plan levels
const (
	levelFull    = 1.0
	levelMinus3  = 0.707106781186548 // -3 dB, equal-power split
	levelBleed   = 0.1               // -20 dB crosstalk
	levelSQ      = 0.7               // SQ rear blend
	levelSilence = 0.0
)

const degreesPerRadian = 180 / math.Pi
