// Package tones synthesizes calibration WAV files for two-channel to
// multichannel matrix surround decoders.
//
// Each file is an ordered series of silence and pure-tone segments. Every
// tone segment carries one intended speaker direction, encoded purely as
// the relative amplitude and phase between the two output channels. The
// position of a segment in the file identifies its direction; the order is
// always
//
//	center, right front, right middle, right rear,
//	rear center, left rear, left middle, left front
//
// with a silence segment before the first tone, between tones and after the
// last tone.
//
// # Quick Start
//
// Write the two standard files into a directory:
//
//	files, err := tones.WriteStandardFiles(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or build a plan and write a single file:
//
//	plan := tones.DefaultPlan().With(tones.RearCenter,
//	    tones.QuadSignal{LeftRear: 0.5, RightRear: 0.5}.Encode())
//	if err := tones.GenerateFile("custom.wav", plan); err != nil {
//	    log.Fatal(err)
//	}
//
// # Synthesis
//
// A tone is described by one complex value per channel. The value is placed
// in bin 1 of a [WindowSize]-bin spectrum with its complex conjugate in the
// mirror bin, and an inverse FFT turns that spectrum into exactly one period
// of a real sinusoid at SampleRate/WindowSize Hz (882 Hz). The period is then
// repeated back to back for the length of the segment.
//
// # Matrix Encoding
//
// [SQEncode] models an SQ-style analog encode matrix: front channels pass
// straight through, rear channels are attenuated and phase shifted into both
// encoded channels. [SQPlan] uses it to build the "sq.wav" test file.
//
// # Output Format
//
// Files are 44.1 kHz stereo IEEE float WAV written through the wavio
// package. A [Generator] is reusable across files but not safe for
// concurrent use.
package tones
