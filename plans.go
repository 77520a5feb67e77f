package tones

import "math"

// NamedPlan pairs a test plan with the file it is written to.
type NamedPlan struct {
	Name string
	File string
	Plan TestPlan
}

// Plans returns the standard test files in the order they are written.
func Plans() []NamedPlan {
	return []NamedPlan{
		{Name: "default", File: "default.wav", Plan: DefaultPlan()},
		{Name: "sq", File: "sq.wav", Plan: SQPlan()},
	}
}

// DefaultPlan returns the decoder-neutral plan. Left and right steer by
// level; front versus rear steers by phase, with the rear tones inverted on
// the left channel and the middle positions carrying a small quadrature
// bleed into the quieter channel.
func DefaultPlan() TestPlan {
	return TestPlan{
		Center:      Polar(levelMinus3, 0, levelMinus3, 0),
		RightFront:  Polar(levelSilence, 0, levelFull, 0),
		RightMiddle: Polar(levelBleed, halfPi, levelFull, 0),
		RightRear:   Polar(levelBleed, math.Pi, levelFull, 0),
		RearCenter:  Polar(levelMinus3, math.Pi, levelMinus3, 0),
		LeftRear:    Polar(levelFull, math.Pi, levelBleed, 0),
		LeftMiddle:  Polar(levelFull, math.Pi, levelBleed, halfPi),
		LeftFront:   Polar(levelFull, 0, levelSilence, 0),
	}
}

// SQPlan returns the plan for an SQ decoder. Front positions are written
// directly; every position that involves a rear channel is produced by
// SQEncode from its discrete four-channel equivalent.
//
// The left rear tone is a discrete left rear signal. Older sq.wav files
// repeated the rear center encoding in that slot, so their left rear
// segment differs from the one written here.
func SQPlan() TestPlan {
	return TestPlan{
		Center:      Polar(levelMinus3, 0, levelMinus3, 0),
		RightFront:  Polar(levelSilence, 0, levelFull, 0),
		RightMiddle: QuadSignal{RightFront: levelMinus3, RightRear: levelMinus3}.Encode(),
		RightRear:   QuadSignal{RightRear: levelFull}.Encode(),
		RearCenter:  QuadSignal{LeftRear: levelFull, RightRear: levelFull}.Encode(),
		LeftRear:    QuadSignal{LeftRear: levelFull}.Encode(),
		LeftMiddle:  QuadSignal{LeftFront: levelMinus3, LeftRear: levelMinus3}.Encode(),
		LeftFront:   Polar(levelFull, 0, levelSilence, 0),
	}
}
