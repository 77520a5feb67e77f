package tones

import (
	"fmt"
	"math/cmplx"
)

// Direction is an intended speaker position. The numeric order is the order
// in which tone segments appear in a generated file.
type Direction int

const (
	Center Direction = iota
	RightFront
	RightMiddle
	RightRear
	RearCenter
	LeftRear
	LeftMiddle
	LeftFront
)

// NumDirections is the number of tone segments in every file.
const NumDirections = 8

var directionNames = [NumDirections]string{
	Center:      "center",
	RightFront:  "right front",
	RightMiddle: "right middle",
	RightRear:   "right rear",
	RearCenter:  "rear center",
	LeftRear:    "left rear",
	LeftMiddle:  "left middle",
	LeftFront:   "left front",
}

// Directions returns every direction in file order.
func Directions() []Direction {
	return []Direction{
		Center, RightFront, RightMiddle, RightRear,
		RearCenter, LeftRear, LeftMiddle, LeftFront,
	}
}

// Valid reports whether d is one of the eight directions.
func (d Direction) Valid() bool {
	return d >= 0 && d < NumDirections
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// DirectionalTone is the steady-state tone for one direction: one complex
// value (magnitude and phase) per encoded channel.
type DirectionalTone struct {
	Left  complex128
	Right complex128
}

// Polar builds a DirectionalTone from per-channel magnitudes and phases in
// radians.
func Polar(leftMag, leftPhase, rightMag, rightPhase float64) DirectionalTone {
	return DirectionalTone{
		Left:  cmplx.Rect(leftMag, leftPhase),
		Right: cmplx.Rect(rightMag, rightPhase),
	}
}

// PhaseDifference returns the right channel phase minus the left channel
// phase in radians, in [-pi, pi].
func (t DirectionalTone) PhaseDifference() float64 {
	return cmplx.Phase(t.Right * cmplx.Conj(t.Left))
}

// TestPlan holds the tone for every direction, indexed by Direction.
type TestPlan [NumDirections]DirectionalTone

// NewTestPlan builds a plan from a direction map. Directions missing from
// the map get a silent tone.
func NewTestPlan(tones map[Direction]DirectionalTone) (TestPlan, error) {
	var plan TestPlan
	for d, t := range tones {
		if !d.Valid() {
			return TestPlan{}, fmt.Errorf("%w: %v", ErrInvalidDirection, d)
		}
		plan[d] = t
	}
	return plan, nil
}

// Tone returns the tone for direction d. It panics if d is not valid.
func (p TestPlan) Tone(d Direction) DirectionalTone {
	return p[d]
}

// With returns a copy of p with the tone for d replaced.
// It panics if d is not valid.
func (p TestPlan) With(d Direction, t DirectionalTone) TestPlan {
	p[d] = t
	return p
}
