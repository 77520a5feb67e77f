package tones

import "math/cmplx"

// SQEncode maps four discrete channels onto two encoded channels the way an
// SQ-style analog encode matrix does.
//
// Each rear input is split into polar form and blended into both outputs at
// rearBlend gain: the left rear lags 90 degrees in the left output and is
// inverted in the right output, the right rear is in phase in the left output
// and leads 90 degrees in the right output. Front inputs are added to their
// own side's total and then once more on output, so a front-only signal comes
// out doubled on its own channel and absent from the other.
//
// SQEncode is linear in its inputs and defined for every complex value.
func SQEncode(leftFront, rightFront, leftRear, rightRear complex128) (leftTotal, rightTotal complex128) {
	leftRearAmp, leftRearPhase := cmplx.Polar(leftRear)
	rightRearAmp, rightRearPhase := cmplx.Polar(rightRear)

	leftRearForLeft := cmplx.Rect(rearBlend*leftRearAmp, leftRearPhase-halfPi)
	rightRearForLeft := cmplx.Rect(rearBlend*rightRearAmp, rightRearPhase)
	left := leftFront + leftRearForLeft + rightRearForLeft

	leftRearForRight := cmplx.Rect(rearBlend*leftRearAmp, leftRearPhase+2*halfPi)
	rightRearForRight := cmplx.Rect(rearBlend*rightRearAmp, rightRearPhase+halfPi)
	right := rightFront + leftRearForRight + rightRearForRight

	return leftFront + left, rightFront + right
}

// QuadSignal is a four-channel discrete signal at one frequency.
type QuadSignal struct {
	LeftFront  complex128
	RightFront complex128
	LeftRear   complex128
	RightRear  complex128
}

// Encode applies SQEncode and returns the encoded pair as a DirectionalTone.
func (q QuadSignal) Encode() DirectionalTone {
	l, r := SQEncode(q.LeftFront, q.RightFront, q.LeftRear, q.RightRear)
	return DirectionalTone{Left: l, Right: r}
}
