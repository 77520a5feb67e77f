package wavio

// Frame is one sample per named channel at a single frame index.
// The zero value holds no channels.
type Frame struct {
	set    uint32
	values [maxChannels]float32
}

// NewFrame returns an empty frame.
func NewFrame() Frame {
	return Frame{}
}

// With returns a copy of f with channel c set to v.
func (f Frame) With(c Channel, v float32) Frame {
	if !c.valid() {
		return f
	}
	f.set |= 1 << c
	f.values[c] = v
	return f
}

// FrontLeft is shorthand for With(FrontLeft, v).
func (f Frame) FrontLeft(v float32) Frame { return f.With(FrontLeft, v) }

// FrontRight is shorthand for With(FrontRight, v).
func (f Frame) FrontRight(v float32) Frame { return f.With(FrontRight, v) }

// Get returns the sample for channel c and whether it is set.
func (f Frame) Get(c Channel) (float32, bool) {
	if !c.valid() || f.set&(1<<c) == 0 {
		return 0, false
	}
	return f.values[c], true
}
