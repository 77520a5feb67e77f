// Package wavio writes and reads the multichannel WAV files produced by the
// tone generator.
//
// Writers accept frames at explicit frame indices rather than as a strictly
// sequential stream. Frames are held in memory until Flush, which encodes
// the whole file through github.com/go-audio/wav and finalizes the RIFF
// sizes. A Writer that is closed without flushing leaves no valid file
// behind.
package wavio

import (
	"errors"
	"fmt"
)

// WAVE format tags written into the fmt chunk.
const (
	formatTagPCM   = 1
	formatTagFloat = 3
)

// Header limits
const (
	maxChannels   = 8
	minSampleRate = 1
	maxSampleRate = 768000
)

// Errors returned by the wavio package.
var (
	// ErrUnsupportedHeader indicates a header the writer cannot encode.
	ErrUnsupportedHeader = errors.New("unsupported WAV header")

	// ErrChannelMismatch indicates a frame whose channels differ from the header layout.
	ErrChannelMismatch = errors.New("frame channels do not match header")

	// ErrFrameIndex indicates a negative frame index.
	ErrFrameIndex = errors.New("invalid frame index")

	// ErrClosed indicates use of a writer after Flush or Close.
	ErrClosed = errors.New("writer is closed")
)

// SampleFormat is the on-disk sample encoding.
type SampleFormat int

const (
	// Float32 stores IEEE 754 single-precision samples (WAVE format 3).
	Float32 SampleFormat = iota

	// PCM16 stores signed 16-bit integer samples.
	PCM16

	// PCM24 stores signed 24-bit integer samples.
	PCM24
)

// BitDepth returns the number of bits per sample.
func (f SampleFormat) BitDepth() int {
	switch f {
	case Float32:
		return 32
	case PCM16:
		return 16
	case PCM24:
		return 24
	default:
		return 0
	}
}

func (f SampleFormat) formatTag() int {
	if f == Float32 {
		return formatTagFloat
	}
	return formatTagPCM
}

func (f SampleFormat) String() string {
	switch f {
	case Float32:
		return "float32"
	case PCM16:
		return "pcm16"
	case PCM24:
		return "pcm24"
	default:
		return fmt.Sprintf("SampleFormat(%d)", int(f))
	}
}

// Channel names a speaker position in a frame.
type Channel int

// Speaker positions, in WAVE channel-mask order.
const (
	FrontLeft Channel = iota
	FrontRight
	FrontCenter
	LowFrequency
	BackLeft
	BackRight
	SideLeft
	SideRight
)

var channelNames = [...]string{
	FrontLeft:    "front_left",
	FrontRight:   "front_right",
	FrontCenter:  "front_center",
	LowFrequency: "low_frequency",
	BackLeft:     "back_left",
	BackRight:    "back_right",
	SideLeft:     "side_left",
	SideRight:    "side_right",
}

func (c Channel) valid() bool {
	return c >= 0 && int(c) < len(channelNames)
}

func (c Channel) String() string {
	if !c.valid() {
		return fmt.Sprintf("Channel(%d)", int(c))
	}
	return channelNames[c]
}

// Stereo is the front-left, front-right layout.
func Stereo() []Channel {
	return []Channel{FrontLeft, FrontRight}
}

// defaultLayout returns the conventional layout for a channel count read
// from a file that carries no channel mask.
func defaultLayout(n int) []Channel {
	switch n {
	case 1:
		return []Channel{FrontCenter}
	case 2:
		return Stereo()
	default:
		layout := make([]Channel, 0, n)
		for c := range min(n, len(channelNames)) {
			layout = append(layout, Channel(c))
		}
		return layout
	}
}

// Header describes the sample format, rate and channel layout of a file.
type Header struct {
	Format     SampleFormat
	Channels   []Channel
	SampleRate int
}

// Validate checks that the header can be encoded.
func (h Header) Validate() error {
	if h.Format.BitDepth() == 0 {
		return fmt.Errorf("%w: sample format %v", ErrUnsupportedHeader, h.Format)
	}
	if len(h.Channels) == 0 || len(h.Channels) > maxChannels {
		return fmt.Errorf("%w: %d channels (1-%d supported)", ErrUnsupportedHeader, len(h.Channels), maxChannels)
	}
	if h.SampleRate < minSampleRate || h.SampleRate > maxSampleRate {
		return fmt.Errorf("%w: sample rate %d Hz", ErrUnsupportedHeader, h.SampleRate)
	}

	var seen uint32
	for _, c := range h.Channels {
		if !c.valid() {
			return fmt.Errorf("%w: unknown channel %v", ErrUnsupportedHeader, c)
		}
		if seen&(1<<c) != 0 {
			return fmt.Errorf("%w: duplicate channel %v", ErrUnsupportedHeader, c)
		}
		seen |= 1 << c
	}
	return nil
}

// NumChannels returns the number of channels per frame.
func (h Header) NumChannels() int {
	return len(h.Channels)
}

// channelMask returns the bit set of the header's channels.
func (h Header) channelMask() uint32 {
	var mask uint32
	for _, c := range h.Channels {
		mask |= 1 << c
	}
	return mask
}
