package wavio

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/wav"
)

// Data is a decoded file with planar samples normalized to [-1, 1].
type Data struct {
	Header  Header
	Samples [][]float32
	Frames  int
}

// Channel returns the samples of channel c, or nil if the file lacks it.
func (d *Data) Channel(c Channel) []float32 {
	for i, hc := range d.Header.Channels {
		if hc == c {
			return d.Samples[i]
		}
	}
	return nil
}

// Read decodes the WAV file at path.
func Read(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	dec := wav.NewDecoder(bytes.NewReader(raw))
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("invalid WAV file %s: %w", path, err)
	}

	format, err := sampleFormatOf(dec.WavAudioFormat, dec.BitDepth)
	if err != nil {
		return nil, err
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	nch := int(dec.NumChans)
	if nch == 0 {
		return nil, fmt.Errorf("%w: no channels in %s", ErrUnsupportedHeader, path)
	}
	frames := len(buf.Data) / nch
	samples := make([][]float32, nch)
	for ch := range samples {
		samples[ch] = make([]float32, frames)
	}
	for i := range frames {
		base := i * nch
		for ch := range nch {
			samples[ch][i] = decodeSample(buf.Data[base+ch], format)
		}
	}

	return &Data{
		Header: Header{
			Format:     format,
			Channels:   defaultLayout(nch),
			SampleRate: int(dec.SampleRate),
		},
		Samples: samples,
		Frames:  frames,
	}, nil
}

func sampleFormatOf(tag, bitDepth uint16) (SampleFormat, error) {
	switch {
	case tag == formatTagFloat && bitDepth == 32:
		return Float32, nil
	case tag == formatTagPCM && bitDepth == 16:
		return PCM16, nil
	case tag == formatTagPCM && bitDepth == 24:
		return PCM24, nil
	default:
		return 0, fmt.Errorf("%w: format tag %d, %d-bit", ErrUnsupportedHeader, tag, bitDepth)
	}
}

func decodeSample(v int, format SampleFormat) float32 {
	switch format {
	case Float32:
		return math.Float32frombits(uint32(int32(v)))
	case PCM16:
		return float32(float64(v) / maxInt16)
	case PCM24:
		return float32(float64(v) / maxInt24)
	default:
		return 0
	}
}
