package wavio

import (
	"fmt"
	"math"
	"os"
	"slices"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/tphakala/go-matrix-tones/internal/simdops"
)

const (
	// encodeChunkFrames bounds the size of each buffer handed to the encoder.
	encodeChunkFrames = 4096

	// Full-scale values for integer formats
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
)

// Writer accepts frames at arbitrary indices and encodes them on Flush.
// A Writer is not safe for concurrent use.
type Writer struct {
	path   string
	file   *os.File
	header Header
	mask   uint32

	// planar holds one sample slice per header channel, all of equal length.
	planar [][]float32
	frames int
	closed bool
}

// Create creates the file at path and returns a writer for it.
// The header is validated before the file is touched.
func Create(path string, header Header) (*Writer, error) {
	if err := header.Validate(); err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Writer{
		path:   path,
		file:   f,
		header: header,
		mask:   header.channelMask(),
		planar: make([][]float32, header.NumChannels()),
	}, nil
}

// Header returns the header the writer was created with.
func (w *Writer) Header() Header {
	return w.header
}

// Frames returns the number of frames the file will hold: one past the
// highest index written so far.
func (w *Writer) Frames() int {
	return w.frames
}

// WriteFrame stores frame at the given frame index. Writing past the
// current end extends the file; any skipped frames are silent. Writing an
// index twice keeps the last frame.
func (w *Writer) WriteFrame(index int, frame Frame) error {
	if w.closed {
		return ErrClosed
	}
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrFrameIndex, index)
	}
	if frame.set != w.mask {
		return fmt.Errorf("%w: frame %d", ErrChannelMismatch, index)
	}

	if index >= w.frames {
		n := index + 1
		for ch, s := range w.planar {
			s = slices.Grow(s, n-len(s))[:n]
			clear(s[w.frames:])
			w.planar[ch] = s
		}
		w.frames = index + 1
	}

	for ch, c := range w.header.Channels {
		w.planar[ch][index] = frame.values[c]
	}
	return nil
}

// Flush encodes every frame, finalizes the RIFF headers and closes the file.
// The writer cannot be used afterwards.
func (w *Writer) Flush() (err error) {
	if w.closed {
		return ErrClosed
	}
	w.closed = true

	defer func() {
		if closeErr := w.file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
	}()

	nch := w.header.NumChannels()
	enc := wav.NewEncoder(w.file, w.header.SampleRate, w.header.Format.BitDepth(), nch, w.header.Format.formatTag())

	interleaved := w.interleave()
	buf := &audio.IntBuffer{
		Data:           make([]int, 0, min(len(interleaved), encodeChunkFrames*nch)),
		Format:         &audio.Format{NumChannels: nch, SampleRate: w.header.SampleRate},
		SourceBitDepth: w.header.Format.BitDepth(),
	}

	// The encoder only emits the RIFF and fmt headers on its first Write, so
	// an empty file still needs one (empty) buffer.
	for start := 0; start == 0 || start < len(interleaved); start += encodeChunkFrames * nch {
		end := min(start+encodeChunkFrames*nch, len(interleaved))
		buf.Data = encodeSamples(buf.Data[:0], interleaved[start:end], w.header.Format)
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("failed to write audio data: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

// Close abandons an unflushed writer and removes its file. It is a no-op
// after Flush.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.file.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err := os.Remove(w.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove unfinished file: %w", err)
	}
	return nil
}

// interleave converts the planar channel buffers to one interleaved slice.
func (w *Writer) interleave() []float32 {
	dst := make([]float32, w.frames*len(w.planar))
	simdops.Interleave(dst, w.planar, w.frames)
	return dst
}

// encodeSamples appends samples to dst in the integer representation the
// go-audio encoder writes. For Float32 the int carries the IEEE bit pattern,
// which the encoder's 32-bit path stores unchanged.
func encodeSamples(dst []int, samples []float32, format SampleFormat) []int {
	switch format {
	case Float32:
		for _, s := range samples {
			dst = append(dst, int(int32(math.Float32bits(s))))
		}
	case PCM16:
		for _, s := range samples {
			dst = append(dst, int(math.Round(clamp(float64(s))*maxInt16)))
		}
	case PCM24:
		for _, s := range samples {
			dst = append(dst, int(math.Round(clamp(float64(s))*maxInt24)))
		}
	}
	return dst
}

func clamp(s float64) float64 {
	if s > 1.0 {
		return 1.0
	} else if s < -1.0 {
		return -1.0
	}
	return s
}
