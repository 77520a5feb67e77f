package tones

import (
	"errors"
	"fmt"
	"log"

	"github.com/tphakala/go-matrix-tones/wavio"
)

// Common errors returned by the generator.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrInvalidDirection indicates a direction outside the eight known ones.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrWindowSize indicates a buffer whose length does not match the window size.
	ErrWindowSize = errors.New("window size mismatch")

	// ErrImaginaryResidue indicates a rendered tone with a non-negligible
	// imaginary part, meaning its spectrum was not conjugate-symmetric.
	ErrImaginaryResidue = errors.New("imaginary residue in rendered tone")
)

// Config holds generator configuration. The zero value is not valid; start
// from DefaultConfig.
type Config struct {
	// WindowSize is the inverse transform length and tone period in frames.
	WindowSize int

	// IterationsPerTone is the number of periods written per tone segment.
	// Zero produces a file of silence segments only.
	IterationsPerTone int

	// IterationsPerSilence is the number of window lengths per silence segment.
	IterationsPerSilence int

	// Normalization selects the output level of rendered tones.
	Normalization Normalization

	// CheckResidue fails a render whose imaginary part exceeds floating
	// point noise.
	CheckResidue bool

	// Opener opens the output sink for Generate. Nil uses wavio.Create.
	Opener Opener

	// Logger receives one line per segment when set.
	Logger *log.Logger
}

// DefaultConfig returns the fixed configuration used for the standard files.
// It renders at the orthonormal level, which keeps every standard plan below
// full scale.
func DefaultConfig() Config {
	return Config{
		WindowSize:           WindowSize,
		IterationsPerTone:    IterationsPerTone,
		IterationsPerSilence: IterationsPerSilence,
		Normalization:        NormalizeOrthonormal,
		CheckResidue:         true,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.WindowSize < minWindowSize {
		return fmt.Errorf("%w: window size must be at least %d", ErrInvalidConfig, minWindowSize)
	}
	if c.IterationsPerTone < 0 {
		return fmt.Errorf("%w: iterations per tone must not be negative", ErrInvalidConfig)
	}
	if c.IterationsPerSilence < 0 {
		return fmt.Errorf("%w: iterations per silence must not be negative", ErrInvalidConfig)
	}
	if !c.Normalization.valid() {
		return fmt.Errorf("%w: unknown normalization %v", ErrInvalidConfig, c.Normalization)
	}
	return nil
}

// Sink is an open output file that accepts frames and must be flushed to
// become valid.
type Sink interface {
	FrameWriter

	// Flush finalizes the file.
	Flush() error

	// Close abandons an unflushed file.
	Close() error
}

// Opener opens a sink for the given path and header.
type Opener func(path string, header wavio.Header) (Sink, error)

func openWAV(path string, header wavio.Header) (Sink, error) {
	w, err := wavio.Create(path, header)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// FileHeader returns the header of every generated file: 44.1 kHz stereo
// IEEE float.
func FileHeader() wavio.Header {
	return wavio.Header{
		Format:     wavio.Float32,
		Channels:   wavio.Stereo(),
		SampleRate: SampleRate,
	}
}

// State is the generator's position in the segment sequence.
type State int

const (
	StateIdle State = iota
	StateSilence
	StateTone
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSilence:
		return "silence"
	case StateTone:
		return "tone"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Generator assembles test files. It keeps the running frame index for the
// file in progress and is reset, not recreated, between files. A Generator
// is not safe for concurrent use.
type Generator struct {
	config Config
	synth  *Synthesizer
	open   Opener

	index int
	state State
}

// New creates a generator with the specified configuration.
func New(config *Config) (*Generator, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	synth, err := NewSynthesizer(config.WindowSize, config.Normalization, config.CheckResidue)
	if err != nil {
		return nil, err
	}

	open := config.Opener
	if open == nil {
		open = openWAV
	}

	return &Generator{
		config: *config,
		synth:  synth,
		open:   open,
	}, nil
}

// Config returns the generator configuration.
func (g *Generator) Config() Config { return g.config }

// Index returns the next frame index to be written.
func (g *Generator) Index() int { return g.index }

// State returns the current sequencing state.
func (g *Generator) State() State { return g.state }

// Reset rewinds the generator to the start of a new file.
func (g *Generator) Reset() {
	g.index = 0
	g.state = StateIdle
}

// Generate writes a complete test file for plan to path. Any failure to
// open, write or finalize the file aborts generation and is returned; an
// unflushed file is handed back to the sink's Close.
func (g *Generator) Generate(path string, plan TestPlan) error {
	sink, err := g.open(path, FileHeader())
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	if err := g.GenerateTo(sink, plan); err != nil {
		_ = sink.Close()
		return fmt.Errorf("failed to generate %s: %w", path, err)
	}

	if err := sink.Flush(); err != nil {
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}
	return nil
}

// GenerateTo writes the segment sequence for plan into w, starting at frame
// zero: a leading silence, then for each direction in file order its tone
// followed by a silence.
func (g *Generator) GenerateTo(w FrameWriter, plan TestPlan) error {
	g.Reset()

	if err := g.writeSilence(w); err != nil {
		return err
	}

	for _, d := range Directions() {
		if err := g.writeTone(w, d, plan.Tone(d)); err != nil {
			return fmt.Errorf("%s: %w", d, err)
		}
		if err := g.writeSilence(w); err != nil {
			return fmt.Errorf("after %s: %w", d, err)
		}
	}

	g.state = StateDone
	return nil
}

func (g *Generator) writeSilence(w FrameWriter) error {
	g.state = StateSilence
	frames := g.config.IterationsPerSilence * g.config.WindowSize
	g.logSegment("silence", frames)

	next, err := g.synth.EmitSilence(w, g.index, frames)
	g.index = next
	return err
}

func (g *Generator) writeTone(w FrameWriter, d Direction, t DirectionalTone) error {
	g.state = StateTone
	g.logSegment(d.String(), g.config.IterationsPerTone*g.config.WindowSize)

	left, right, err := g.synth.RenderTone(t)
	if err != nil {
		return err
	}

	next, err := g.synth.Emit(w, g.index, left, right, g.config.IterationsPerTone)
	g.index = next
	return err
}

func (g *Generator) logSegment(name string, frames int) {
	if g.config.Logger == nil {
		return
	}
	g.config.Logger.Printf("%-12s frames %d-%d", name, g.index, g.index+frames)
}
