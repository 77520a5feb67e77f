package tones

import (
	"fmt"
	"path/filepath"
)

// Segment is one silence or tone span of a generated file.
type Segment struct {
	// Kind is StateSilence or StateTone.
	Kind State

	// Direction is the tone's direction. It is only meaningful for tones.
	Direction Direction

	// Start is the first frame index of the segment.
	Start int

	// Frames is the segment length.
	Frames int
}

// SegmentLayout returns the segments a generator with config writes, in
// file order: nine silences interleaved with eight tones.
func SegmentLayout(config Config) []Segment {
	silence := config.IterationsPerSilence * config.WindowSize
	tone := config.IterationsPerTone * config.WindowSize

	layout := make([]Segment, 0, 2*NumDirections+1)
	start := 0
	add := func(kind State, d Direction, frames int) {
		layout = append(layout, Segment{Kind: kind, Direction: d, Start: start, Frames: frames})
		start += frames
	}

	add(StateSilence, Center, silence)
	for _, d := range Directions() {
		add(StateTone, d, tone)
		add(StateSilence, d, silence)
	}
	return layout
}

// TotalFrames returns the frame count of a file written with config.
func TotalFrames(config Config) int {
	return (NumDirections+1)*config.IterationsPerSilence*config.WindowSize +
		NumDirections*config.IterationsPerTone*config.WindowSize
}

// GenerateFile writes plan to path with the default configuration.
func GenerateFile(path string, plan TestPlan) error {
	config := DefaultConfig()
	g, err := New(&config)
	if err != nil {
		return err
	}
	return g.Generate(path, plan)
}

// WriteStandardFiles writes every plan from Plans into dir and returns the
// paths written. It stops at the first failure.
func WriteStandardFiles(dir string) ([]string, error) {
	config := DefaultConfig()
	return WriteStandardFilesWithConfig(dir, &config)
}

// WriteStandardFilesWithConfig is WriteStandardFiles with a custom
// configuration. One generator is reused for all files.
func WriteStandardFilesWithConfig(dir string, config *Config) ([]string, error) {
	g, err := New(config)
	if err != nil {
		return nil, err
	}

	plans := Plans()
	paths := make([]string, 0, len(plans))
	for _, p := range plans {
		path := filepath.Join(dir, p.File)
		if err := g.Generate(path, p.Plan); err != nil {
			return paths, fmt.Errorf("%s plan: %w", p.Name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
