// Command matrix-tones writes the matrix surround calibration files to the
// current directory.
//
// Usage:
//
//	matrix-tones
//
// Two files are written, default.wav and sq.wav. Each one holds a silence
// followed by eight tone bursts, one per direction, each followed by
// another silence. The command takes no flags and exits non-zero on the
// first failure.
package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	tones "github.com/tphakala/go-matrix-tones"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	config := tones.DefaultConfig()
	printBanner(config)

	g, err := tones.New(&config)
	if err != nil {
		return err
	}

	start := time.Now()
	for _, p := range tones.Plans() {
		path := filepath.Join(outputDir, p.File)
		log.Printf("Writing %s plan to %s", p.Name, path)
		if err := g.Generate(path, p.Plan); err != nil {
			return err
		}
	}

	fmt.Printf("Wrote %d files (%d frames each) in %.2fs\n",
		len(tones.Plans()), tones.TotalFrames(config), time.Since(start).Seconds())
	return nil
}

func printBanner(config tones.Config) {
	fmt.Printf("Matrix surround test tones, %.0f Hz at %d Hz\n",
		toneFrequency(config), tones.SampleRate)
	fmt.Printf("Each tone lasts %.2fs, separated by %.2fs of silence\n",
		segmentSeconds(config.IterationsPerTone, config.WindowSize),
		segmentSeconds(config.IterationsPerSilence, config.WindowSize))
	fmt.Println("Tone order:")
	for i, d := range tones.Directions() {
		fmt.Printf("  %d. %s\n", i+1, d)
	}
}

func toneFrequency(config tones.Config) float64 {
	return float64(tones.SampleRate) / float64(config.WindowSize)
}

func segmentSeconds(iterations, windowSize int) float64 {
	return float64(iterations*windowSize) / float64(tones.SampleRate)
}
