// Command inspect-tones prints the tones recovered from generated
// calibration files.
//
// Usage:
//
//	inspect-tones default.wav sq.wav
//	inspect-tones -norm peak loud.wav
//
// For every direction it prints the per-channel magnitude and phase of the
// tone and the right minus left phase difference.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tones "github.com/tphakala/go-matrix-tones"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	norm := flag.String("norm", "orthonormal", "Normalization the files were written with: peak, orthonormal")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file.wav...\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("no input files")
	}

	normalization, err := parseNormalization(*norm)
	if err != nil {
		return err
	}
	config := tones.DefaultConfig()
	config.Normalization = normalization

	for _, path := range args {
		if *verbose {
			log.Printf("Analyzing %s (%s normalization)", path, normalization)
		}
		report, err := tones.AnalyzeFile(path, config)
		if err != nil {
			return fmt.Errorf("failed to analyze %s: %w", path, err)
		}
		fmt.Printf("%s\n", path)
		writeReport(os.Stdout, report, *verbose)
	}
	return nil
}
