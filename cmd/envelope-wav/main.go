// Command envelope-wav renders a breakpoint envelope and writes it as a
// mono WAV file, optionally printing a terminal plot of the result.
//
// Usage:
//
//	envelope-wav -preset adsr out.wav
//	envelope-wav -preset riser -definition 65536 -rate 44100 out.wav
//	envelope-wav -preset spline -plot out.wav
//
// The rendered buffer is written once as a single mono chunk; presets
// cover the common envelope families (adsr, riser, bezier, spline,
// gaussian, tremolo).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const (
	// CLI defaults
	defaultPreset     = "adsr"
	defaultDefinition = 16384
	defaultSampleRate = 48000
	defaultBitDepth   = 16
	defaultGain       = 1.0

	minRequiredArgs = 1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	preset := flag.String("preset", defaultPreset, "Envelope preset: adsr, riser, bezier, spline, gaussian, tremolo")
	definition := flag.Int("definition", defaultDefinition, "Number of samples to render")
	rate := flag.Int("rate", defaultSampleRate, "Output sample rate in Hz")
	bits := flag.Int("bits", defaultBitDepth, "Output bit depth: 16 or 24")
	gain := flag.Float64("gain", defaultGain, "Linear gain applied before conversion")
	plot := flag.Bool("plot", false, "Print an ASCII plot of the rendered envelope")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -preset adsr env.wav             # Classic ADSR envelope\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -preset riser -plot riser.wav    # Plot and export a riser\n", os.Args[0])
		return fmt.Errorf("insufficient arguments")
	}
	outputPath := args[0]

	if *definition < 1 {
		return fmt.Errorf("definition must be at least 1, got %d", *definition)
	}
	if *bits != 16 && *bits != 24 {
		return fmt.Errorf("unsupported bit depth %d (want 16 or 24)", *bits)
	}

	curve, err := buildPreset(*preset, *definition)
	if err != nil {
		return err
	}
	if err := curve.Render(); err != nil {
		return fmt.Errorf("failed to render envelope: %w", err)
	}

	if *verbose {
		log.Printf("Preset: %s", *preset)
		log.Printf("Definition: %d samples", *definition)
		log.Printf("Output: %s (%d Hz, %d-bit)", outputPath, *rate, *bits)
		log.Printf("Peak: %.4f", curve.Peak())
	}

	if *plot {
		art, err := curve.AsciiArt(*preset, fmt.Sprintf("%d samples @ %d Hz", *definition, *rate), '*')
		if err != nil {
			return err
		}
		fmt.Print(art)
	}

	samples, err := curve.Samples()
	if err != nil {
		return err
	}
	pcm, clipped := toPCM(samples, *gain, *bits)
	if clipped > 0 {
		log.Printf("warning: %d samples clipped at %d-bit full scale", clipped, *bits)
	}

	if err := writeWAV(outputPath, pcm, *rate, *bits); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	fmt.Printf("Wrote %s (%d samples, %d Hz, %d-bit)\n",
		filepath.Base(outputPath), len(pcm), *rate, *bits)
	return nil
}
