// Command coegen writes the sine lookup table as a COE memory
// initialization file.
//
// Usage:
//
//	coegen                          # writes coeFile3.coe in the current directory
//	coegen out/sine.coe             # explicit output path
//	coegen -wav sine.wav sine.coe   # also write a WAV preview of the table
//
// The table content is fixed. Only the output location can be chosen.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	coesine "github.com/tphakala/go-coe-sine"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("coegen", flag.ContinueOnError)
	wavPath := flags.String("wav", "", "Also write a 16-bit WAV preview of the table to this path")
	verbose := flags.Bool("v", false, "Verbose output")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if flags.NArg() > maxPositionalArgs {
		fmt.Fprintf(os.Stderr, "Usage: coegen [options] [output.coe]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flags.PrintDefaults()
		return fmt.Errorf("too many arguments")
	}

	outputPath := defaultOutputPath
	if flags.NArg() == maxPositionalArgs {
		outputPath = flags.Arg(0)
	}

	if *verbose {
		log.Printf("Output: %s", outputPath)
		log.Printf("Samples: %d, amplitude: %g, radix: 16", coesine.SampleCount, coesine.Amplitude)
	}

	start := time.Now()
	if err := coesine.WriteFile(outputPath); err != nil {
		return err
	}
	if *verbose {
		log.Printf("Wrote %s in %v", outputPath, time.Since(start))
	}

	if *wavPath == "" {
		return nil
	}
	stats, err := writePreview(outputPath, *wavPath)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("Preview: %s (%d samples, table range 0x%x..0x%x)",
			*wavPath, stats.samples, stats.minValue, stats.maxValue)
	}
	return nil
}
