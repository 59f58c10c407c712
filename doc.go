// Package coesine generates the sine lookup table used to preload a block
// memory, and writes it as a COE memory initialization file.
//
// The table holds one period of a sine wave sampled at [SampleCount] evenly
// spaced points on [0, 1], both ends included, rescaled from [-1, 1] to
// [0, Amplitude] and truncated to integers.
//
// # Quick Start
//
//	if err := coesine.WriteFile("coeFile3.coe"); err != nil {
//	    log.Fatal(err)
//	}
//
// The output path is always explicit. Nothing here changes the process
// working directory.
//
// # Quantization
//
// Values are truncated toward zero, not rounded. The sample closest to the
// positive peak is 40 - 1.7e-8 and becomes 39, so the table spans 0..39.
package coesine
