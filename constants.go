package coesine

import "math"

// Table shape
const (
	// SampleCount is the number of memory words in the table.
	SampleCount = 38400

	// Amplitude is the upper bound of the rescaled sine before truncation.
	Amplitude = 40.0
)

// Affine rescale from [-1, 1] to [0, 1]: 0.5*x + 0.5
const (
	halfRange = 0.5
	midpoint  = 0.5
)

// Sample span
const (
	spanStart = 0.0
	spanEnd   = 1.0
	twoPi     = 2 * math.Pi
)
