package coe

// Header keys and lines. The radix is fixed at 16.
const (
	radixKey  = "memory_initialization_radix"
	vectorKey = "memory_initialization_vector"

	// RadixLine is the first header line of every file this package writes.
	RadixLine = radixKey + "=16;"

	// VectorLine is the second header line; data lines follow it.
	VectorLine = vectorKey + "="

	// Radix is the numeric base of every data value.
	Radix = 16
)

// Data line syntax
const (
	hexPrefix      = "0x"
	valueSeparator = ','
	lineTerminator = '\n'
	vectorEnd      = ';'
	commentPrefix  = ";"

	// Longest data line: "0x" + 16 hex digits + ",\n"
	maxValueLineLen = 20
)

// File permissions
const (
	outputFileMode = 0o644
)
