package main

// Command-line defaults
const (
	defaultOutputPath = "coeFile3.coe" // File name the memory IP cores were configured with
	maxPositionalArgs = 1
)

// WAV preview format
const (
	previewSampleRate = 38400 // One table period per second
	previewBitDepth   = 16
	previewChannels   = 1
	wavFormatPCM      = 1
	maxInt16          = 32767.0
)
