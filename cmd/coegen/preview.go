package main

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	coesine "github.com/tphakala/go-coe-sine"
	"github.com/tphakala/go-coe-sine/internal/coe"
)

// previewStats describes the table that was rendered to WAV.
type previewStats struct {
	samples  int
	minValue int
	maxValue int
}

// writePreview reads the COE file at coePath back and renders its values as
// a mono 16-bit WAV file at wavPath, centered on the table midpoint.
func writePreview(coePath, wavPath string) (*previewStats, error) {
	table, err := coe.ReadFile(coePath)
	if err != nil {
		return nil, err
	}
	if len(table.Values) == 0 {
		return nil, fmt.Errorf("no values in %s", coePath)
	}

	out, err := createWAVOutput(wavPath)
	if err != nil {
		return nil, err
	}

	if err := out.WriteSamples(tableToPCM(table.Values)); err != nil {
		_ = out.Close()
		return nil, err
	}
	if err := out.Close(); err != nil {
		return nil, err
	}

	stats := &previewStats{
		samples:  len(table.Values),
		minValue: table.Values[0],
		maxValue: table.Values[0],
	}
	for _, v := range table.Values {
		stats.minValue = min(stats.minValue, v)
		stats.maxValue = max(stats.maxValue, v)
	}
	return stats, nil
}

// tableToPCM maps table values from [0, Amplitude] to 16-bit PCM.
func tableToPCM(values []int) []int {
	const center = coesine.Amplitude / 2

	pcm := make([]int, len(values))
	for i, v := range values {
		pcm[i] = int((float64(v) - center) * maxInt16 / center)
	}
	return pcm
}

// wavOutputWriter wraps the output file and WAV encoder.
type wavOutputWriter struct {
	file    *os.File
	encoder *wav.Encoder
}

// createWAVOutput creates the output file and encoder.
func createWAVOutput(path string) (*wavOutputWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create preview file: %w", err)
	}

	return &wavOutputWriter{
		file:    f,
		encoder: wav.NewEncoder(f, previewSampleRate, previewBitDepth, previewChannels, wavFormatPCM),
	}, nil
}

// WriteSamples writes mono PCM samples to the output file.
func (w *wavOutputWriter) WriteSamples(samples []int) error {
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: previewChannels,
			SampleRate:  previewSampleRate,
		},
		Data:           samples,
		SourceBitDepth: previewBitDepth,
	}
	if err := w.encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write preview samples: %w", err)
	}
	return nil
}

// Close finalizes the WAV header and closes the file.
func (w *wavOutputWriter) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("failed to finalize preview: %w", err)
	}
	return w.file.Close()
}
