package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	coesine "github.com/tphakala/go-coe-sine"
	"github.com/tphakala/go-coe-sine/internal/coe"
)

func TestTableToPCM(t *testing.T) {
	pcm := tableToPCM([]int{20, 0, 39, 40})
	assert.Equal(t, 0, pcm[0])
	assert.Equal(t, -32767, pcm[1])
	assert.Greater(t, pcm[2], 30000)
	assert.Equal(t, 32767, pcm[3])
}

func TestWritePreview(t *testing.T) {
	dir := t.TempDir()
	coePath := filepath.Join(dir, "sine.coe")
	wavPath := filepath.Join(dir, "sine.wav")
	require.NoError(t, coesine.WriteFile(coePath))

	stats, err := writePreview(coePath, wavPath)
	require.NoError(t, err)
	assert.Equal(t, coesine.SampleCount, stats.samples)
	assert.Equal(t, 0, stats.minValue)
	assert.Equal(t, 0x27, stats.maxValue)

	f, err := os.Open(wavPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	require.True(t, decoder.IsValidFile())
	buf, err := decoder.FullPCMBuffer()
	require.NoError(t, err)

	assert.Equal(t, previewSampleRate, buf.Format.SampleRate)
	assert.Equal(t, previewChannels, buf.Format.NumChannels)
	assert.Equal(t, uint16(previewBitDepth), decoder.BitDepth)
	require.Len(t, buf.Data, coesine.SampleCount)
	assert.Equal(t, 0, buf.Data[0])
}

func TestWritePreview_MissingInput(t *testing.T) {
	_, err := writePreview("/nonexistent/sine.coe", filepath.Join(t.TempDir(), "out.wav"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestWritePreview_EmptyTable(t *testing.T) {
	dir := t.TempDir()
	coePath := filepath.Join(dir, "empty.coe")
	require.NoError(t, coe.WriteFile(coePath, nil))

	_, err := writePreview(coePath, filepath.Join(dir, "out.wav"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no values")
}

func TestCreateWAVOutput_InvalidDirectory(t *testing.T) {
	_, err := createWAVOutput("/nonexistent/dir/output.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create preview file")
}
