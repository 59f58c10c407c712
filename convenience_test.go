package coesine

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-coe-sine/internal/coe"
	"github.com/tphakala/go-coe-sine/internal/testutil"
)

const headerLines = 2

var dataLine = regexp.MustCompile(`^0x[0-9a-f]+,$`)

func writeTable(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coeFile3.coe")
	require.NoError(t, WriteFile(path))
	return path
}

func parseDataLine(t *testing.T, line string) int {
	t.Helper()
	require.Regexp(t, dataLine, line)
	v, err := strconv.ParseInt(strings.TrimSuffix(strings.TrimPrefix(line, "0x"), ","), 16, 64)
	require.NoError(t, err)
	return int(v)
}

func TestWriteFile_Layout(t *testing.T) {
	lines := testutil.ReadLines(t, writeTable(t))
	require.Len(t, lines, SampleCount+headerLines)

	assert.Equal(t, "memory_initialization_radix=16;", lines[0])
	assert.Equal(t, "memory_initialization_vector=", lines[1])

	for i, line := range lines[headerLines:] {
		if !dataLine.MatchString(line) {
			t.Fatalf("data line %d = %q, want <hex>,", i, line)
		}
	}
}

func TestWriteFile_EndsWithTrailingComma(t *testing.T) {
	data, err := os.ReadFile(writeTable(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasSuffix(data, []byte("0x13,\n")))
}

func TestWriteFile_FirstAndLastLines(t *testing.T) {
	lines := testutil.ReadLines(t, writeTable(t))
	data := lines[headerLines:]

	first := make([]int, 3)
	last := make([]int, 3)
	for i := range 3 {
		first[i] = parseDataLine(t, data[i])
		last[i] = parseDataLine(t, data[len(data)-3+i])
	}
	assert.Equal(t, []int{0x14, 0x14, 0x14}, first)
	assert.Equal(t, []int{0x13, 0x13, 0x13}, last)

	assert.Equal(t, 0x27, parseDataLine(t, data[9600]))
}

func TestWriteFile_Idempotent(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.coe")
	b := filepath.Join(dir, "b.coe")
	require.NoError(t, WriteFile(a))
	require.NoError(t, WriteFile(b))
	require.NoError(t, WriteFile(b))

	da, err := os.ReadFile(a)
	require.NoError(t, err)
	db, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(da, db), "repeated runs must produce identical files")
}

func TestWriteFile_RoundTrip(t *testing.T) {
	f, err := coe.ReadFile(writeTable(t))
	require.NoError(t, err)
	assert.Equal(t, coe.Radix, f.Radix)
	assert.Equal(t, Table(), f.Values)
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir", "out.coe"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
