// Package coe reads and writes COE memory initialization files, the plain
// text format hardware toolchains use to preload block memories.
//
// Files written here look like:
//
//	memory_initialization_radix=16;
//	memory_initialization_vector=
//	0x14,
//	0x14,
//	...
//	0x13,
//
// Every data line carries a trailing comma, the last one included. The
// encoder never emits a closing semicolon.
package coe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

var (
	// ErrNegativeValue indicates a value that cannot be written as an unsigned memory word.
	ErrNegativeValue = errors.New("negative memory value")

	// ErrMalformed indicates input that does not follow the COE layout.
	ErrMalformed = errors.New("malformed COE file")

	// ErrUnsupportedRadix indicates a radix other than 16.
	ErrUnsupportedRadix = errors.New("unsupported COE radix")
)

// Encoder writes a COE file one value at a time.
type Encoder struct {
	w           *bufio.Writer
	wroteHeader bool
	count       int
	line        []byte
}

// NewEncoder returns an Encoder that buffers output to w.
// Callers must call Flush when done.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:    bufio.NewWriter(w),
		line: make([]byte, 0, maxValueLineLen),
	}
}

// WriteHeader writes the radix and vector header lines.
// Calling it more than once has no effect.
func (e *Encoder) WriteHeader() error {
	if e.wroteHeader {
		return nil
	}
	if _, err := e.w.WriteString(RadixLine + "\n" + VectorLine + "\n"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	e.wroteHeader = true
	return nil
}

// WriteValue writes v as one "0x<hex>," data line, writing the header first
// if needed.
func (e *Encoder) WriteValue(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %d at index %d", ErrNegativeValue, v, e.count)
	}
	if err := e.WriteHeader(); err != nil {
		return err
	}

	e.line = append(e.line[:0], hexPrefix...)
	e.line = strconv.AppendInt(e.line, int64(v), Radix)
	e.line = append(e.line, valueSeparator, lineTerminator)
	if _, err := e.w.Write(e.line); err != nil {
		return fmt.Errorf("failed to write value at index %d: %w", e.count, err)
	}
	e.count++
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (e *Encoder) Flush() error {
	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// Count returns the number of data lines written so far.
func (e *Encoder) Count() int {
	return e.count
}

// Encode writes a complete COE file holding values to w.
func Encode(w io.Writer, values []int) error {
	enc := NewEncoder(w)
	if err := enc.WriteHeader(); err != nil {
		return err
	}
	for _, v := range values {
		if err := enc.WriteValue(v); err != nil {
			return err
		}
	}
	return enc.Flush()
}

// WriteFile creates or truncates the file at path and encodes values into it.
// The parent directory must already exist. A failed write leaves whatever was
// written in place.
func WriteFile(path string, values []int) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputFileMode)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if err := Encode(f, values); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
