package coe

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// File is a decoded COE file.
type File struct {
	Radix  int
	Values []int
}

// decodeState tracks which part of the file the decoder expects next.
type decodeState int

const (
	expectRadix decodeState = iota
	expectVector
	inVector
	afterVector
)

// Decode reads a hexadecimal COE file from r. Whitespace around keys and
// values is ignored, lines starting with ';' are comments, and the vector may
// end with either a trailing comma or a semicolon.
func Decode(r io.Reader) (*File, error) {
	f := &File{}
	state := expectRadix
	sc := bufio.NewScanner(r)
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		switch state {
		case expectRadix:
			radix, err := parseRadix(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			f.Radix = radix
			state = expectVector

		case expectVector:
			rest, ok := cutKey(line, vectorKey)
			if !ok {
				return nil, fmt.Errorf("%w: line %d: expected %s", ErrMalformed, lineNo, VectorLine)
			}
			var err error
			if state, err = f.appendValues(rest, lineNo); err != nil {
				return nil, err
			}

		case inVector:
			var err error
			if state, err = f.appendValues(line, lineNo); err != nil {
				return nil, err
			}

		case afterVector:
			return nil, fmt.Errorf("%w: line %d: data after vector end", ErrMalformed, lineNo)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read COE data: %w", err)
	}

	if state < inVector {
		return nil, fmt.Errorf("%w: missing header", ErrMalformed)
	}
	return f, nil
}

// ReadFile decodes the COE file at path.
func ReadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = fh.Close() }()

	f, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return f, nil
}

// appendValues parses the comma separated values in s and reports whether
// the vector continues past this line.
func (f *File) appendValues(s string, lineNo int) (decodeState, error) {
	ended := false
	if i := strings.IndexByte(s, vectorEnd); i >= 0 {
		if strings.TrimSpace(s[i+1:]) != "" {
			return 0, fmt.Errorf("%w: line %d: data after vector end", ErrMalformed, lineNo)
		}
		s = s[:i]
		ended = true
	}

	for tok := range strings.SplitSeq(s, string(valueSeparator)) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := parseValue(tok)
		if err != nil {
			return 0, fmt.Errorf("%w: line %d: %q: %w", ErrMalformed, lineNo, tok, err)
		}
		f.Values = append(f.Values, v)
	}

	if ended {
		return afterVector, nil
	}
	return inVector, nil
}

func parseRadix(line string) (int, error) {
	rest, ok := cutKey(line, radixKey)
	if !ok {
		return 0, fmt.Errorf("%w: expected %s", ErrMalformed, RadixLine)
	}
	rest = strings.TrimSpace(strings.TrimSuffix(rest, string(vectorEnd)))
	radix, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("%w: bad radix %q", ErrMalformed, rest)
	}
	if radix != Radix {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedRadix, radix)
	}
	return radix, nil
}

func parseValue(tok string) (int, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(tok, hexPrefix), "0X")
	v, err := strconv.ParseUint(digits, Radix, strconv.IntSize-1)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// cutKey splits "key = value" and returns the trimmed value when the key matches.
func cutKey(line, key string) (string, bool) {
	k, v, ok := strings.Cut(line, "=")
	if !ok || strings.TrimSpace(k) != key {
		return "", false
	}
	return strings.TrimSpace(v), true
}
