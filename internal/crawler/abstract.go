package crawler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

const maxAbstractLineBytes = 1 << 20

// ErrMalformedLine reports a recognized key whose line is not a single key=value pair.
var ErrMalformedLine = errors.New("malformed line")

// SyntaxError describes a malformed line of an abstract file.
type SyntaxError struct {
	Line int
	Text string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, ErrMalformedLine)
}

func (e *SyntaxError) Unwrap() error {
	return ErrMalformedLine
}

// ParseAbstract reads key=value assignments for the given keys from r.
//
// Spaces and line terminators are stripped before matching, so "tdiv  = 500"
// and "tdiv=500" are equivalent. Lines that do not name one of keys are
// skipped: abstract files also carry headers, other parameters and the
// regulatory network matrix. A repeated key keeps its last value.
func ParseAbstract(r io.Reader, keys []string) (map[string]string, error) {
	values := make(map[string]string, len(keys))

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxAbstractLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := stripLine(sc.Text())

		key, value, hasEq := strings.Cut(line, "=")
		if !slices.Contains(keys, key) {
			continue
		}
		if !hasEq || strings.Contains(value, "=") {
			return nil, &SyntaxError{Line: lineNo, Text: sc.Text()}
		}
		values[key] = value
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan abstract: %w", err)
	}

	return values, nil
}

func stripLine(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\n', '\r':
			return -1
		default:
			return r
		}
	}, s)
}
