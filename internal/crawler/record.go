package crawler

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMissingField reports an abstract file that lacks a required key.
var ErrMissingField = errors.New("missing field")

// MissingFieldError names the run and the key that was not defined.
type MissingFieldError struct {
	Run string
	Key string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s %q", e.Run, ErrMissingField, e.Key)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// ValueError reports a value that could not be converted to its numeric type.
type ValueError struct {
	Run   string
	Key   string
	Value string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: invalid value %q for %s: %v", e.Run, e.Value, e.Key, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// Record holds the parameters of one simulation run.
// Nil fields were not present in the abstract file.
type Record struct {
	Name   string
	Nmax   *int64
	NGenes *int
	TDiv   *int64
	DT     *float64
}

// NewRecord converts parsed abstract values into a Record for run.
func NewRecord(run string, values map[string]string) (Record, error) {
	rec := Record{Name: run}

	if raw, ok := values[keyNmax]; ok {
		v, err := parseInt(raw)
		if err != nil {
			return rec, &ValueError{Run: run, Key: keyNmax, Value: raw, Err: err}
		}
		rec.Nmax = &v
	}
	if raw, ok := values[keyTheta]; ok {
		n := countListElements(raw)
		rec.NGenes = &n
	}
	if raw, ok := values[keyTDiv]; ok {
		v, err := parseInt(raw)
		if err != nil {
			return rec, &ValueError{Run: run, Key: keyTDiv, Value: raw, Err: err}
		}
		rec.TDiv = &v
	}
	if raw, ok := values[keyDT]; ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return rec, &ValueError{Run: run, Key: keyDT, Value: raw, Err: err}
		}
		rec.DT = &v
	}

	return rec, nil
}

// Validate reports the first recognized key the record is missing.
func (r Record) Validate() error {
	switch {
	case r.Nmax == nil:
		return &MissingFieldError{Run: r.Name, Key: keyNmax}
	case r.NGenes == nil:
		return &MissingFieldError{Run: r.Name, Key: keyTheta}
	case r.TDiv == nil:
		return &MissingFieldError{Run: r.Name, Key: keyTDiv}
	case r.DT == nil:
		return &MissingFieldError{Run: r.Name, Key: keyDT}
	}
	return nil
}

// Block renders the report entry for a validated record.
func (r Record) Block() string {
	return fmt.Sprintf("%s :\n    Nmax = %d\n    tdiv = %d\n    dt = %s\n",
		r.Name, *r.Nmax, *r.TDiv, formatFloat(*r.DT))
}

func parseInt(raw string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
}

// countListElements counts the entries of a comma-separated list such as
// "[-0.01,-0.03,0.02]". An empty list has no entries.
func countListElements(raw string) int {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")
	if raw == "" {
		return 0
	}
	return strings.Count(raw, ",") + 1
}

// formatFloat renders f in shortest round-trip form: plain decimal with at
// least one fractional digit for exponents in [-4, 16), exponent notation
// otherwise.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	_, expPart, _ := strings.Cut(sci, "e")
	exp, err := strconv.Atoi(expPart)
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
