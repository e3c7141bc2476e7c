package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cast"
)

var errMalformedTrace = errors.New("malformed trace")

// Trace is a time-aligned intensity signal.
type Trace struct {
	Time      []float64
	Intensity []float64
}

// LoadTrace reads a trace file.
func LoadTrace(path string) (Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return Trace{}, err
	}
	defer f.Close()

	tr, err := ReadTrace(f)
	if err != nil {
		return Trace{}, fmt.Errorf("%s: %w", path, err)
	}

	return tr, nil
}

// ReadTrace parses "time intensity" rows. Fields may be separated by
// whitespace, commas or semicolons; blank lines and # comments are skipped.
func ReadTrace(r io.Reader) (Trace, error) {
	var tr Trace

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++

		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\r'
		})
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return Trace{}, fmt.Errorf("%w: line %d: want 2 columns, got %d", errMalformedTrace, line, len(fields))
		}

		t, err := cast.ToFloat64E(fields[0])
		if err != nil {
			return Trace{}, fmt.Errorf("%w: line %d: time: %w", errMalformedTrace, line, err)
		}
		v, err := cast.ToFloat64E(fields[1])
		if err != nil {
			return Trace{}, fmt.Errorf("%w: line %d: intensity: %w", errMalformedTrace, line, err)
		}

		tr.Time = append(tr.Time, t)
		tr.Intensity = append(tr.Intensity, v)
	}
	if err := sc.Err(); err != nil {
		return Trace{}, err
	}

	return tr, nil
}
