// Package cities reads city coordinates for the solver: from plain text
// streams, from YAML/JSON instance files, or interactively from a terminal.
//
// Every reader guarantees the points it returns are finite, so the solver
// never sees malformed input.
package cities

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/tsp2opt/tsp"
)

var (
	// ErrFieldCount is returned when a line does not hold exactly two values.
	ErrFieldCount = errors.New("cities: expected two coordinates")

	// ErrNotNumber is returned when a coordinate is not a finite number.
	ErrNotNumber = errors.New("cities: coordinate is not a finite number")

	// ErrNoCities is returned when an input holds no points at all.
	ErrNoCities = errors.New("cities: no cities in input")
)

// ParseError locates a malformed line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// splitFields splits on whitespace and commas.
func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// parseCoordinate parses a finite float.
func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotNumber
	}

	return v, nil
}

// ParsePoint parses "x y" (or "x,y") into a point.
func ParsePoint(s string) (tsp.Point, error) {
	fields := splitFields(s)
	if len(fields) != 2 {
		return tsp.Point{}, ErrFieldCount
	}
	x, err := parseCoordinate(fields[0])
	if err != nil {
		return tsp.Point{}, err
	}
	y, err := parseCoordinate(fields[1])
	if err != nil {
		return tsp.Point{}, err
	}

	return tsp.Point{X: x, Y: y}, nil
}

// ReadPoints reads one point per line from r. Blank lines and lines starting
// with '#' are skipped. The first data line may be a lone integer giving the
// city count; it is skipped and the points themselves define the count.
func ReadPoints(r io.Reader) ([]tsp.Point, error) {
	var (
		sc      = bufio.NewScanner(r)
		points  []tsp.Point
		lineNo  int
		sawData bool
		line    string
		fields  []string
		p       tsp.Point
		err     error
	)
	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields = splitFields(line)
		if !sawData {
			sawData = true
			if len(fields) == 1 {
				if n, convErr := strconv.Atoi(fields[0]); convErr == nil && n >= 0 {
					continue // count header
				}
			}
		}

		if p, err = ParsePoint(line); err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		points = append(points, p)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read points: %w", err)
	}

	if len(points) == 0 {
		return nil, ErrNoCities
	}

	return points, nil
}
