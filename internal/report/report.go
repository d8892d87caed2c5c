// Package report renders distance matrices and solved tours for the console,
// either as fixed-width text or as a JSON document.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/tsp2opt/matrix"
	"github.com/katalvlaran/tsp2opt/tsp"
)

// cellWidth is the fixed width of one matrix cell.
const cellWidth = 8

// printer accumulates the first write error so call sites stay linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// WriteMatrix prints m as a table, one row per line, each cell right-aligned
// in cellWidth columns with the given number of decimals and followed by a
// space.
func WriteMatrix(w io.Writer, m matrix.Matrix, precision int) error {
	p := &printer{w: w}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			p.printf("%*.*f ", cellWidth, precision, v)
		}
		p.printf("\n")
	}

	return p.err
}

// WriteTour prints the tour, its total length, the visiting order with each
// city's coordinates, and the closing return to the start.
func WriteTour(w io.Writer, points []tsp.Point, res tsp.Result, precision int) error {
	p := &printer{w: w}
	p.printf("Tour: %s\n", res.Tour)
	p.printf("Total length: %.*f\n", precision, res.Length)
	if res.Moves > 0 {
		p.printf("Nearest-neighbor length: %.*f (2-opt moves: %d, passes: %d)\n",
			precision, res.InitialLength, res.Moves, res.Passes)
	}
	if !res.Converged {
		p.printf("Note: search stopped by its budget before reaching a 2-opt local optimum\n")
	}

	p.printf("\nVisiting order:\n")
	for k, city := range res.Tour {
		if city < 0 || city >= len(points) {
			return fmt.Errorf("tour city %d has no coordinates: %w", city, tsp.ErrInvalidTour)
		}
		p.printf("%d. City %d (%s, %s)\n", k+1, city, formatCoord(points[city].X), formatCoord(points[city].Y))
	}
	if len(res.Tour) > 0 {
		p.printf("Return to city %d\n", res.Tour[0])
	}

	return p.err
}

// Document is the JSON rendering of a solved instance.
type Document struct {
	Label         string      `json:"label,omitempty"`
	Tour          []int       `json:"tour"`
	Length        float64     `json:"length"`
	InitialLength float64     `json:"initial_length"`
	Passes        int         `json:"passes"`
	Moves         int         `json:"moves"`
	Converged     bool        `json:"converged"`
	Points        []tsp.Point `json:"points"`
}

// NewDocument builds the JSON document for a result.
func NewDocument(label string, points []tsp.Point, res tsp.Result) Document {
	return Document{
		Label:         label,
		Tour:          []int(res.Tour),
		Length:        res.Length,
		InitialLength: res.InitialLength,
		Passes:        res.Passes,
		Moves:         res.Moves,
		Converged:     res.Converged,
		Points:        points,
	}
}

// WriteJSON writes v (a Document or a slice of them) as indented JSON
// followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func formatCoord(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
