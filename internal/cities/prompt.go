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

// MinInteractiveCities is the smallest count the interactive session accepts.
const MinInteractiveCities = 2

// Prompter runs the interactive console session: it asks for the city
// count, then for each city's coordinates, re-prompting until the entry is
// well formed.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter reads answers from r and writes prompts and hints to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

// readLine prints prompt and returns the next trimmed line.
// EOF before an answer yields io.ErrUnexpectedEOF.
func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		return "", io.ErrUnexpectedEOF
	}

	return strings.TrimSpace(p.in.Text()), nil
}

// ReadCount asks for the number of cities until an integer ≥ 2 is entered.
func (p *Prompter) ReadCount() (int, error) {
	for {
		line, err := p.readLine("Enter the number of cities: ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter an integer")
			continue
		}
		if n < MinInteractiveCities {
			fmt.Fprintf(p.out, "The number of cities must be greater than %d\n", MinInteractiveCities-1)
			continue
		}

		return n, nil
	}
}

// ReadPoint asks for city i until two finite numbers are entered.
func (p *Prompter) ReadPoint(i int) (tsp.Point, error) {
	for {
		line, err := p.readLine(fmt.Sprintf("City %d: ", i))
		if err != nil {
			return tsp.Point{}, err
		}
		pt, err := ParsePoint(line)
		switch {
		case err == nil:
			return pt, nil
		case errors.Is(err, ErrFieldCount):
			fmt.Fprintln(p.out, "Please enter two coordinates separated by a space")
		default:
			fmt.Fprintln(p.out, "Please enter numbers")
		}
	}
}

// ReadPoints runs the whole session.
func (p *Prompter) ReadPoints() ([]tsp.Point, error) {
	n, err := p.ReadCount()
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(p.out, "\nEnter city coordinates (x y):")
	points := make([]tsp.Point, 0, n)
	for i := 0; i < n; i++ {
		pt, err := p.ReadPoint(i)
		if err != nil {
			return nil, err
		}
		points = append(points, pt)
	}

	return points, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
