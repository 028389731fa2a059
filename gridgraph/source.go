package gridgraph

import (
	"fmt"
	"strings"
)

// FromBools builds a grid from rows of walkability flags (true = walkable).
// rows[y][x] addresses the cell at (x,y). Walkable cells get weight 1.
func FromBools(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	weights := make([]float64, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for _, open := range row {
			if open {
				weights = append(weights, 1)
			} else {
				weights = append(weights, Blocked)
			}
		}
	}

	return NewGrid(w, h, weights)
}

// FromWeights builds a grid from rows of weights; rows[y][x] addresses (x,y).
func FromWeights(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	weights := make([]float64, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		weights = append(weights, row...)
	}

	return NewGrid(w, h, weights)
}

// FromFlags decodes the packed authoring format: width×height tokens
// separated by '.', row-major, "0" walkable and "1" blocked.
// For example "0.0.1.0" with width 2 is a 2×2 grid with (0,1) blocked.
func FromFlags(flags string, width int) (*Grid, error) {
	if width <= 0 || flags == "" {
		return nil, ErrEmptyGrid
	}
	tokens := strings.Split(flags, ".")
	if len(tokens)%width != 0 {
		return nil, fmt.Errorf("%w: %d flags do not fill rows of width %d", ErrDimensionMismatch, len(tokens), width)
	}
	weights := make([]float64, len(tokens))
	for i, tok := range tokens {
		switch strings.TrimSpace(tok) {
		case "0":
			weights[i] = 1
		case "1":
			weights[i] = Blocked
		default:
			return nil, fmt.Errorf("%w: flag %q at position %d", ErrBadCell, tok, i)
		}
	}

	return NewGrid(width, len(tokens)/width, weights)
}

// ParseASCII builds a grid from text rows:
//
//	'.' or ' '      walkable, weight 1
//	'#', 'X' or 'x' blocked
//	'1'…'9'         walkable with that weight
func ParseASCII(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	weights := make([]float64, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x := 0; x < len(row); x++ {
			ch := row[x]
			switch {
			case ch == '.' || ch == ' ':
				weights = append(weights, 1)
			case ch == '#' || ch == 'X' || ch == 'x':
				weights = append(weights, Blocked)
			case ch >= '1' && ch <= '9':
				weights = append(weights, float64(ch-'0'))
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, ch, x, y)
			}
		}
	}

	return NewGrid(w, h, weights)
}

// Rows renders the grid back into the ParseASCII format.
// Weights above 9 are clamped to '9'.
func (g *Grid) Rows() []string {
	out := make([]string, g.Height)
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		sb.Reset()
		for x := 0; x < g.Width; x++ {
			w := g.weights[y*g.Width+x]
			switch {
			case w == Blocked:
				sb.WriteByte('#')
			case w == 1:
				sb.WriteByte('.')
			case w >= 9:
				sb.WriteByte('9')
			default:
				sb.WriteByte('0' + byte(w))
			}
		}
		out[y] = sb.String()
	}

	return out
}

// String joins Rows with newlines.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
