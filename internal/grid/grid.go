// internal/grid/grid.go
//
// Fixed 4x4 letter grid.
// A Grid is built once from 16 letters (after normalization) and never changes.
// Cells are addressed (row, col), 0-based; flat index i sits at (i/Size, i%Size).

package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordhunt/internal/letters"
)

// Size is the grid dimension.
const Size = 4

// Cells is the number of cells in a grid.
const Cells = Size * Size

// ErrInvalidLetterCount is returned when the input does not normalize to exactly Cells letters.
var ErrInvalidLetterCount = errors.New("grid: need exactly 16 letters")

// Grid is an immutable Size x Size matrix of normalized letters.
type Grid struct {
	cells [Size][Size]rune
}

// Cell is a grid coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// New normalizes input and lays the letters out row-major.
func New(input string) (*Grid, error) {
	rs := []rune(letters.Normalize(input))
	if len(rs) != Cells {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLetterCount, len(rs))
	}
	g := &Grid{}
	for i, r := range rs {
		g.cells[i/Size][i%Size] = r
	}
	return g, nil
}

// At returns the letter at (row, col). Callers keep both in [0, Size).
func (g *Grid) At(row, col int) rune { return g.cells[row][col] }

// Letters returns the 16 letters in row-major order.
func (g *Grid) Letters() string {
	var b strings.Builder
	for _, row := range g.cells {
		for _, r := range row {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Rows returns a copy of the grid as nested slices.
func (g *Grid) Rows() [][]rune {
	out := make([][]rune, Size)
	for i := range g.cells {
		out[i] = append([]rune(nil), g.cells[i][:]...)
	}
	return out
}

// String renders the grid as four space-separated rows.
func (g *Grid) String() string {
	lines := make([]string, 0, Size)
	for _, row := range g.cells {
		parts := make([]string, Size)
		for j, r := range row {
			parts[j] = string(r)
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}
