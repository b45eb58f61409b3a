// internal/grid/path.go
//
// Path search: can a word be spelled by a simple path of 8-adjacent cells?
//
// Depth-first backtracking:
//   - Every cell holding the first letter is tried as a start, each with a fresh visited set.
//   - A cell is marked before descending and unmarked on every way out.
//   - Neighbours are explored in a fixed order and the search stops at the first success.
//
// Only existence matters to callers; the fixed order makes Path deterministic too.

package grid

// directions lists the 8 king-move offsets in exploration order.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Contains reports whether word (normalized, non-empty) can be traced in the grid.
func (g *Grid) Contains(word string) bool {
	return g.Path(word) != nil
}

// Path returns the cells of the first path spelling word, or nil if there is none.
func (g *Grid) Path(word string) []Cell {
	w := []rune(word)
	if len(w) == 0 || len(w) > Cells {
		return nil
	}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g.cells[r][c] != w[0] {
				continue
			}
			// Length-1 words need no neighbour.
			if len(w) == 1 {
				return []Cell{{Row: r, Col: c}}
			}
			s := &search{g: g, word: w, path: make([]Cell, 0, len(w))}
			if s.try(r, c, 0) {
				return s.path
			}
		}
	}
	return nil
}

// search is the state of one start-cell attempt. It is never shared.
type search struct {
	g       *Grid
	word    []rune
	visited [Size][Size]bool
	path    []Cell
}

func (s *search) try(row, col, pos int) bool {
	if pos == len(s.word) {
		return true
	}
	if !inBounds(row, col) || s.visited[row][col] || s.g.cells[row][col] != s.word[pos] {
		return false
	}

	s.visited[row][col] = true
	s.path = append(s.path, Cell{Row: row, Col: col})

	if pos == len(s.word)-1 {
		s.visited[row][col] = false
		return true
	}
	for _, d := range directions {
		if s.try(row+d[0], col+d[1], pos+1) {
			s.visited[row][col] = false
			return true
		}
	}

	s.visited[row][col] = false
	s.path = s.path[:len(s.path)-1]
	return false
}

// adjacent reports whether two cells are distinct 8-neighbours.
func adjacent(a, b Cell) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr == 0 && dc == 0 {
		return false
	}
	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}
