// internal/hunt/hunt.go
//
// Dictionary scan: run the path search for every candidate word and group hits by length.
// Scans are sequential and never mutate the grid or the dictionary.

package hunt

import (
	"context"
	"sort"
	"unicode/utf8"

	"github.com/robalobadob/wordhunt/internal/grid"
	"github.com/robalobadob/wordhunt/internal/letters"
)

// Source supplies candidate words. *words.Dictionary satisfies it.
type Source interface {
	Words() []string
}

// Found maps a word length (in letters) to the words of that length found in a grid.
type Found map[int][]string

// Scan checks every word of src against g.
func Scan(g *grid.Grid, src Source) Found {
	found, _ := ScanContext(context.Background(), g, src)
	return found
}

// ScanContext is Scan with cancellation between words. A single word's search is never
// interrupted. On cancellation the words found so far are returned with ctx.Err().
func ScanContext(ctx context.Context, g *grid.Grid, src Source) (Found, error) {
	found := Found{}
	seen := make(map[string]struct{})
	for _, w := range src.Words() {
		if err := ctx.Err(); err != nil {
			return found, err
		}
		w = letters.Normalize(w)
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		if g.Contains(w) {
			n := utf8.RuneCountInString(w)
			found[n] = append(found[n], w)
		}
	}
	return found, nil
}

// Lengths returns the word lengths present, ascending.
func (f Found) Lengths() []int {
	out := make([]int, 0, len(f))
	for n := range f {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Total is the number of words across all lengths.
func (f Found) Total() int {
	total := 0
	for _, ws := range f {
		total += len(ws)
	}
	return total
}

// Sorted returns a copy with every group sorted.
func (f Found) Sorted() Found {
	out := make(Found, len(f))
	for n, ws := range f {
		cp := append([]string(nil), ws...)
		sort.Strings(cp)
		out[n] = cp
	}
	return out
}
