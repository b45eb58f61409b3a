// internal/render/render.go
//
// Terminal presentation: the grid as colored tiles and found words grouped by length.
// Color can be turned off for pipes and tests; the text is identical either way.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/robalobadob/wordhunt/internal/grid"
	"github.com/robalobadob/wordhunt/internal/hunt"
	"github.com/robalobadob/wordhunt/internal/letters"
)

// Renderer writes human-readable output to w.
type Renderer struct {
	w io.Writer

	title, rule, prompt, tile, heading, word, ok, bad *color.Color
}

// New returns a Renderer. With useColor false, no escape codes are written.
func New(w io.Writer, useColor bool) *Renderer {
	r := &Renderer{
		w:       w,
		title:   color.New(color.FgCyan, color.Bold),
		rule:    color.New(color.FgCyan),
		prompt:  color.New(color.FgMagenta),
		tile:    color.New(color.BgBlue, color.FgWhite),
		heading: color.New(color.FgYellow),
		word:    color.New(color.FgCyan, color.Bold),
		ok:      color.New(color.FgGreen),
		bad:     color.New(color.FgRed),
	}
	for _, c := range []*color.Color{r.title, r.rule, r.prompt, r.tile, r.heading, r.word, r.ok, r.bad} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Banner prints the program title and dictionary size.
func (r *Renderer) Banner(dictLen int) {
	r.title.Fprintln(r.w, "Azerbaijani 4x4 Word Hunter")
	r.rule.Fprintln(r.w, strings.Repeat("=", 40))
	r.ok.Fprintf(r.w, "%d words loaded\n", dictLen)
}

// Prompt asks for the next grid.
func (r *Renderer) Prompt() {
	r.prompt.Fprintf(r.w, "\nEnter %d letters (or 'q' to quit):\n", grid.Cells)
	r.heading.Fprint(r.w, "-> ")
}

// Grid prints the grid as upper-cased tiles.
func (r *Renderer) Grid(g *grid.Grid) {
	r.heading.Fprintln(r.w, "\nGrid:")
	for _, row := range g.Rows() {
		tiles := make([]string, len(row))
		for i, c := range row {
			tiles[i] = r.tile.Sprint(" " + letters.Upper(c) + " ")
		}
		fmt.Fprintf(r.w, "  %s\n", strings.Join(tiles, " "))
	}
}

// Trace prints the grid with the cells spelling word bracketed and lists the path.
// It reports false when the word cannot be traced.
func (r *Renderer) Trace(g *grid.Grid, word string) bool {
	w := letters.Normalize(word)
	path := g.Path(w)
	if path == nil {
		r.bad.Fprintf(r.w, "\n%q is not in the grid\n", word)
		return false
	}
	step := make(map[grid.Cell]int, len(path))
	for i, c := range path {
		step[c] = i + 1
	}

	r.heading.Fprintf(r.w, "\n%s:\n", w)
	for i, row := range g.Rows() {
		tiles := make([]string, len(row))
		for j, c := range row {
			if _, ok := step[grid.Cell{Row: i, Col: j}]; ok {
				tiles[j] = r.word.Sprint("[" + letters.Upper(c) + "]")
			} else {
				tiles[j] = r.tile.Sprint(" " + letters.Upper(c) + " ")
			}
		}
		fmt.Fprintf(r.w, "  %s\n", strings.Join(tiles, " "))
	}
	hops := make([]string, len(path))
	for i, c := range path {
		hops[i] = fmt.Sprintf("(%d,%d)", c.Row+1, c.Col+1)
	}
	fmt.Fprintf(r.w, "  %s\n", strings.Join(hops, " -> "))
	return true
}

// Found prints the total and each length group, shortest first, words sorted.
func (r *Renderer) Found(f hunt.Found) {
	if f.Total() == 0 {
		r.NoWords()
		return
	}
	sorted := f.Sorted()
	r.ok.Fprintf(r.w, "\nWords found: %d\n", f.Total())
	r.rule.Fprintln(r.w, strings.Repeat("-", 30))
	for _, n := range sorted.Lengths() {
		ws := sorted[n]
		r.heading.Fprintf(r.w, "\n%d letters (%d): ", n, len(ws))
		r.word.Fprintln(r.w, strings.Join(ws, ", "))
	}
}

// NoWords reports an empty result. This is not an error.
func (r *Renderer) NoWords() {
	r.bad.Fprintln(r.w, "\nNo words found!")
}

// InvalidCount tells the user how many letters were read and what is needed.
func (r *Renderer) InvalidCount(got int) {
	r.bad.Fprintf(r.w, "Need exactly %d letters, got %d. Try again.\n", grid.Cells, got)
}

// Goodbye ends an interactive session.
func (r *Renderer) Goodbye() {
	r.ok.Fprintln(r.w, "Goodbye!")
}
