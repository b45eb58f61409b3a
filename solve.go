package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordhunt/internal/grid"
	"github.com/robalobadob/wordhunt/internal/hunt"
	"github.com/robalobadob/wordhunt/internal/letters"
	"github.com/robalobadob/wordhunt/internal/render"
)

var (
	solveJSON bool
	solveShow []string
)

var solveCmd = &cobra.Command{
	Use:   "solve <letters...>",
	Short: "Solve a single grid given as 16 letters",
	Long:  "Solve a single grid. Letters may be split across arguments; non-letters are ignored.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "print the result as JSON")
	solveCmd.Flags().StringSliceVar(&solveShow, "show", nil, "highlight the path of a word in the grid (repeatable)")
}

type solveOutput struct {
	Letters string     `json:"letters"`
	Found   hunt.Found `json:"found"`
	Total   int        `json:"total"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")
	g, err := grid.New(input)
	if errors.Is(err, grid.ErrInvalidLetterCount) {
		return fmt.Errorf("need exactly %d letters, got %d", grid.Cells, letters.Count(input))
	}

	dict, err := loadDictionary()
	if err != nil {
		return err
	}
	found := hunt.Scan(g, dict).Sorted()

	if solveJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(solveOutput{Letters: g.Letters(), Found: found, Total: found.Total()})
	}
	r := render.New(cmd.OutOrStdout(), useColor())
	r.Grid(g)
	r.Found(found)
	for _, w := range solveShow {
		r.Trace(g, w)
	}
	return nil
}
