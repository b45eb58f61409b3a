package main

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordhunt/internal/grid"
	"github.com/robalobadob/wordhunt/internal/hunt"
	"github.com/robalobadob/wordhunt/internal/letters"
	"github.com/robalobadob/wordhunt/internal/render"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive mode: enter grids one after another",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	dict, err := loadDictionary()
	if err != nil {
		return err
	}
	r := render.New(cmd.OutOrStdout(), useColor())
	r.Banner(dict.Len())
	return play(cmd.InOrStdin(), r, dict)
}

// play runs the prompt loop until "q" or end of input.
func play(in io.Reader, r *render.Renderer, dict hunt.Source) error {
	sc := bufio.NewScanner(in)
	for {
		r.Prompt()
		if !sc.Scan() {
			r.Goodbye()
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if strings.EqualFold(line, "q") {
			r.Goodbye()
			return nil
		}

		g, err := grid.New(line)
		if errors.Is(err, grid.ErrInvalidLetterCount) {
			r.InvalidCount(letters.Count(line))
			continue
		}
		log.Debug().Stringer("grid", g).Msg("solving")
		r.Grid(g)
		r.Found(hunt.Scan(g, dict))
	}
}
