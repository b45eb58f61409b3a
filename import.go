package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordhunt/internal/dictdb"
	"github.com/robalobadob/wordhunt/internal/words"
)

var importCmd = &cobra.Command{
	Use:   "import <source> <database>",
	Short: "Import a word list into a SQLite dictionary",
	Long: "Reads a word list (.xlsx, .csv, .txt or another .db), normalizes it, and adds the\n" +
		"words to a SQLite dictionary that --dict can load later.",
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	src, dst := args[0], args[1]

	dict, err := words.Load(src)
	if err != nil {
		return err
	}

	st, err := dictdb.Open(dst)
	if err != nil {
		return fmt.Errorf("open %s: %w", dst, err)
	}
	defer st.Close()

	added, err := st.Import(cmd.Context(), dict.Words())
	if err != nil {
		return err
	}
	total, err := st.Count(cmd.Context())
	if err != nil {
		return err
	}

	log.Info().Str("source", src).Int("read", dict.Len()).Int("added", added).Int("total", total).Msg("import done")
	fmt.Fprintf(cmd.OutOrStdout(), "%d new words (%d in %s)\n", added, total, dst)
	return nil
}
