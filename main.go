package main

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordhunt/internal/words"
)

var (
	dictPath string
	logLevel string
	noColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "wordhunt",
	Short: "Find every dictionary word hidden in a 4x4 letter grid",
	Long: "wordhunt traces dictionary words through a 4x4 grid of letters, moving between\n" +
		"adjacent cells (diagonals included) without reusing a cell.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		zerolog.SetGlobalLevel(lvl)
		return nil
	},
	RunE: runPlay,
}

func init() {
	// Before any flag default reads the environment. serve.go registers its flags in a later init.
	loadEnv()

	rootCmd.PersistentFlags().StringVar(&dictPath, "dict", getEnv("WORDS_FILE", ""),
		"dictionary file (.xlsx, .csv, .txt or .db); empty uses the built-in list")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", getEnv("LOG_LEVEL", "info"), "log level")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadDictionary reads --dict, or falls back to the embedded list.
func loadDictionary() (*words.Dictionary, error) {
	if dictPath == "" {
		d := words.Default()
		log.Debug().Int("words", d.Len()).Msg("using built-in dictionary")
		return d, nil
	}
	d, err := words.Load(dictPath)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", dictPath).Int("words", d.Len()).Msg("dictionary loaded")
	return d, nil
}

// useColor reports whether terminal colors should be written.
func useColor() bool {
	return !noColor && !color.NoColor
}

// loadEnv reads .env (or the given files) into the process environment. Missing files are fine.
func loadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("could not load env file")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(k)); err == nil {
		return n
	}
	return def
}
