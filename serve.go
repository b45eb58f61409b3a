package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordhunt/internal/httpserver"
	"github.com/robalobadob/wordhunt/internal/reload"
	"github.com/robalobadob/wordhunt/internal/store"
)

var (
	serveAddr    string
	serveWatch   bool
	cacheSize    int
	serveTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP solve API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":"+getEnv("PORT", "5175"), "listen address")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "reload the --dict file when it changes")
	serveCmd.Flags().IntVar(&cacheSize, "cache-size", getEnvInt("CACHE_SIZE", store.DefaultLimit), "solved grids kept in memory")
	serveCmd.Flags().DurationVar(&serveTimeout, "timeout", 10*time.Second, "per-request time budget")
}

func runServe(cmd *cobra.Command, args []string) error {
	dict, err := loadDictionary()
	if err != nil {
		return err
	}

	srv := httpserver.New(dict, store.NewMemoryStore(cacheSize), httpserver.Config{
		JWTSecret: getEnv("JWT_SECRET", ""),
		DailySalt: getEnv("DAILY_SALT", "local_dev_salt"),
		Timeout:   serveTimeout,
	})

	if serveWatch {
		if dictPath == "" {
			log.Warn().Msg("--watch ignored: no --dict file to watch")
		} else {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go func() {
				if err := reload.Watch(ctx, dictPath, 0, srv.SetDictionary); err != nil {
					log.Error().Err(err).Msg("dictionary watcher stopped")
				}
			}()
		}
	}

	log.Info().Str("addr", serveAddr).Msg("starting wordhunt server")
	return srv.Start(serveAddr)
}
