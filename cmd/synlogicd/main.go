package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/fyerfyer/synlogic"
	"github.com/fyerfyer/synlogic/pkg/api"
	"github.com/fyerfyer/synlogic/pkg/logger"
)

func main() {
	// Flags take precedence over environment variables
	addr := flag.String("addr", envOr("SYNLOGIC_ADDR", ":8000"), "listen address")
	maxInputs := flag.Int("max-inputs", envOrInt("SYNLOGIC_MAX_INPUTS", api.DefaultMaxInputs),
		"maximum declared inputs accepted on the truth-table endpoint")
	verbose := flag.Bool("verbose", false, "debug logging")
	quiet := flag.Bool("quiet", false, "errors only")
	flag.Parse()

	switch {
	case *verbose:
		logger.SetLevel(zerolog.DebugLevel)
	case *quiet:
		logger.SetLevel(zerolog.ErrorLevel)
	}
	log := logger.Component("synlogicd")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := api.NewServer(api.Config{Addr: *addr, MaxInputs: *maxInputs}, log)

	log.Info().Str("version", synlogic.Version.String()).Msg("starting synlogicd")
	if err := srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("synlogicd stopped")
}

// envOr returns the environment value for key, or fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envOrInt is envOr for integer settings; unparsable values fall back.
func envOrInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
