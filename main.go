package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Tsuyopon-1067/tauri-wordle/internal/config"
	"github.com/Tsuyopon-1067/tauri-wordle/internal/game"
	"github.com/Tsuyopon-1067/tauri-wordle/internal/httpserver"
	"github.com/Tsuyopon-1067/tauri-wordle/internal/store"
)

func main() {
	cfg := config.Load()
	config.SetupLogging(cfg, os.Stderr)

	dict, err := cfg.WordList()
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.WordsFile).Msg("failed to load word list")
	}

	rounds := store.NewMemoryStore()
	eng, err := game.New(dict, game.WithRecorder(rounds))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}

	srv := httpserver.New(eng, dict, rounds, httpserver.Options{
		ClientOrigin: cfg.ClientOrigin,
		Timeout:      cfg.RequestTimeout,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("port", cfg.Port).Int("words", dict.Len()).Msg("starting wordle server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
