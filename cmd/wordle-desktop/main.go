// Command wordle-desktop runs the game in a native window.
package main

import (
	"context"
	"embed"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/Tsuyopon-1067/tauri-wordle/internal/config"
	"github.com/Tsuyopon-1067/tauri-wordle/internal/desktop"
	"github.com/Tsuyopon-1067/tauri-wordle/internal/game"
	"github.com/Tsuyopon-1067/tauri-wordle/internal/store"
)

//go:embed all:frontend/dist
var assets embed.FS

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
	app := desktop.New(eng, rounds)

	log.Info().Int("words", dict.Len()).Msg("starting wordle-desktop")
	if err := wails.Run(&options.App{
		Title:            "Wordle",
		Width:            480,
		Height:           720,
		MinWidth:         360,
		MinHeight:        600,
		BackgroundColour: &options.RGBA{R: 18, G: 18, B: 19, A: 255},
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		OnStartup: app.Startup,
		OnShutdown: func(ctx context.Context) {
			log.Info().Msg("application shutdown complete")
		},
		Bind:               []interface{}{app},
		LogLevel:           logger.INFO,
		LogLevelProduction: logger.ERROR,
		ErrorFormatter: func(err error) any {
			if err == nil {
				return nil
			}
			return err.Error()
		},
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId: "3f2b9a4e-wordle-desktop",
		},
	}); err != nil {
		log.Fatal().Err(err).Msg("wails exited")
	}
}
