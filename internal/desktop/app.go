// Package desktop exposes the game engine to the desktop shell.
//
// App is bound into the Wails runtime; each exported method becomes a
// command the UI can call, and its return values are serialized to JSON.
package desktop

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Tsuyopon-1067/tauri-wordle/internal/game"
	"github.com/Tsuyopon-1067/tauri-wordle/internal/store"
)

// App is the command surface of the desktop UI.
type App struct {
	ctx    context.Context
	engine *game.Engine
	rounds store.Store
}

// New binds an existing engine and round log.
func New(eng *game.Engine, rounds store.Store) *App {
	return &App{engine: eng, rounds: rounds}
}

// Startup is called by the shell once the window is created.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	log.Info().Str("round", a.engine.State().RoundID).Msg("desktop app started")
}

// Greet returns a greeting for name.
func (a *App) Greet(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// GetWord reveals the current answer.
func (a *App) GetWord() string {
	return a.engine.Answer()
}

// CheckWord submits a guess.
func (a *App) CheckWord(word string) game.Result {
	return a.engine.Evaluate(word)
}

// Reset starts a new round.
func (a *App) Reset() (game.Result, error) {
	res, err := a.engine.Reset()
	if err != nil {
		log.Error().Err(err).Msg("reset game")
		return game.Result{}, err
	}
	return res, nil
}

// State returns the full round snapshot.
func (a *App) State() game.State {
	return a.engine.State()
}

// Rounds lists finished rounds, most recent first.
func (a *App) Rounds(limit int) ([]game.Round, error) {
	return a.rounds.List(a.context(), limit)
}

func (a *App) context() context.Context {
	if a.ctx == nil {
		return context.Background()
	}
	return a.ctx
}
