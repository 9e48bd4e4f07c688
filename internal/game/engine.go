// internal/game/engine.go
//
// Game engine for the single active round of a process.
// Responsibilities:
//   - Pick an answer from the dictionary and start rounds (New, Reset).
//   - Validate and score guesses (Evaluate).
//   - Track state transitions: active → won / attempts exhausted.
//
// Notes:
//   - Every method takes the engine mutex, so guesses are applied one at a time
//     and the row index always equals the guess number.
//   - Rejected guesses are not errors; they return Accepted=false and leave
//     the round untouched.
//   - Present is a membership check over the whole answer. A guess repeating a
//     letter the answer holds once marks every non-matching copy Present.
package game

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Tsuyopon-1067/tauri-wordle/internal/words"
)

// ErrUnknownAnswer is returned by NewWithAnswer for a word outside the dictionary.
var ErrUnknownAnswer = errors.New("game: answer is not in the word list")

// Engine owns the current round. The zero value is not usable; see New.
type Engine struct {
	mu        sync.Mutex
	dict      Dictionary
	recorder  Recorder
	now       func() time.Time
	roundID   string
	answer    string
	rows      []Row
	won       bool
	startedAt time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithRecorder sends every finished round to r.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// WithClock overrides the time source used for round timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New starts an engine with a random answer drawn from dict.
func New(dict Dictionary, opts ...Option) (*Engine, error) {
	answer, err := dict.RandomWord()
	if err != nil {
		return nil, err
	}
	return newEngine(dict, answer, opts), nil
}

// NewWithAnswer starts an engine with a fixed answer, which must be in dict.
func NewWithAnswer(dict Dictionary, answer string, opts ...Option) (*Engine, error) {
	if !dict.Contains(answer) {
		return nil, ErrUnknownAnswer
	}
	return newEngine(dict, answer, opts), nil
}

func newEngine(dict Dictionary, answer string, opts []Option) *Engine {
	e := &Engine{dict: dict, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	e.startRound(answer)
	return e
}

// startRound must be called with e.mu held (or before e is shared).
func (e *Engine) startRound(answer string) {
	e.roundID = uuid.NewString()
	e.answer = words.Normalize(answer)
	e.rows = nil
	e.won = false
	e.startedAt = e.now()
}

// Evaluate scores word against the answer and appends it to the history.
//
// The guess is rejected, leaving the round unchanged, when:
//   - its length differs from the answer,
//   - it is not in the dictionary,
//   - the round is already won,
//   - MaxAttempts guesses have been made.
func (e *Engine) Evaluate(word string) Result {
	word = words.Normalize(word)

	e.mu.Lock()
	if reason := e.rejection(word); reason != "" {
		res := Result{Rows: e.snapshotRows(), Accepted: false}
		e.mu.Unlock()
		log.Debug().Str("guess", word).Str("reason", reason).Msg("guess rejected")
		return res
	}

	row := score(e.answer, word)
	e.rows = append(e.rows, row)
	if word == e.answer {
		e.won = true
	}
	res := Result{Rows: e.snapshotRows(), Accepted: true}
	var finished *Round
	if e.finished() {
		finished = e.round()
	}
	e.mu.Unlock()

	if finished != nil {
		e.record(finished)
	}
	return res
}

func (e *Engine) rejection(word string) string {
	switch {
	case utf8.RuneCountInString(word) != utf8.RuneCountInString(e.answer):
		return "length"
	case !e.dict.Contains(word):
		return "not in word list"
	case e.won:
		return "already won"
	case len(e.rows) >= MaxAttempts:
		return "no attempts left"
	}
	return ""
}

// score assumes guess and answer have the same number of runes.
func score(answer, guess string) Row {
	a := []rune(answer)
	row := make(Row, 0, len(a))
	for i, c := range []rune(guess) {
		status := StatusAbsent
		switch {
		case c == a[i]:
			status = StatusCorrect
		case strings.ContainsRune(answer, c):
			status = StatusPresent
		}
		row = append(row, Letter{Letter: string(c), Status: status})
	}
	return row
}

// Reset starts a new round with a fresh random answer.
func (e *Engine) Reset() (Result, error) {
	answer, err := e.dict.RandomWord()
	if err != nil {
		return Result{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.startRound(answer)
	log.Debug().Str("round", e.roundID).Msg("round reset")
	return Result{Rows: []Row{}, Accepted: true}, nil
}

// Answer returns the current answer.
func (e *Engine) Answer() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.answer
}

// Finished reports whether the round is won or out of attempts.
func (e *Engine) Finished() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.finished()
}

func (e *Engine) finished() bool {
	return e.won || len(e.rows) >= MaxAttempts
}

// State returns a copy of the current round.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return State{
		RoundID:  e.roundID,
		Answer:   e.answer,
		Rows:     e.snapshotRows(),
		Won:      e.won,
		Finished: e.finished(),
	}
}

// snapshotRows deep-copies the history so callers can serialize it
// after the lock is released.
func (e *Engine) snapshotRows() []Row {
	out := make([]Row, len(e.rows))
	for i, r := range e.rows {
		out[i] = append(Row(nil), r...)
	}
	return out
}

func (e *Engine) round() *Round {
	guesses := make([]string, len(e.rows))
	for i, r := range e.rows {
		guesses[i] = r.Word()
	}
	return &Round{
		ID:         e.roundID,
		Answer:     e.answer,
		Guesses:    guesses,
		Won:        e.won,
		StartedAt:  e.startedAt,
		FinishedAt: e.now(),
	}
}

func (e *Engine) record(r *Round) {
	log.Info().Str("round", r.ID).Bool("won", r.Won).Int("attempts", r.Attempts()).Msg("round finished")
	if e.recorder == nil {
		return
	}
	if err := e.recorder.Save(context.Background(), r); err != nil {
		log.Warn().Err(err).Str("round", r.ID).Msg("record round")
	}
}
