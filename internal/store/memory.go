// internal/store/memory.go
//
// In-memory log of finished rounds.
// Rounds live for the process lifetime only; nothing is written to disk.
//
// Characteristics:
//   - Stores *game.Round values keyed by round ID, plus insertion order.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Satisfies game.Recorder, so it can be handed to game.WithRecorder.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/Tsuyopon-1067/tauri-wordle/internal/game"
)

// ErrNotFound is returned by Get for an unknown round ID.
var ErrNotFound = errors.New("store: round not found")

// Store defines the interface for finished-round storage.
type Store interface {
	// Save adds or replaces a round.
	Save(ctx context.Context, r *game.Round) error

	// Get retrieves a round by ID.
	Get(ctx context.Context, id string) (*game.Round, error)

	// List returns up to limit rounds, most recent first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]game.Round, error)
}

// Summary holds pass/fail totals.
type Summary struct {
	Played int `json:"played"`
	Won    int `json:"won"`
}

// memory is a map-based Store implementation.
type memory struct {
	mu     sync.RWMutex
	rounds map[string]*game.Round
	order  []string // round IDs, oldest first
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{rounds: make(map[string]*game.Round)}
}

// Save stores a copy of r.
func (m *memory) Save(ctx context.Context, r *game.Round) error {
	if r == nil || r.ID == "" {
		return errors.New("store: round id required")
	}
	cp := copyRound(r)

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rounds[r.ID]; !ok {
		m.order = append(m.order, r.ID)
	}
	m.rounds[r.ID] = &cp
	return nil
}

// Get looks up a round by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rounds[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := copyRound(r)
	return &cp, nil
}

func (m *memory) List(ctx context.Context, limit int) ([]game.Round, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := len(m.order)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]game.Round, 0, n)
	for i := len(m.order) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, copyRound(m.rounds[m.order[i]]))
	}
	return out, nil
}

// copyRound returns r with its own Guesses slice.
func copyRound(r *game.Round) game.Round {
	cp := *r
	cp.Guesses = append([]string(nil), r.Guesses...)
	return cp
}

// Summarize counts played and won rounds in st.
func Summarize(ctx context.Context, st Store) (Summary, error) {
	rounds, err := st.List(ctx, 0)
	if err != nil {
		return Summary{}, err
	}
	var s Summary
	for _, r := range rounds {
		s.Played++
		if r.Won {
			s.Won++
		}
	}
	return s, nil
}
