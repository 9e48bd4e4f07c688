// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Status: per-letter verdict of a guess (Correct/Present/Absent).
//   - Letter, Row: one evaluated guess.
//   - Result: response to a guess or reset, shaped for the UI.
//   - State: full snapshot of the current round.
//   - Round: record of a finished round, handed to a Recorder.

package game

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// MaxAttempts is the number of guesses allowed per round.
const MaxAttempts = 6

// Status is the evaluation of a single letter in a guess.
// The string values are the wire format seen by the UI.
type Status string

const (
	StatusCorrect Status = "Correct" // right letter, right position
	StatusPresent Status = "Present" // letter occurs somewhere in the answer
	StatusAbsent  Status = "Absent"  // letter does not occur in the answer
)

// Letter pairs a guessed letter with its verdict.
type Letter struct {
	Letter string `json:"letter"`
	Status Status `json:"status"`
}

// Row is one evaluated guess, one Letter per position of the answer.
type Row []Letter

// Word returns the guessed word the row was built from.
func (r Row) Word() string {
	var sb strings.Builder
	for _, l := range r {
		sb.WriteString(l.Letter)
	}
	return sb.String()
}

// Result is returned by Evaluate and Reset.
// Accepted is false when a guess was rejected; Rows is then the unchanged history.
type Result struct {
	Rows     []Row `json:"rows"`
	Accepted bool  `json:"accepted"`
}

// State is a snapshot of the current round.
type State struct {
	RoundID  string `json:"roundId"`
	Answer   string `json:"answer"`
	Rows     []Row  `json:"rows"`
	Won      bool   `json:"won"`
	Finished bool   `json:"finished"`
}

// String renders the board: (L) correct, [L] present, {L} absent.
func (s State) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Answer: %s\n", s.Answer)
	fmt.Fprintf(&sb, "Rows: %d/%d\n", len(s.Rows), MaxAttempts)
	for _, row := range s.Rows {
		for _, l := range row {
			switch l.Status {
			case StatusCorrect:
				fmt.Fprintf(&sb, "(%s) ", l.Letter)
			case StatusPresent:
				fmt.Fprintf(&sb, "[%s] ", l.Letter)
			default:
				fmt.Fprintf(&sb, "{%s} ", l.Letter)
			}
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Won: %t\n", s.Won)
	return sb.String()
}

// Round records a finished round.
type Round struct {
	ID         string    `json:"id"`
	Answer     string    `json:"answer"`
	Guesses    []string  `json:"guesses"`
	Won        bool      `json:"won"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Attempts is the number of guesses taken in the round.
func (r Round) Attempts() int { return len(r.Guesses) }

// Dictionary supplies valid words and random answers.
type Dictionary interface {
	Contains(word string) bool
	RandomWord() (string, error)
}

// Recorder receives rounds as they finish.
type Recorder interface {
	Save(ctx context.Context, r *Round) error
}
