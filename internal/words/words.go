// internal/words/words.go
//
// Dictionary management for the game engine.
//
// Responsibilities:
//   - Load a newline-delimited word file (or the embedded default) into memory.
//   - Normalize every entry to uppercase so lookups are case-insensitive.
//   - Answer membership queries and pick uniformly random answers.
//
// A List is immutable after construction and safe for concurrent use.
// Construction fails with ErrEmptyList when no usable entry remains, so an
// engine can never be built on top of an empty dictionary.
package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/Tsuyopon-1067/tauri-wordle/assets"
)

// ErrEmptyList is returned when a dictionary has no usable words.
var ErrEmptyList = errors.New("words: word list is empty")

// LoadError reports a word source that could not be read.
type LoadError struct {
	Path string // file path, or "embedded" / "reader"
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("words: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// List is an immutable set of uppercase words.
type List struct {
	words []string            // distinct words, first-seen order
	set   map[string]struct{} // lookup index over words
}

// Normalize uppercases s. It does not trim: a padded guess keeps its
// extra runes and fails the length check.
func Normalize(s string) string {
	return strings.ToUpper(s)
}

// New reads one word per line from r.
// Each line is trimmed before use. Blank lines and duplicates are dropped.
func New(r io.Reader) (*List, error) {
	return read("reader", r)
}

// Load reads the word file at path.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	return read(path, f)
}

// Default loads the dictionary embedded in the binary.
func Default() (*List, error) {
	f, err := assets.WordList()
	if err != nil {
		return nil, &LoadError{Path: "embedded", Err: err}
	}
	defer f.Close()
	return read("embedded", f)
}

func read(name string, r io.Reader) (*List, error) {
	l := &List{set: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := Normalize(strings.TrimSpace(sc.Text()))
		if w == "" {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	if len(l.words) == 0 {
		return nil, ErrEmptyList
	}
	return l, nil
}

// Contains reports whether word is in the list, ignoring case.
func (l *List) Contains(word string) bool {
	_, ok := l.set[Normalize(word)]
	return ok
}

// RandomWord returns a cryptographically random word from the list.
func (l *List) RandomWord() (string, error) {
	if len(l.words) == 0 {
		return "", ErrEmptyList
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return "", fmt.Errorf("words: random index: %w", err)
	}
	return l.words[n.Int64()], nil
}

// Len returns the number of distinct words.
func (l *List) Len() int { return len(l.words) }
