// internal/httpserver/server.go
//
// HTTP command layer for the game engine.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Game endpoints: GET /game/answer, POST /game/guess, POST /game/reset, GET /game/state.
//   - Round log: GET /rounds.
//   - Debug: GET /debug/words, GET /debug/board.
//
// Notes:
//   - The server holds the process's single *game.Engine; it never creates one.
//   - A rejected guess is a normal 200 response with "accepted": false.
//   - CORS is origin-aware and limited to one configured origin.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Tsuyopon-1067/tauri-wordle/internal/game"
	"github.com/Tsuyopon-1067/tauri-wordle/internal/store"
)

// WordCounter reports the dictionary size for diagnostics.
type WordCounter interface {
	Len() int
}

// Options tune middleware behavior.
type Options struct {
	ClientOrigin string        // allowed CORS origin
	Timeout      time.Duration // per-request handler timeout
}

// Server bundles the router, the engine, and the round log.
type Server struct {
	r      *chi.Mux
	engine *game.Engine
	words  WordCounter
	rounds store.Store

	mu   sync.Mutex // guards http
	http *http.Server
}

// New constructs a Server, installs middleware, and registers routes.
func New(eng *game.Engine, words WordCounter, rounds store.Store, opts Options) *Server {
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	s := &Server{r: chi.NewRouter(), engine: eng, words: words, rounds: rounds}

	// --- middleware ---
	s.r.Use(chimw.RequestID)             // add X-Request-ID
	s.r.Use(chimw.RealIP)                // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)               // one log line per request
	s.r.Use(chimw.Recoverer)             // recover from panics
	s.r.Use(chimw.Timeout(opts.Timeout)) // bound handler time
	s.r.Use(jsonContentType)             // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))     // single-origin CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle","endpoints":["/health","GET /game/answer","POST /game/guess","POST /game/reset","GET /game/state","GET /rounds"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Route("/game", func(r chi.Router) {
		r.Get("/answer", s.handleAnswer)
		r.Post("/guess", s.handleGuess)
		r.Post("/reset", s.handleReset)
		r.Get("/state", s.handleState)
	})
	s.r.Get("/rounds", s.handleRounds)

	s.r.Route("/debug", func(r chi.Router) {
		r.Get("/words", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]int{"words": s.words.Len()})
		})
		r.Get("/board", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte(s.engine.State().String()))
		})
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start serves HTTP on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	s.mu.Lock()
	s.http = hs
	s.mu.Unlock()
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops a server started with Start.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	hs := s.http
	s.mu.Unlock()
	if hs == nil {
		return nil
	}
	return hs.Shutdown(ctx)
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger writes a zerolog debug line for every request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// writeError writes {"error": code} with the given status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

// ------------------------------ GAME ---------------------------------------

type answerRes struct {
	Answer string `json:"answer"`
}

// handleAnswer reveals the current answer.
func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(answerRes{Answer: s.engine.Answer()})
}

// guessReq is the payload for POST /game/guess.
type guessReq struct {
	Word string `json:"word"`
}

// handleGuess evaluates a guess. Rejections are reported in the body, not the status.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	_ = json.NewEncoder(w).Encode(s.engine.Evaluate(req.Word))
}

// handleReset starts a new round.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	res, err := s.engine.Reset()
	if err != nil {
		log.Error().Err(err).Msg("reset game")
		writeError(w, http.StatusInternalServerError, "reset_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// handleState returns the full round snapshot.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(s.engine.State())
}

// roundsRes is returned by GET /rounds.
type roundsRes struct {
	Summary store.Summary `json:"summary"`
	Rounds  []game.Round  `json:"rounds"`
}

// handleRounds lists finished rounds, most recent first (?limit=N, default 50).
func (s *Server) handleRounds(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "bad_limit")
			return
		}
		limit = n
	}
	rounds, err := s.rounds.List(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("list rounds")
		writeError(w, http.StatusInternalServerError, "store_error")
		return
	}
	sum, err := store.Summarize(r.Context(), s.rounds)
	if err != nil {
		log.Error().Err(err).Msg("summarize rounds")
		writeError(w, http.StatusInternalServerError, "store_error")
		return
	}
	_ = json.NewEncoder(w).Encode(roundsRes{Summary: sum, Rounds: rounds})
}
