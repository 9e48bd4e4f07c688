// internal/config/config.go
//
// Process configuration read from the environment.
// A .env file in the working directory is loaded first when present.
//
// Environment variables:
//   PORT=5175                          HTTP listen port
//   LOG_LEVEL=info                     zerolog level (trace|debug|info|warn|error)
//   WORDS_FILE=/path/to/word_list.txt  dictionary; empty uses the embedded list
//   CLIENT_ORIGIN=http://localhost:5173  single CORS origin
//   APP_ENV=development                "production" switches to JSON logs
//   REQUEST_TIMEOUT=10s                per-request handler timeout
package config

import (
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Tsuyopon-1067/tauri-wordle/internal/words"
)

// Config holds settings shared by the HTTP and desktop hosts.
type Config struct {
	Port           string
	LogLevel       string
	WordsFile      string
	ClientOrigin   string
	Env            string
	RequestTimeout time.Duration
}

// Load reads .env (if any) and the environment.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:           getEnv("PORT", "5175"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		WordsFile:      os.Getenv("WORDS_FILE"),
		ClientOrigin:   getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		Env:            getEnv("APP_ENV", "development"),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
	}
}

// Production reports whether the process runs in production mode.
func (c Config) Production() bool { return c.Env == "production" }

// WordList loads WORDS_FILE, or the embedded dictionary when it is unset.
func (c Config) WordList() (*words.List, error) {
	if c.WordsFile == "" {
		return words.Default()
	}
	return words.Load(c.WordsFile)
}

// SetupLogging configures the global zerolog logger.
// Output goes to w; outside production it is human-readable.
func SetupLogging(c Config, w io.Writer) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	if !c.Production() {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}
