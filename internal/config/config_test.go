package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Tsuyopon-1067/tauri-wordle/internal/words"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "LOG_LEVEL", "WORDS_FILE", "CLIENT_ORIGIN", "APP_ENV", "REQUEST_TIMEOUT"} {
		t.Setenv(k, "")
	}
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir which is unavailable before Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir()) // no .env here
	c := Load()
	want := Config{
		Port:           "5175",
		LogLevel:       "info",
		ClientOrigin:   "http://localhost:5173",
		Env:            "development",
		RequestTimeout: 10 * time.Second,
	}
	if c != want {
		t.Errorf("wanted %+v, got %+v", want, c)
	}
	if c.Production() {
		t.Error("default env should not be production")
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WORDS_FILE", "/tmp/words.txt")
	t.Setenv("APP_ENV", "production")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	c := Load()
	if c.Port != "9000" || c.LogLevel != "debug" || c.WordsFile != "/tmp/words.txt" {
		t.Errorf("unexpected config %+v", c)
	}
	if !c.Production() {
		t.Error("wanted production")
	}
	if c.RequestTimeout != 3*time.Second {
		t.Errorf("wanted 3s timeout, got %v", c.RequestTimeout)
	}
}

func TestLoadBadTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("REQUEST_TIMEOUT", "soon")
	if got := Load().RequestTimeout; got != 10*time.Second {
		t.Errorf("wanted default timeout, got %v", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=7777\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)
	os.Unsetenv("PORT") // godotenv never overrides variables that are already set
	if got := Load().Port; got != "7777" {
		t.Errorf("wanted port from .env, got %q", got)
	}
}

func TestWordList(t *testing.T) {
	l, err := Config{}.WordList()
	if err != nil {
		t.Fatalf("embedded list: %v", err)
	}
	if !l.Contains("APPLE") {
		t.Error("embedded list should contain APPLE")
	}

	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("zebra\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l, err = Config{WordsFile: path}.WordList()
	if err != nil {
		t.Fatalf("file list: %v", err)
	}
	if l.Len() != 1 || !l.Contains("zebra") {
		t.Errorf("unexpected list size %d", l.Len())
	}

	_, err = Config{WordsFile: filepath.Join(t.TempDir(), "missing")}.WordList()
	var le *words.LoadError
	if !errors.As(err, &le) {
		t.Errorf("wanted *words.LoadError, got %v", err)
	}
}

func TestSetupLogging(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)
	var buf bytes.Buffer
	SetupLogging(Config{LogLevel: "warn", Env: "production"}, &buf)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"message":"shown"`) {
		t.Errorf("unexpected log output %q", out)
	}

	buf.Reset()
	SetupLogging(Config{LogLevel: "bogus", Env: "production"}, &buf)
	if got := zerolog.GlobalLevel(); got != zerolog.InfoLevel {
		t.Errorf("wanted info level for bad input, got %v", got)
	}
}
