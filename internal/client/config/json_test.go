package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"api_base_url":      "https://quotes.example",
		"session_db_path":   "/tmp/s.db",
		"request_timeout":   "3s",
		"post_registration": "alert",
		"log_level":         "debug",
	})
	nanos := writeTempJSON(t, dir, "nanos.json", map[string]any{
		"request_timeout": int64(2 * time.Second),
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", full}

		cfg := &Config{}
		parseJson(cfg)

		want := &Config{
			APIBaseURL:       "https://quotes.example",
			SessionDBPath:    "/tmp/s.db",
			RequestTimeout:   3 * time.Second,
			PostRegistration: "alert",
			LogLevel:         "debug",
		}
		assert.Empty(t, cmp.Diff(want, cfg))
	})

	t.Run("nanosecond durations", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", nanos}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "http://127.0.0.1:8000", cfg.APIBaseURL)
	})

	t.Run("no config flag, no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{APIBaseURL: "http://x", RequestTimeout: time.Second}
		parseJson(cfg)

		assert.Equal(t, "http://x", cfg.APIBaseURL)
		assert.Equal(t, time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
