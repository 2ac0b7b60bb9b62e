package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseJson(t *testing.T) {
	t.Run("overlays only present keys", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"identity_provider": "firebase",
			"firebase_api_key":  "AIza-test",
			"http_timeout":      2500000000,
		})

		cfg := defaults()
		require.NoError(t, parseJson(cfg, []string{"-config", path}))

		assert.Equal(t, IdentityFirebase, cfg.IdentityProvider)
		assert.Equal(t, "AIza-test", cfg.FirebaseAPIKey)
		assert.Equal(t, 2500*time.Millisecond, cfg.HTTPTimeout)
		assert.Equal(t, "perono.db", cfg.DBFile)
		assert.Equal(t, "user", cfg.MongoCollection)
	})

	t.Run("no config flag leaves config untouched", func(t *testing.T) {
		cfg := &Config{DataDir: "keep"}
		require.NoError(t, parseJson(cfg, []string{"-l", "debug"}))
		assert.Equal(t, &Config{DataDir: "keep"}, cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		err := parseJson(defaults(), []string{"-c", filepath.Join(t.TempDir(), "nope.json")})
		require.ErrorContains(t, err, "read config")
	})

	t.Run("invalid json", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))

		err := parseJson(defaults(), []string{"-c", bad})
		require.ErrorContains(t, err, "parse config")
	})

	t.Run("invalid duration", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{"http_timeout": "soonish"})
		err := parseJson(defaults(), []string{"-c", path})
		require.ErrorContains(t, err, "invalid duration")
	})
}
