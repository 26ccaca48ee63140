package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("loads from json", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"server_endpoint_addr": "http://sync.example:8080",
			"database_path":        "custom.db",
		})
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "http://sync.example:8080", cfg.ServerEndpointAddr)
		assert.Equal(t, "custom.db", cfg.DatabasePath)
	})

	t.Run("empty fields leave values in place", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"database_path": "only.db",
		})
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{ServerEndpointAddr: "http://kept:8080", DatabasePath: "dropped.db"}
		parseJson(cfg)

		assert.Equal(t, "http://kept:8080", cfg.ServerEndpointAddr)
		assert.Equal(t, "only.db", cfg.DatabasePath)
	})

	t.Run("no config flag leaves config untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{ServerEndpointAddr: "http://kept:8080", DatabasePath: "kept.db"}
		parseJson(cfg)

		assert.Equal(t, "http://kept:8080", cfg.ServerEndpointAddr)
		assert.Equal(t, "kept.db", cfg.DatabasePath)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{ not json`), 0o600))
		os.Args = []string{"testbin", "-config", path}

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
