package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"quark"}, args...)
}

func TestLoadDefaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	require.Equal(t, "http://localhost:5000/api", cfg.ServerBaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, "downloads", cfg.DownloadDir)
	require.Equal(t, "quark-session.db", cfg.SessionDBPath)
}

func TestFlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-a", "https://papers.example.com/api", "-t", "5", "-d", "dl", "-s", "state.db")

	cfg := LoadConfig()
	require.Equal(t, "https://papers.example.com/api", cfg.ServerBaseURL)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	require.Equal(t, "dl", cfg.DownloadDir)
	require.Equal(t, "state.db", cfg.SessionDBPath)
}

func TestJSONConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server_base_url": "https://papers.example.com/api",
		"request_timeout": "10s"
	}`), 0o600))
	withArgs(t, "-c", path)

	cfg := LoadConfig()
	require.Equal(t, "https://papers.example.com/api", cfg.ServerBaseURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	// fields absent from the file keep their defaults
	require.Equal(t, "downloads", cfg.DownloadDir)
}

func TestFlagsWinOverJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"download_dir": "from-json"}`), 0o600))
	withArgs(t, "-c", path, "-d", "from-flag")

	cfg := LoadConfig()
	require.Equal(t, "from-flag", cfg.DownloadDir)
}
