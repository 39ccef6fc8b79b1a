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
	os.Args = append([]string{"testbin"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	require.Equal(t, "http://127.0.0.1:8080", cfg.GatewayBaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_Flags(t *testing.T) {
	withArgs(t, "-a", "http://gateway:9090", "-t", "5")

	cfg := LoadConfig()
	require.Equal(t, "http://gateway:9090", cfg.GatewayBaseURL)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_JSONOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"gateway_base_url": "http://json:8081",
		"request_timeout": "30s"
	}`), 0o600))

	withArgs(t, "-c", path)

	cfg := LoadConfig()
	require.Equal(t, "http://json:8081", cfg.GatewayBaseURL)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"gateway_base_url": "http://json:8081"}`), 0o600))

	withArgs(t, "-c", path, "-a", "http://flag:7070")

	cfg := LoadConfig()
	require.Equal(t, "http://flag:7070", cfg.GatewayBaseURL)
}
