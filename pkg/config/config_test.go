package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pong.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
tps = 120
seed = 99
session_name = "practice"
sound = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		LogLevel:      "debug",
		TPS:           120,
		Seed:          99,
		SessionName:   "practice",
		Sound:         true,
		MoveHoldTicks: 8,
	}, cfg)
}

func TestLoad_FromEnv(t *testing.T) {
	path := writeConfig(t, `tps = 30`)
	t.Setenv(ConfigPathEnv, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TPS)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{name: "malformed", contents: `tps = `, wantErr: "failed to decode"},
		{name: "bad level", contents: `log_level = "loud"`, wantErr: "unknown log level"},
		{name: "bad tps", contents: `tps = 0`, wantErr: "tps must be greater than 0"},
		{name: "long name", contents: `session_name = "` + strings.Repeat("x", 33) + `"`, wantErr: "session_name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.contents))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
