package iologger

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gngrades/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in  string
		res slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, parseLevel(v.in), v.in)
	}
}

func TestInitFile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	defer slog.SetDefault(slog.Default())

	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}
	closer, err := Init(dir, cfg, "run-1")
	require.NoError(t, err)

	slog.Info("merged gradebook", "rows", 4)
	slog.Debug("not written")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(data, &rec), "one json record")
	assert.Equal(t, "merged gradebook", rec["msg"])
	assert.Equal(t, "run-1", rec["run_id"])
	assert.Equal(t, 4.0, rec["rows"])
}

func TestInitBadDir(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	defer slog.SetDefault(slog.Default())

	cfg := config.LogConfig{Destination: "file"}
	closer, err := Init(filepath.Join(t.TempDir(), "missing"), cfg, "")
	assert.Error(t, err)
	assert.NotNil(t, closer)
}
