package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "data/mockData.csv", cfg.DataPath)
	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.Equal(t, "auto", cfg.Graphics)
	assert.Equal(t, "crease_debug.log", cfg.LogFile)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CREASE_DATA", "match.csv")
	t.Setenv("CREASE_TICK_INTERVAL", "250ms")
	t.Setenv("CREASE_SEED", "42")
	t.Setenv("CREASE_GRAPHICS", "none")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "match.csv", cfg.DataPath)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "none", cfg.Graphics)
}

func TestLoadFromDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CREASE_DB=archive.db\n"), 0644))
	t.Setenv("CREASE_DB", "")
	os.Unsetenv("CREASE_DB")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "archive.db", cfg.DatabasePath)
	os.Unsetenv("CREASE_DB")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{DataPath: "a.csv", TickInterval: time.Second, Graphics: "auto"}, false},
		{"no source", Config{TickInterval: time.Second, Graphics: "auto"}, true},
		{"zero tick", Config{DataPath: "a.csv", Graphics: "auto"}, true},
		{"bad graphics", Config{DataPath: "a.csv", TickInterval: time.Second, Graphics: "braille"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
