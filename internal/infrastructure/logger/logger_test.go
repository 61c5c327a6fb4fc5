package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestForEnvironment(t *testing.T) {
	prod := ForEnvironment("production")
	assert.Equal(t, "json", prod.Format)
	assert.Equal(t, "info", prod.Level)

	dev := ForEnvironment("development")
	assert.Equal(t, "console", dev.Format)
	assert.Equal(t, "debug", dev.Level)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantErr   bool
		wantLevel zapcore.Level
	}{
		{"empty config defaults to info", Config{}, false, zapcore.InfoLevel},
		{"debug console", Config{Level: "debug", Format: "console"}, false, zapcore.DebugLevel},
		{"upper case level", Config{Level: "WARN"}, false, zapcore.WarnLevel},
		{"error to stderr", Config{Level: "error", Output: "stderr"}, false, zapcore.ErrorLevel},
		{"unknown level", Config{Level: "verbose"}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.wantLevel))
			assert.False(t, l.Core().Enabled(tt.wantLevel-1))
		})
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l, err := New(Config{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)
	l.Info("Server starting")
	require.NoError(t, Sync(l))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "Server starting", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "caller")
}

func TestNew_UnwritableOutput(t *testing.T) {
	_, err := New(Config{Output: filepath.Join(t.TempDir(), "missing", "app.log")})

	assert.ErrorContains(t, err, "failed to open log output")
}
