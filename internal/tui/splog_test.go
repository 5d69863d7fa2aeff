package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplogQuiet(t *testing.T) {
	var buf bytes.Buffer
	splog := NewSplogWithWriter(&buf)

	splog.SetQuiet(true)
	splog.Info("hidden")
	splog.Newline()
	splog.Warn("still shown")

	require.Equal(t, "still shown\n", buf.String())

	splog.SetQuiet(false)
	splog.Info("visible again")
	require.Contains(t, buf.String(), "visible again")
}

func TestSplogDebugDisabledByDefault(t *testing.T) {
	t.Setenv("DEBUG", "")

	var buf bytes.Buffer
	splog := NewSplogWithWriter(&buf)

	splog.Debug("noise")
	require.Empty(t, buf.String())
}

func TestSplogFileLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "hubsync.log")

	splog, err := NewSplogWithConfig(logPath)
	require.NoError(t, err)

	splog.SetQuiet(true) // keep the console quiet, the file still gets everything
	splog.Info("recorded")
	require.NoError(t, splog.Close())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "recorded")
}

func TestLogFilePath(t *testing.T) {
	t.Run("honors the override", func(t *testing.T) {
		t.Setenv("HUBSYNC_LOG_FILE", "/tmp/custom.log")
		require.Equal(t, "/tmp/custom.log", LogFilePath())
	})

	t.Run("defaults under the home directory", func(t *testing.T) {
		t.Setenv("HUBSYNC_LOG_FILE", "")
		require.Contains(t, LogFilePath(), filepath.Join(".hubsync", "logs", "hubsync.log"))
	})
}
