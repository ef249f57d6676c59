package logger_test

import (
	"os"
	"path/filepath"
	"testing"
	"virtual_casino/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cfg struct {
	level string
	file  string
}

func (c cfg) Level() string  { return c.level }
func (c cfg) File() string   { return c.file }
func (c cfg) MaxSizeMB() int { return 1 }

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.New(cfg{level: "loud"})
	require.Error(t, err)
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "casino.log")

	l, err := logger.New(cfg{level: "info", file: path})
	require.NoError(t, err)

	l.Info("slot played")
	l.Debug("hidden")
	_ = l.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "slot played")
	assert.NotContains(t, string(raw), "hidden")
}
