package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvcalc/internal/logging"
)

func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New(logging.Config{Level: "chatty"})
	assert.Error(t, err)
}

// TestNew_JSONToFile checks the production encoder keys and level filtering.
func TestNew_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvcalc.log")
	logger, err := logging.New(logging.Config{Level: "warn", OutputPaths: []string{path}})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("parse failed")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"message":"parse failed"`)
	assert.Contains(t, out, `"level":"warn"`)
	assert.NotContains(t, out, "hidden")
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, "warn", logging.DefaultConfig().Level)
	assert.True(t, logging.DevelopmentConfig().Development)
	assert.NotNil(t, logging.NewDefault())
	assert.NotNil(t, logging.NewDevelopment())
}

func TestNewTo_Writer(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewTo(logging.Config{Level: "debug"}, &buf)
	require.NoError(t, err)

	logger.Debug("evaluation fallbacks", zap.Int("undefined", 3))
	assert.Contains(t, buf.String(), `"undefined":3`)
	assert.Contains(t, buf.String(), `"level":"debug"`)

	_, err = logging.NewTo(logging.Config{Level: "loud"}, &buf)
	assert.Error(t, err)
}
