package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "logs.txt")

	logger, err := New(path)
	require.NoError(t, err)

	logger.Info("test-entry")
	logger.Warn("warn-entry")
	_ = logger.Sync()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.True(t, strings.Contains(string(content), "test-entry"))
	assert.True(t, strings.Contains(string(content), "INFO"))
	assert.True(t, strings.Contains(string(content), "warn-entry"))
	assert.True(t, strings.Contains(string(content), "WARN"))
}

func TestNew_AppendsAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.txt")

	logger, err := New(path)
	require.NoError(t, err)
	logger.Info("first-run")
	_ = logger.Sync()

	logger, err = New(path)
	require.NoError(t, err)
	logger.Info("second-run")
	_ = logger.Sync()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.True(t, strings.Contains(string(content), "first-run"))
	assert.True(t, strings.Contains(string(content), "second-run"))
}
