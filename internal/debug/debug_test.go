package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInit_WritesEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")

	require.NoError(t, Init(path))
	Logger().Debug("layout pass", zap.String("control", "panel1"))
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), "layout pass"), "log should contain entry, got %q", data)
	require.True(t, strings.Contains(string(data), "panel1"))
}

func TestInit_EmptyPathIsNop(t *testing.T) {
	require.NoError(t, Init(""))
	require.NotNil(t, Logger())
	Logger().Debug("dropped")
	Set(nil)
	require.NotNil(t, Logger())
}
