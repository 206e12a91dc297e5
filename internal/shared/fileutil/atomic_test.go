package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reshetovitsme/slack-ngword-monitor/internal/shared/fileutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "state.json")

	require.NoError(t, fileutil.WriteAtomic(path, []byte("first"), 0o644))
	require.NoError(t, fileutil.WriteAtomic(path, []byte("second"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}
