package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "fixtkit.dev/pkg/fixtkit/internal/model"
)

func TestLocalFSAdapter_ReadFile(t *testing.T) {
	t.Run("returns file contents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "input.txt")
		require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

		data, err := NewLocalFSAdapter().ReadFile(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := NewLocalFSAdapter().ReadFile(m.Path(filepath.Join(t.TempDir(), "missing")))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("directory is rejected", func(t *testing.T) {
		_, err := NewLocalFSAdapter().ReadFile(m.Path(t.TempDir()))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is a directory")
	})
}

func TestLocalFSAdapter_WriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.yaml")

	adapter := NewLocalFSAdapter()
	require.NoError(t, adapter.WriteFile(m.Path(path), []byte("x: 1\n"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x: 1\n", string(data))

	info, err := adapter.FileInfo(m.Path(path))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(5), info.Size())
}
