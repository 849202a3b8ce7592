package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/freeze/internal/adapters/fs"
)

func TestHasher_HashFile(t *testing.T) {
	tmpDir := t.TempDir()
	hasher := fs.NewHasher()
	path := filepath.Join(tmpDir, "app.exe")

	require.NoError(t, os.WriteFile(path, []byte("first build"), 0o600))
	first, err := hasher.HashFile(path)
	require.NoError(t, err)
	assert.Len(t, first, 16)

	again, err := hasher.HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	require.NoError(t, os.WriteFile(path, []byte("second build"), 0o600))
	second, err := hasher.HashFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestHasher_HashFile_Missing(t *testing.T) {
	hasher := fs.NewHasher()

	hash, err := hasher.HashFile(filepath.Join(t.TempDir(), "none"))
	require.NoError(t, err)
	assert.Empty(t, hash)
}
