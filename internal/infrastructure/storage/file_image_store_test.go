package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "ring-inspector/internal/errors"
)

func TestFileImageStore_ListExpandsDirectories(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.JPG", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.png"), 0o755))
	single := filepath.Join(t.TempDir(), "single.bmp")
	require.NoError(t, os.WriteFile(single, []byte("x"), 0o644))

	store := NewFileImageStore(t.TempDir(), false)
	files, err := store.List([]string{single, dir})
	require.NoError(t, err)
	require.Equal(t, []string{single, filepath.Join(dir, "a.JPG"), filepath.Join(dir, "b.png")}, files)

	_, err = store.List([]string{filepath.Join(dir, "missing")})
	require.True(t, errors.Is(err, apperrors.ErrReadFailed))
}

func TestFileImageStore_ReadWrite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "output")
	store := NewFileImageStore(out, false)

	path, err := store.Write("result_good.jpg", []byte("jpeg"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(out, "result_good.jpg"), path)

	data, err := store.Read(path)
	require.NoError(t, err)
	require.Equal(t, []byte("jpeg"), data)

	_, err = store.Read(filepath.Join(out, "missing.jpg"))
	require.True(t, errors.Is(err, apperrors.ErrReadFailed))
}

func TestFileImageStore_DryRunWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "output")
	store := NewFileImageStore(out, true)

	path, err := store.Write("result.jpg", []byte("jpeg"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(out, "result.jpg"), path)

	_, err = os.Stat(out)
	require.True(t, os.IsNotExist(err))
}
