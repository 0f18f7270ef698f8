package store

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")

	_, err := NewLocal(dir)
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// creating again over an existing directory is fine
	_, err = NewLocal(dir)
	assert.NoError(t, err)
}

func TestLocalStoreAndFind(t *testing.T) {
	l, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	data := []byte("proof-bytes")
	locator, err := l.Store(context.Background(), "REG001.jpg", data, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "REG001.jpg", locator)

	path, err := l.Find("REG001")
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	_, err = l.Find("REG999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalFindMatchesPrefix(t *testing.T) {
	l, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	_, err = l.Store(context.Background(), "123.png", []byte("a"), "image/png")
	require.NoError(t, err)

	// "12" matches "123.png" by prefix; first listed entry wins
	path, err := l.Find("12")
	require.NoError(t, err)
	assert.Equal(t, "123.png", filepath.Base(path))
}

func TestLocalArchiveAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proofs")
	l, err := NewLocal(dir)
	require.NoError(t, err)

	_, err = l.Store(context.Background(), "REG001.jpg", []byte("one"), "image/jpeg")
	require.NoError(t, err)
	_, err = l.Store(context.Background(), "REG002.png", []byte("two"), "image/png")
	require.NoError(t, err)

	archive, err := l.ArchiveAll()
	require.NoError(t, err)
	assert.Equal(t, dir+".zip", archive)

	zr, err := zip.OpenReader(archive)
	require.NoError(t, err)
	defer zr.Close()
	assert.Len(t, zr.File, 2)

	// overwriting with one more file produces a three-entry archive
	_, err = l.Store(context.Background(), "REG003.jpg", []byte("three"), "image/jpeg")
	require.NoError(t, err)
	_, err = l.ArchiveAll()
	require.NoError(t, err)
	zr2, err := zip.OpenReader(archive)
	require.NoError(t, err)
	defer zr2.Close()
	assert.Len(t, zr2.File, 3)
}

func TestLocalArchiveAllEmpty(t *testing.T) {
	l, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	_, err = l.ArchiveAll()
	assert.ErrorIs(t, err, ErrEmpty)
}
