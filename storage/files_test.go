package storage

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStore_SaveEncodeRoundTrip(t *testing.T) {
	t.Parallel()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	original := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02, 0x03}
	path, err := store.Save("msg1", bytes.NewReader(original))
	require.NoError(t, err)
	require.Equal(t, "msg1.jpg", filepath.Base(path))

	encoded, err := store.Encode(path)
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	require.Equal(t, original, decoded)
}

func TestFileStore_CreatesUploadDir(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "uploads")
	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())

	// creating again is idempotent
	_, err = NewFileStore(dir)
	require.NoError(t, err)
}

func TestFileStore_EncodeMissingFile(t *testing.T) {
	t.Parallel()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Encode(filepath.Join(t.TempDir(), "nothing.jpg"))
	require.Error(t, err)
}

func TestFileStore_RemoveMissingFile(t *testing.T) {
	t.Parallel()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Remove(filepath.Join(t.TempDir(), "gone.jpg")))
}
