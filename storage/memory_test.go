package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_Get(t *testing.T) {
	t.Parallel()
	store := NewMemoryStorage()

	// a plain lookup never creates a session
	session, err := store.Get("U1")
	require.NoError(t, err)
	require.Nil(t, session)

	created, err := store.GetOrCreate("U1")
	require.NoError(t, err)

	session, err = store.Get("U1")
	require.NoError(t, err)
	require.Same(t, created, session)
}

func TestMemoryStorage_GetOrCreate(t *testing.T) {
	t.Parallel()
	store := NewMemoryStorage()

	session, err := store.GetOrCreate("U1")
	require.NoError(t, err)
	require.Equal(t, "U1", session.UserID)
	require.False(t, session.HasImage())

	// same user observes the same record
	again, err := store.GetOrCreate("U1")
	require.NoError(t, err)
	require.Same(t, session, again)
}

func TestMemoryStorage_UpdateImage(t *testing.T) {
	t.Parallel()
	store := NewMemoryStorage()

	require.NoError(t, store.UpdateImage("U1", "uploads/msg1.jpg", "aGVsbG8="))

	session, err := store.GetOrCreate("U1")
	require.NoError(t, err)
	require.True(t, session.HasImage())
	require.Equal(t, "uploads/msg1.jpg", session.ImagePath)
	require.Equal(t, "aGVsbG8=", session.ImageBase64)

	// overwrite replaces both fields
	require.NoError(t, store.UpdateImage("U1", "uploads/msg2.jpg", "d29ybGQ="))
	require.Equal(t, "uploads/msg2.jpg", session.ImagePath)
	require.Equal(t, "d29ybGQ=", session.ImageBase64)
}

func TestMemoryStorage_Delete(t *testing.T) {
	t.Parallel()
	store := NewMemoryStorage()

	require.NoError(t, store.UpdateImage("U1", "uploads/msg1.jpg", "aGVsbG8="))
	require.NoError(t, store.Delete("U1"))

	session, err := store.GetOrCreate("U1")
	require.NoError(t, err)
	require.False(t, session.HasImage())

	// deleting a user that was never seen is fine
	require.NoError(t, store.Delete("nobody"))
}
