package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unijobs_backend/internal/session"
)

func TestStorageRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")

	s, err := session.NewStorage(path)
	require.NoError(t, err)

	require.NoError(t, s.Set(session.KeyUser, `{"id":"1"}`))
	require.NoError(t, s.Set(session.KeyToken, "jwt-token"))

	// Новый экземпляр над тем же файлом видит записи
	reopened, err := session.NewStorage(path)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1"}`, reopened.Get(session.KeyUser))
	assert.Equal(t, "jwt-token", reopened.Get(session.KeyToken))
}

func TestStorageDelete(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	s, err := session.NewStorage(path)
	require.NoError(t, err)

	require.NoError(t, s.Set(session.KeyToken, "jwt-token"))
	require.NoError(t, s.Delete(session.KeyToken))
	assert.Empty(t, s.Get(session.KeyToken))

	reopened, err := session.NewStorage(path)
	require.NoError(t, err)
	assert.Empty(t, reopened.Get(session.KeyToken))
}

func TestStorageClear(t *testing.T) {
	t.Parallel()

	s, err := session.NewStorage("")
	require.NoError(t, err)

	require.NoError(t, s.Set(session.KeyUser, "u"))
	require.NoError(t, s.Set(session.KeyToken, "t"))
	require.NoError(t, s.Clear())
	assert.Empty(t, s.Get(session.KeyUser))
	assert.Empty(t, s.Get(session.KeyToken))
}

func TestStorageCorruptFileTreatedAsEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o600))

	s, err := session.NewStorage(path)
	require.NoError(t, err)
	assert.Empty(t, s.Get(session.KeyUser))
}

func TestStorageMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	s, err := session.NewStorage(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Empty(t, s.Get(session.KeyToken))
}
