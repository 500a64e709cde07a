package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caltrack/internal/api"
)

func sessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "caltrack", "session.json")
}

func TestLoadMissingFileStartsLoggedOut(t *testing.T) {
	s := Load(sessionPath(t))
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
}

func TestSetAuthPersistsAcrossLoads(t *testing.T) {
	path := sessionPath(t)

	s := Load(path)
	require.NoError(t, s.SetAuth("tok-123", api.User{ID: "u1", Name: "Ana", Email: "ana@example.com"}))

	reloaded := Load(path)
	assert.True(t, reloaded.IsAuthenticated())
	assert.Equal(t, "tok-123", reloaded.Token())
	require.NotNil(t, reloaded.User())
	assert.Equal(t, "Ana", reloaded.User().Name)
}

func TestSetUserKeepsToken(t *testing.T) {
	path := sessionPath(t)
	s := Load(path)
	require.NoError(t, s.SetAuth("tok-123", api.User{ID: "u1", Name: "Ana"}))
	require.NoError(t, s.SetUser(api.User{ID: "u1", Name: "Ana B"}))

	assert.Equal(t, "tok-123", s.Token())
	assert.Equal(t, "Ana B", s.User().Name)
}

func TestUserReturnsCopy(t *testing.T) {
	s := Load(sessionPath(t))
	require.NoError(t, s.SetAuth("tok", api.User{ID: "u1", Name: "Ana"}))

	u := s.User()
	u.Name = "mutated"
	assert.Equal(t, "Ana", s.User().Name)
}

func TestClearRemovesFile(t *testing.T) {
	path := sessionPath(t)
	s := Load(path)
	require.NoError(t, s.SetAuth("tok", api.User{ID: "u1"}))
	require.NoError(t, s.Clear())

	assert.False(t, s.IsAuthenticated())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already-cleared session is not an error.
	require.NoError(t, s.Clear())
}

func TestLoadCorruptFileMeansLoggedOut(t *testing.T) {
	path := sessionPath(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	s := Load(path)
	assert.False(t, s.IsAuthenticated())
}
