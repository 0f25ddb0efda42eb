package session

import (
	"path/filepath"
	"testing"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{ID: "u1", Username: "alice", Name: "Alice"}
}

func TestLoadMissingFileIsAnonymous(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, store.Load())
	_, ok := store.Current()
	assert.False(t, ok)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store := NewStore(path)
	require.NoError(t, store.Save(testUser(), "tok"))

	sess, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "alice", sess.User.Username)
	assert.Equal(t, "tok", sess.Token)

	// a fresh store sees the persisted session
	fresh := NewStore(path)
	require.NoError(t, fresh.Load())
	sess, ok = fresh.Current()
	require.True(t, ok)
	assert.Equal(t, "u1", sess.User.ID)
}

func TestClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store := NewStore(path)
	require.NoError(t, store.Save(testUser(), "tok"))
	require.NoError(t, store.Clear())

	_, ok := store.Current()
	assert.False(t, ok)

	// clearing an already-clear store is fine
	require.NoError(t, store.Clear())

	fresh := NewStore(path)
	require.NoError(t, fresh.Load())
	_, ok = fresh.Current()
	assert.False(t, ok)
}

func TestCurrentReturnsCopy(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Save(testUser(), "tok"))

	sess, _ := store.Current()
	sess.User.Username = "mallory"

	again, _ := store.Current()
	assert.Equal(t, "alice", again.User.Username)
}
