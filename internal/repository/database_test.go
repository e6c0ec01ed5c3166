package repository

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "bot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestEnsureOwnerFirstWriterWins(t *testing.T) {
	store := openTestStore(t)

	isNew, err := store.EnsureOwner("100")
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = store.EnsureOwner("200")
	require.NoError(t, err)
	assert.False(t, isNew)

	owner, err := store.Owner()
	require.NoError(t, err)
	assert.Equal(t, "100", owner)
}

func TestEnsureOwnerIdempotentForWinner(t *testing.T) {
	store := openTestStore(t)

	_, err := store.EnsureOwner("100")
	require.NoError(t, err)

	isNew, err := store.EnsureOwner("100")
	require.NoError(t, err)
	assert.False(t, isNew)
}

func TestEnsureOwnerConcurrentFirstUse(t *testing.T) {
	store := openTestStore(t)

	const callers = 16
	winners := make(chan string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			isNew, err := store.EnsureOwner(id)
			assert.NoError(t, err)
			if isNew {
				winners <- id
			}
		}(string(rune('a' + i)))
	}
	wg.Wait()
	close(winners)

	var won []string
	for id := range winners {
		won = append(won, id)
	}
	require.Len(t, won, 1, "exactly one caller may become owner")

	owner, err := store.Owner()
	require.NoError(t, err)
	assert.Equal(t, won[0], owner)
}

func TestOwnerMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Owner()
	assert.ErrorIs(t, err, ErrNoOwner)
	assert.False(t, store.IsOwner("100"))
}

func TestOwnerRecordCorrupt(t *testing.T) {
	store := openTestStore(t)

	_, err := store.db.Exec(`INSERT INTO owner (id, user_id) VALUES (1, '  ')`)
	require.NoError(t, err)

	_, err = store.Owner()
	assert.ErrorIs(t, err, ErrOwnerRecordCorrupt)
	assert.False(t, store.IsOwner("  "))
}

func TestIsOwner(t *testing.T) {
	store := openTestStore(t)

	_, err := store.EnsureOwner("100")
	require.NoError(t, err)

	assert.True(t, store.IsOwner("100"))
	assert.False(t, store.IsOwner("200"))
}

func TestRememberChatUpserts(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.RememberChat("1", "telegram"))
	require.NoError(t, store.RememberChat("2", "telegram"))
	require.NoError(t, store.RememberChat("1", "telegram"))
	require.NoError(t, store.RememberChat("9", "discord"))

	chats, err := store.PrivateChats("telegram")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, chats)

	chats, err = store.PrivateChats("discord")
	require.NoError(t, err)
	assert.Equal(t, []string{"9"}, chats)
}
