package bot

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreSerializesPerChat(t *testing.T) {
	store := NewSessionStore()

	// Concurrent read-modify-writes on the same chat must not lose updates.
	const workers = 64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = store.Do(1, func(sess *Session) error {
				sess.State = State(int(sess.State) + 1)
				return nil
			})
		}()
	}
	wg.Wait()

	sess, ok := store.Peek(1)
	require.True(t, ok)
	assert.Equal(t, workers, int(sess.State))
}

func TestSessionStoreIsolatesChats(t *testing.T) {
	store := NewSessionStore()

	_ = store.Do(1, func(sess *Session) error {
		sess.State = StateInputAge
		sess.Handle = "alice"
		return nil
	})
	_ = store.Do(2, func(sess *Session) error {
		sess.State = StateViewProfiles
		sess.Handle = "bob"
		return nil
	})

	one, ok := store.Peek(1)
	require.True(t, ok)
	two, ok := store.Peek(2)
	require.True(t, ok)
	assert.Equal(t, StateInputAge, one.State)
	assert.Equal(t, "alice", one.Handle)
	assert.Equal(t, StateViewProfiles, two.State)
	assert.Equal(t, "bob", two.Handle)
}

func TestSessionStorePeekUnknownChat(t *testing.T) {
	store := NewSessionStore()

	_, ok := store.Peek(99)

	assert.False(t, ok)
}
