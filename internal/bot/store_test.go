package bot

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityCounterSnapshotSequence(t *testing.T) {
	store := newMemStore()
	id := uuid.New()

	// The creating call and the one after it both observe 1; from there the
	// snapshots grow by one per call.
	want := []int{1, 1, 2, 3, 4}
	for i, expected := range want {
		activity, err := store.IncrementOrInsert(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, expected, activity.ActivityCount, "call %d", i+1)
	}

	top, err := store.MostActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(want), top.ActivityCount)
}
