package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotCount(t *testing.T) {
	// After N upserts the row stores N while the callers observed the
	// sequence 1, 1, 2, 3, ...
	tests := []struct {
		stored int
		want   int
	}{
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 3},
		{10, 9},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, snapshotCount(tt.stored), "stored %d", tt.stored)
	}
}
