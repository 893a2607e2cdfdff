package repo

import (
	"context"
	"testing"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLevelRepo(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryLevelRepo()

	t.Run("Missing", func(t *testing.T) {
		_, err := r.BySession(ctx, "nope")
		assert.ErrorIs(t, err, i.ErrLevelNotFound)
	})

	t.Run("LatestWins", func(t *testing.T) {
		require.NoError(t, r.Record(ctx, i.LevelRecord{SessionID: "s1", Level: 1, Width: 10, Height: 10, Moves: 31}))
		require.NoError(t, r.Record(ctx, i.LevelRecord{SessionID: "s1", Level: 2, Width: 12, Height: 12, Moves: 40}))

		got, err := r.BySession(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, 2, got.Level)
		assert.Equal(t, 40, got.Moves)
	})
}
