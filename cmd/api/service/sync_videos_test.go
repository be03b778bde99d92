package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henrygambles/Xtube-Cloud/cmd/api/dal/db"
)

func TestSyncInitializesNewVideos(t *testing.T) {
	setup(t, "a.mp4", "b.mp4")
	ctx := context.Background()

	videos, err := NewSyncVideosService(ctx).Sync()
	require.NoError(t, err)
	require.Len(t, videos, 2)

	// Most recent upload first.
	assert.Equal(t, "b.mp4", videos[0].Id)
	assert.Equal(t, "a.mp4", videos[1].Id)
	for _, v := range videos {
		assert.EqualValues(t, 0, v.Views)
		assert.EqualValues(t, 0, v.Likes)
		assert.EqualValues(t, 0, v.Dislikes)
		assert.Equal(t, 0, v.CommentsCount)
	}
}

func TestSyncIsIdempotent(t *testing.T) {
	setup(t, "a.mp4")
	ctx := context.Background()
	svc := NewSyncVideosService(ctx)

	first, err := svc.Sync()
	require.NoError(t, err)
	second, err := svc.Sync()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	db.View(ctx, func(s *db.Store) {
		assert.Len(t, s.Videos, 1)
	})
}

func TestSyncReflectsCounters(t *testing.T) {
	setup(t, "a.mp4")
	ctx := context.Background()

	_, err := NewVisitService(ctx).AddView("a.mp4")
	require.NoError(t, err)
	_, _, err = NewReactionService(ctx).React("a.mp4", "guest-1", ReactionLike)
	require.NoError(t, err)

	videos, err := NewSyncVideosService(ctx).Sync()
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.EqualValues(t, 1, videos[0].Views)
	assert.EqualValues(t, 1, videos[0].Likes)
}

func TestSyncPurgesRemovedVideos(t *testing.T) {
	src := setup(t, "a.mp4", "b.mp4")
	ctx := context.Background()

	_, err := NewVisitService(ctx).AddView("a.mp4")
	require.NoError(t, err)
	_, _, err = NewReactionService(ctx).React("a.mp4", "guest-1", ReactionDislike)
	require.NoError(t, err)

	src.remove("a.mp4")
	videos, err := NewSyncVideosService(ctx).Sync()
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "b.mp4", videos[0].Id)

	db.View(ctx, func(s *db.Store) {
		assert.NotContains(t, s.Videos, "a.mp4")
		assert.NotContains(t, s.Reactions, "a.mp4")
	})

	// Re-adding the same id starts from zero, old counters stay gone.
	src.add("a.mp4")
	videos, err = NewSyncVideosService(ctx).Sync()
	require.NoError(t, err)
	for _, v := range videos {
		if v.Id == "a.mp4" {
			assert.EqualValues(t, 0, v.Views)
			assert.EqualValues(t, 0, v.Dislikes)
		}
	}
}
