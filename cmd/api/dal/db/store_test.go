package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMutatePersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	err := Mutate(ctx, func(s *Store) error {
		meta := s.EnsureVideo("clip.mp4")
		meta.Views = 7
		s.SetReaction("clip.mp4", "guest-1", "like")
		meta.Likes = 1
		return nil
	})
	require.NoError(t, err)

	// Reload from disk and check everything survived.
	require.NoError(t, Init(dir))
	View(ctx, func(s *Store) {
		meta, ok := s.Videos["clip.mp4"]
		require.True(t, ok)
		assert.EqualValues(t, 7, meta.Views)
		assert.EqualValues(t, 1, meta.Likes)
		assert.Equal(t, "like", s.Reaction("clip.mp4", "guest-1"))
	})
}

func TestMutateErrorWritesNothing(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	err := Mutate(ctx, func(s *Store) error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	_, statErr := os.Stat(filepath.Join(dir, "db.json"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestMutateRollsBackWhenPersistFails(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	err := Mutate(ctx, func(s *Store) error {
		s.EnsureVideo("clip.mp4").Views = 3
		return nil
	})
	require.NoError(t, err)

	// Take the data dir away so the next persist cannot write.
	require.NoError(t, os.RemoveAll(dir))

	err = Mutate(ctx, func(s *Store) error {
		s.EnsureVideo("clip.mp4").Views = 99
		return nil
	})
	require.Error(t, err)

	// The failed mutation left no trace in memory either.
	View(ctx, func(s *Store) {
		assert.EqualValues(t, 3, s.Videos["clip.mp4"].Views)
	})
}

func TestCorruptFileStartsFresh(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "db.json"), []byte("{not json"), 0o644))

	require.NoError(t, Init(dir))
	View(ctx, func(s *Store) {
		assert.Empty(t, s.Users)
		assert.Empty(t, s.Videos)
		assert.Empty(t, s.Reactions)
	})
}

func TestEnsureAndRemoveVideo(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, Init(t.TempDir()))

	err := Mutate(ctx, func(s *Store) error {
		meta := s.EnsureVideo("a.mp4")
		assert.EqualValues(t, 0, meta.Views)
		assert.NotNil(t, meta.Comments)
		// Vivifying twice hands back the same record.
		assert.Same(t, meta, s.EnsureVideo("a.mp4"))

		s.SetReaction("a.mp4", "u1", "dislike")
		s.RemoveVideo("a.mp4")
		assert.NotContains(t, s.Videos, "a.mp4")
		assert.NotContains(t, s.Reactions, "a.mp4")
		return nil
	})
	require.NoError(t, err)
}

func TestFindUser(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, Init(t.TempDir()))

	err := Mutate(ctx, func(s *Store) error {
		s.Users = append(s.Users, &User{UserId: "u1", Username: "Alice"})
		return nil
	})
	require.NoError(t, err)

	View(ctx, func(s *Store) {
		assert.NotNil(t, s.FindUserByName("alice"))
		assert.NotNil(t, s.FindUserByName("ALICE"))
		assert.Nil(t, s.FindUserByName("bob"))
		assert.NotNil(t, s.FindUserById("u1"))
		assert.Nil(t, s.FindUserById("u2"))
	})
}
