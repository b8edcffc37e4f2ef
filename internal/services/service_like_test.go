package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"smartpet-backend/internal/models"
)

func TestLikeToggleTwiceLeavesPostUnliked(t *testing.T) {
	e := newEnv(t)
	p := e.addPost(t, models.Post{Name: "Rex", CreatedAt: base})
	svc := NewLikeService(e.store, e.cache)
	ctx := context.Background()

	st, err := svc.Toggle(ctx, p.ID, alice)
	require.NoError(t, err)
	assert.True(t, st.Liked)
	assert.EqualValues(t, 1, st.LikeCount)

	st, err = svc.Toggle(ctx, p.ID, alice)
	require.NoError(t, err)
	assert.False(t, st.Liked)
	assert.EqualValues(t, 0, st.LikeCount)

	st, err = svc.Status(ctx, p.ID, alice)
	require.NoError(t, err)
	assert.False(t, st.Liked)
}

func TestLikeIsPerUser(t *testing.T) {
	e := newEnv(t)
	p := e.addPost(t, models.Post{Name: "Rex", CreatedAt: base})
	svc := NewLikeService(e.store, e.cache)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, p.ID, alice)
	require.NoError(t, err)
	st, err := svc.Toggle(ctx, p.ID, bob)
	require.NoError(t, err)
	assert.EqualValues(t, 2, st.LikeCount)

	st, err = svc.Status(ctx, p.ID, "")
	require.NoError(t, err)
	assert.False(t, st.Liked)
	assert.EqualValues(t, 2, st.LikeCount)
}

func TestLikeInvalidatesCachedFeed(t *testing.T) {
	e := newEnv(t)
	p := e.addPost(t, models.Post{Name: "Rex", CreatedAt: base})
	feed := e.feed(t)
	ctx := context.Background()

	before, err := feed.Feed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, before[0].LikeCount)

	_, err = NewLikeService(e.store, e.cache).Toggle(ctx, p.ID, alice)
	require.NoError(t, err)

	after, err := feed.Feed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, after[0].LikeCount)
}

func TestLikeErrors(t *testing.T) {
	e := newEnv(t)
	svc := NewLikeService(e.store, e.cache)

	_, err := svc.Toggle(context.Background(), bson.NewObjectID(), alice)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Toggle(context.Background(), bson.NewObjectID(), "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
