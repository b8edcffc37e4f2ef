package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartpet-backend/internal/cache"
	"smartpet-backend/internal/models"
)

type counts struct {
	Name     string
	Likes    int
	Comments int
}

func summarize(feed []models.FeedPost) []counts {
	out := make([]counts, len(feed))
	for i, p := range feed {
		out[i] = counts{p.Name, p.LikeCount, p.CommentCount}
	}
	return out
}

func TestFeedCountsAndOrder(t *testing.T) {
	e := newEnv(t)
	rex := e.addPost(t, models.Post{Name: "Rex", CreatedAt: base})
	milo := e.addPost(t, models.Post{Name: "Milo", CreatedAt: base.Add(2 * time.Hour)})
	e.addPost(t, models.Post{Name: "Luna", CreatedAt: base.Add(time.Hour)})

	e.like(t, alice, rex.ID)
	e.like(t, bob, rex.ID)
	e.like(t, alice, milo.ID)
	e.comment(t, alice, rex.ID, "cute")
	e.comment(t, bob, milo.ID, "hi")
	e.comment(t, bob, milo.ID, "again")

	feed, err := e.feed(t).Feed(context.Background())
	require.NoError(t, err)

	want := []counts{
		{"Milo", 1, 2},
		{"Luna", 0, 0},
		{"Rex", 2, 1},
	}
	if diff := cmp.Diff(want, summarize(feed)); diff != "" {
		t.Errorf("feed mismatch (-want +got):\n%s", diff)
	}
}

func TestFeedIgnoresRowsOfUnknownPosts(t *testing.T) {
	e := newEnv(t)
	rex := e.addPost(t, models.Post{Name: "Rex", CreatedAt: base})
	ghost := e.addPost(t, models.Post{Name: "Ghost", CreatedAt: base})
	e.like(t, alice, ghost.ID)
	require.NoError(t, e.store.Posts.Delete(context.Background(), ghost.ID))
	e.like(t, alice, rex.ID)

	feed, err := e.feed(t).Feed(context.Background())
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, 1, feed[0].LikeCount)
}

func TestEmptySystemYieldsEmptyFeed(t *testing.T) {
	e := newEnv(t)
	feed, err := e.feed(t).Feed(context.Background())
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestFeedFailureAbortsWholeRun(t *testing.T) {
	e := newEnv(t)
	e.addPost(t, models.Post{Name: "Rex", CreatedAt: base})
	s := e.feed(t)
	s.Votes = recordingVotes{VoteRepository: e.store.Votes, log: &callLog{}, refsErr: errBackend}

	feed, err := s.Feed(context.Background())
	assert.ErrorIs(t, err, errBackend)
	assert.Nil(t, feed)
	assert.Equal(t, 0, e.cache.Len(), "failed runs are not cached")

	s.Posts = failingPosts{e.store.Posts}
	_, err = s.Feed(context.Background())
	assert.ErrorIs(t, err, errBackend)
}

func TestFeedIsCachedUntilInvalidated(t *testing.T) {
	e := newEnv(t)
	s := e.feed(t)
	e.addPost(t, models.Post{Name: "Rex", CreatedAt: base})

	first, err := s.Feed(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	e.addPost(t, models.Post{Name: "Milo", CreatedAt: base.Add(time.Hour)})
	cached, err := s.Feed(context.Background())
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	e.cache.Invalidate(cache.Invalidation{Query: cache.QueryPosts})
	fresh, err := s.Feed(context.Background())
	require.NoError(t, err)
	assert.Len(t, fresh, 2)
}

func TestRefreshStoresNewFeed(t *testing.T) {
	e := newEnv(t)
	s := e.feed(t)
	e.addPost(t, models.Post{Name: "Rex", CreatedAt: base})

	require.NoError(t, s.Refresh(context.Background()))
	v, ok := e.cache.Get(feedKey)
	require.True(t, ok)
	assert.Len(t, v.([]models.FeedPost), 1)
}
