package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"smartpet-backend/config"
	"smartpet-backend/internal/models"
)

func TestCommentLifecycle(t *testing.T) {
	e := newEnv(t)
	p := e.addPost(t, models.Post{Name: "Rex", CreatedAt: base})
	svc := NewCommentService(e.store, e.cache)
	ctx := context.Background()

	c, err := svc.Create(ctx, p.ID, bob, NewComment{Content: "  adorable  ", AuthorName: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, "adorable", c.Content)

	reply, err := svc.Create(ctx, p.ID, alice, NewComment{Content: "thanks", ParentCommentID: &c.ID})
	require.NoError(t, err)
	require.NotNil(t, reply.ParentCommentID)

	page, err := svc.List(ctx, p.ID, "", 0)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Nil(t, page.NextCursor)

	assert.ErrorIs(t, svc.Delete(ctx, c.ID, alice), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, c.ID, bob))
	assert.ErrorIs(t, svc.Delete(ctx, c.ID, bob), ErrNotFound)
}

func TestCommentValidation(t *testing.T) {
	e := newEnv(t)
	p := e.addPost(t, models.Post{Name: "Rex", CreatedAt: base})
	other := e.addPost(t, models.Post{Name: "Milo", CreatedAt: base})
	foreign := e.comment(t, alice, other.ID, "elsewhere")
	svc := NewCommentService(e.store, e.cache)
	ctx := context.Background()

	_, err := svc.Create(ctx, p.ID, alice, NewComment{Content: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.Create(ctx, p.ID, "", NewComment{Content: "hi"})
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = svc.Create(ctx, bson.NewObjectID(), alice, NewComment{Content: "hi"})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Create(ctx, p.ID, alice, NewComment{Content: "hi", ParentCommentID: &foreign.ID})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(ctx, p.ID, "%%%not-a-cursor", 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCommentPagingFollowsCursor(t *testing.T) {
	e := newEnv(t)
	p := e.addPost(t, models.Post{Name: "Rex", CreatedAt: base})
	svc := NewCommentService(e.store, e.cache)
	ctx := context.Background()

	at := base
	svc.Now = func() time.Time { at = at.Add(time.Second); return at }
	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, p.ID, alice, NewComment{Content: "c"})
		require.NoError(t, err)
	}

	seen := 0
	cur := ""
	for {
		page, err := svc.List(ctx, p.ID, cur, 2)
		require.NoError(t, err)
		seen += len(page.Items)
		if page.NextCursor == nil {
			break
		}
		cur = *page.NextCursor
	}
	assert.Equal(t, 5, seen)
}

func TestClampCommentLimit(t *testing.T) {
	assert.EqualValues(t, config.DefaultLimitComments, ClampCommentLimit(0))
	assert.EqualValues(t, config.MaxLimitComments, ClampCommentLimit(10_000))
	assert.EqualValues(t, 7, ClampCommentLimit(7))
}
