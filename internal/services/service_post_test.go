package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/multierr"

	"smartpet-backend/internal/models"
	"smartpet-backend/internal/repository"
	"smartpet-backend/internal/storage"
)

func TestDetailSplitsVaccinationProof(t *testing.T) {
	e := newEnv(t)
	p := e.addPost(t, models.Post{
		Name:       "Rex",
		HealthInfo: "Good health.\n\nVaccination Proof: https://x/y.jpg",
		UserID:     alice,
		CreatedAt:  base,
	})
	e.like(t, bob, p.ID)
	e.comment(t, alice, p.ID, "hello")

	d, err := e.posts(t).Detail(context.Background(), p.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, "Good health.", d.HealthInfo)
	assert.Equal(t, "https://x/y.jpg", d.VaccinationProofURL)
	assert.EqualValues(t, 1, d.LikeCount)
	assert.EqualValues(t, 1, d.CommentCount)
	assert.True(t, d.Liked)

	anon, err := e.posts(t).Detail(context.Background(), p.ID, "")
	require.NoError(t, err)
	assert.False(t, anon.Liked)
}

func TestDetailNotFound(t *testing.T) {
	e := newEnv(t)
	_, err := e.posts(t).Detail(context.Background(), bson.NewObjectID(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

type deleteFixture struct {
	env   *env
	svc   *PostService
	calls *callLog
	post  models.Post
	keys  []string
}

func newDeleteFixture(t *testing.T, failKeys ...string) *deleteFixture {
	e := newEnv(t)
	calls := &callLog{}
	fail := map[string]bool{}
	for _, k := range failKeys {
		fail[k] = true
	}
	bucket := failingBucket{MemoryBucket: e.bucket, log: calls, fail: fail}
	e.st = storage.New("post-images", "https://pets.example.com", bucket)

	keys := []string{"Rex-1-main.jpg", "Rex-1-extra.jpg", "vaccination-proof-Rex-1-card.png"}
	urls := make([]string, len(keys))
	for i, k := range keys {
		urls[i] = e.upload(t, k)
	}
	p := e.addPost(t, models.Post{
		Name:             "Rex",
		ImageURL:         urls[0],
		AdditionalPhotos: []string{urls[1]},
		HealthInfo:       "Healthy.\n\nVaccination Proof: " + urls[2],
		UserID:           alice,
		CreatedAt:        base,
	})
	e.like(t, bob, p.ID)
	e.comment(t, bob, p.ID, "so cute")

	svc := e.posts(t)
	store := *e.store
	store.Posts = recordingPosts{PostRepository: e.store.Posts, log: calls}
	store.Comments = recordingComments{CommentRepository: e.store.Comments, log: calls}
	store.Votes = recordingVotes{VoteRepository: e.store.Votes, log: calls}
	svc.Store = &store

	return &deleteFixture{env: e, svc: svc, calls: calls, post: p, keys: keys}
}

func TestDeleteOrder(t *testing.T) {
	f := newDeleteFixture(t)

	rep, err := f.svc.Delete(context.Background(), f.post.ID, alice)
	require.NoError(t, err)
	assert.NoError(t, rep.StorageErr)
	assert.EqualValues(t, 1, rep.CommentsDeleted)
	assert.EqualValues(t, 1, rep.VotesDeleted)
	assert.Equal(t, f.keys, rep.ObjectsRemoved)

	assert.Equal(t, []string{
		"comments.delete",
		"votes.delete",
		"storage.remove Rex-1-main.jpg",
		"storage.remove Rex-1-extra.jpg",
		"storage.remove vaccination-proof-Rex-1-card.png",
		"posts.delete",
	}, f.calls.list())
	assert.Empty(t, f.env.bucket.Keys())

	_, err = f.env.store.Posts.FindByID(context.Background(), f.post.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteSurvivesStorageFailures(t *testing.T) {
	f := newDeleteFixture(t, "Rex-1-main.jpg", "vaccination-proof-Rex-1-card.png")

	rep, err := f.svc.Delete(context.Background(), f.post.ID, alice)
	require.NoError(t, err)
	assert.Len(t, multierr.Errors(rep.StorageErr), 2)
	assert.Equal(t, []string{"Rex-1-extra.jpg"}, rep.ObjectsRemoved)

	calls := f.calls.list()
	assert.Equal(t, "posts.delete", calls[len(calls)-1])
	_, err = f.env.store.Posts.FindByID(context.Background(), f.post.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteAbortsWhenCommentsFail(t *testing.T) {
	f := newDeleteFixture(t)
	store := *f.svc.Store
	store.Comments = recordingComments{CommentRepository: f.env.store.Comments, log: f.calls, err: errBackend}
	f.svc.Store = &store

	_, err := f.svc.Delete(context.Background(), f.post.ID, alice)
	assert.ErrorIs(t, err, errBackend)
	assert.Equal(t, []string{"comments.delete"}, f.calls.list())

	_, err = f.env.store.Posts.FindByID(context.Background(), f.post.ID)
	assert.NoError(t, err, "post row is untouched")
}

func TestDeleteAbortsWhenVotesFail(t *testing.T) {
	f := newDeleteFixture(t)
	store := *f.svc.Store
	store.Votes = recordingVotes{VoteRepository: f.env.store.Votes, log: f.calls, err: errBackend}
	f.svc.Store = &store

	_, err := f.svc.Delete(context.Background(), f.post.ID, alice)
	assert.ErrorIs(t, err, errBackend)
	assert.Equal(t, []string{"comments.delete", "votes.delete"}, f.calls.list())
}

func TestDeleteRequiresOwner(t *testing.T) {
	f := newDeleteFixture(t)

	_, err := f.svc.Delete(context.Background(), f.post.ID, bob)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, f.calls.list())

	_, err = f.svc.Delete(context.Background(), f.post.ID, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = f.svc.Delete(context.Background(), bson.NewObjectID(), alice)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateDropsUserWrittenProofMarkers(t *testing.T) {
	e := newEnv(t)
	svc := e.posts(t)
	bobImage := e.upload(t, "Buddy-1-main.jpg")

	p, err := svc.Create(context.Background(), alice, CreatePostInput{
		Name:              "Rex",
		Content:           "hi",
		HealthInfo:        "Vaccination Proof: " + bobImage + "\n\nDewormed.",
		VaccinationStatus: ptr(true),
		Image:             file("a.jpg"),
		VaccinationProof:  file("card.png"),
	})
	require.NoError(t, err)
	assert.NotContains(t, p.HealthInfo, bobImage)

	d, err := svc.Detail(context.Background(), p.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "Dewormed.", d.HealthInfo)
	assert.Contains(t, d.VaccinationProofURL, "/vaccination-proof-Rex-")

	rep, err := svc.Delete(context.Background(), p.ID, alice)
	require.NoError(t, err)
	assert.NoError(t, rep.StorageErr)
	assert.NotContains(t, rep.ObjectsRemoved, "Buddy-1-main.jpg")
	assert.Equal(t, []string{"Buddy-1-main.jpg"}, e.bucket.Keys(), "only bob's image is left")
}

func TestDeleteOnlyRemovesOwnStorageObjects(t *testing.T) {
	e := newEnv(t)
	bobImage := e.upload(t, "Buddy-1-main.jpg")
	own := e.upload(t, "Rex-1-main.jpg")

	// rows written before markers were sanitised
	p := e.addPost(t, models.Post{
		Name:             "Rex",
		ImageURL:         own,
		AdditionalPhotos: []string{"https://elsewhere.example/storage/post-images/Buddy-1-main.jpg"},
		HealthInfo:       "Vaccination Proof: " + bobImage,
		UserID:           alice,
		CreatedAt:        base,
	})

	rep, err := e.posts(t).Delete(context.Background(), p.ID, alice)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rex-1-main.jpg"}, rep.ObjectsRemoved)
	assert.Equal(t, []string{"Buddy-1-main.jpg"}, e.bucket.Keys())
}

func TestVaccinatedPostOnPlainHTTPStorage(t *testing.T) {
	e := newEnv(t)
	e.st = storage.New("post-images", "http://localhost:3000", e.bucket)
	svc := e.posts(t)

	p, err := svc.Create(context.Background(), alice, CreatePostInput{
		Name:              "Rex",
		Content:           "hi",
		HealthInfo:        "Good health.",
		VaccinationStatus: ptr(true),
		Image:             file("a.jpg"),
		VaccinationProof:  file("card.png"),
		AdditionalPhotos:  []Upload{*file("b.jpg")},
	})
	require.NoError(t, err)

	d, err := svc.Detail(context.Background(), p.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "Good health.", d.HealthInfo)
	assert.True(t, strings.HasPrefix(d.VaccinationProofURL, "http://localhost:3000/storage/post-images/vaccination-proof-Rex-"))

	rep, err := svc.Delete(context.Background(), p.ID, alice)
	require.NoError(t, err)
	assert.NoError(t, rep.StorageErr)
	assert.Len(t, rep.ObjectsRemoved, 3)
	assert.Empty(t, e.bucket.Keys())
}
