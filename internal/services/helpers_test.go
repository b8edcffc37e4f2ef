package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap/zaptest"

	"smartpet-backend/internal/cache"
	"smartpet-backend/internal/models"
	"smartpet-backend/internal/repository"
	"smartpet-backend/internal/repository/memory"
	"smartpet-backend/internal/storage"
)

const (
	alice = "2d1c4f5e-8a0b-4b1a-9a77-0c7f3f6c1e01"
	bob   = "7b9e2a10-3c44-4d2e-8f51-6a1d0e9b2c02"
)

var errBackend = errors.New("backend unavailable")

type env struct {
	store  *repository.Store
	db     *memory.DB
	bucket *storage.MemoryBucket
	st     *storage.Storage
	cache  *cache.QueryCache
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store, db := memory.NewStore()
	bucket := storage.NewMemoryBucket()
	return &env{
		store:  store,
		db:     db,
		bucket: bucket,
		st:     storage.New("post-images", "https://pets.example.com", bucket),
		cache:  cache.New(32),
	}
}

func (e *env) feed(t *testing.T) *FeedService {
	return NewFeedService(e.store, e.cache, zaptest.NewLogger(t))
}

func (e *env) posts(t *testing.T) *PostService {
	s := NewPostService(e.store, e.st, e.cache, zaptest.NewLogger(t))
	s.Now = fixedClock()
	return s
}

func fixedClock() func() time.Time {
	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func (e *env) addPost(t *testing.T, p models.Post) models.Post {
	t.Helper()
	require.NoError(t, e.store.Posts.Insert(context.Background(), &p))
	return p
}

func (e *env) like(t *testing.T, user string, post bson.ObjectID) {
	t.Helper()
	dup, err := e.store.Votes.Insert(context.Background(), models.Vote{UserID: user, PostID: post})
	require.NoError(t, err)
	require.False(t, dup)
}

func (e *env) comment(t *testing.T, user string, post bson.ObjectID, text string) models.Comment {
	t.Helper()
	c := models.Comment{PostID: post, UserID: user, Content: text}
	require.NoError(t, e.store.Comments.Create(context.Background(), &c))
	return c
}

func (e *env) upload(t *testing.T, key string) string {
	t.Helper()
	u, err := e.st.Put(context.Background(), key, strings.NewReader("img"), "image/jpeg")
	require.NoError(t, err)
	return u
}

func ptr[T any](v T) *T { return &v }

// ---- recording and failing decorators ----

type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, s)
}

func (l *callLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

type recordingPosts struct {
	repository.PostRepository
	log *callLog
}

func (r recordingPosts) Delete(ctx context.Context, id bson.ObjectID) error {
	r.log.add("posts.delete")
	return r.PostRepository.Delete(ctx, id)
}

type recordingComments struct {
	repository.CommentRepository
	log *callLog
	err error
}

func (r recordingComments) DeleteByPost(ctx context.Context, postID bson.ObjectID) (int64, error) {
	r.log.add("comments.delete")
	if r.err != nil {
		return 0, r.err
	}
	return r.CommentRepository.DeleteByPost(ctx, postID)
}

type recordingVotes struct {
	repository.VoteRepository
	log     *callLog
	err     error
	refsErr error
}

func (r recordingVotes) DeleteByPost(ctx context.Context, postID bson.ObjectID) (int64, error) {
	r.log.add("votes.delete")
	if r.err != nil {
		return 0, r.err
	}
	return r.VoteRepository.DeleteByPost(ctx, postID)
}

func (r recordingVotes) PostRefs(ctx context.Context) ([]bson.ObjectID, error) {
	if r.refsErr != nil {
		return nil, r.refsErr
	}
	return r.VoteRepository.PostRefs(ctx)
}

// failingBucket records removals and fails the ones listed in fail.
type failingBucket struct {
	*storage.MemoryBucket
	log  *callLog
	fail map[string]bool
}

func (b failingBucket) Remove(ctx context.Context, key string) error {
	b.log.add("storage.remove " + key)
	if b.fail[key] {
		return errBackend
	}
	return b.MemoryBucket.Remove(ctx, key)
}

type failingPosts struct {
	repository.PostRepository
}

func (failingPosts) List(context.Context, models.PostFilter) ([]models.Post, error) {
	return nil, errBackend
}
