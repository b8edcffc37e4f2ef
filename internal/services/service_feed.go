package services

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"smartpet-backend/internal/cache"
	"smartpet-backend/internal/models"
	"smartpet-backend/internal/repository"
)

var feedKey = cache.Key{Query: cache.QueryPosts, Arg: "feed"}

// FeedService builds the main feed: every post, newest first, with its like
// and comment counts.
type FeedService struct {
	Posts    repository.PostRepository
	Votes    repository.VoteRepository
	Comments repository.CommentRepository
	Cache    *cache.QueryCache
	Log      *zap.Logger
}

func NewFeedService(store *repository.Store, qc *cache.QueryCache, log *zap.Logger) *FeedService {
	return &FeedService{Posts: store.Posts, Votes: store.Votes, Comments: store.Comments, Cache: qc, Log: log}
}

// Feed returns the cached feed, building it on a miss.
func (s *FeedService) Feed(ctx context.Context) ([]models.FeedPost, error) {
	return cache.Fetch(ctx, s.Cache, feedKey, s.build)
}

// Refresh rebuilds the feed and stores it unless another invalidation
// happened meanwhile.
func (s *FeedService) Refresh(ctx context.Context) error {
	gen := s.Cache.Generation(feedKey.Query)
	out, err := s.build(ctx)
	if err != nil {
		return err
	}
	if !s.Cache.Put(feedKey, gen, out) {
		s.Log.Debug("feed refresh superseded by a newer change")
	}
	return nil
}

// build fetches posts first; counting starts only once that succeeded.
// Any failure discards the whole run.
func (s *FeedService) build(ctx context.Context) ([]models.FeedPost, error) {
	posts, err := s.Posts.List(ctx, models.PostFilter{})
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	var voteRefs, commentRefs []bson.ObjectID
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		refs, err := s.Votes.PostRefs(gctx)
		if err != nil {
			return fmt.Errorf("list votes: %w", err)
		}
		voteRefs = refs
		return nil
	})
	g.Go(func() error {
		refs, err := s.Comments.PostRefs(gctx)
		if err != nil {
			return fmt.Errorf("list comments: %w", err)
		}
		commentRefs = refs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return annotate(posts, frequencies(voteRefs), frequencies(commentRefs)), nil
}

func frequencies(refs []bson.ObjectID) map[bson.ObjectID]int {
	m := make(map[bson.ObjectID]int, len(refs))
	for _, id := range refs {
		m[id]++
	}
	return m
}

// annotate attaches counts (0 when absent) and orders by created_at desc.
func annotate(posts []models.Post, likes, comments map[bson.ObjectID]int) []models.FeedPost {
	out := make([]models.FeedPost, len(posts))
	for i, p := range posts {
		out[i] = models.FeedPost{Post: p, LikeCount: likes[p.ID], CommentCount: comments[p.ID]}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
