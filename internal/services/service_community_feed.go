package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"smartpet-backend/internal/cache"
	"smartpet-backend/internal/models"
	"smartpet-backend/internal/repository"
)

type CommunityFeed struct {
	Community models.Community  `json:"community"`
	Posts     []models.FeedPost `json:"posts"`
}

// CommunityFeedService lists one community's posts. Unlike the main feed it
// counts only the listed posts, server side.
type CommunityFeedService struct {
	Store *repository.Store
	Cache *cache.QueryCache
}

func NewCommunityFeedService(store *repository.Store, qc *cache.QueryCache) *CommunityFeedService {
	return &CommunityFeedService{Store: store, Cache: qc}
}

func (s *CommunityFeedService) Feed(ctx context.Context, communityID bson.ObjectID) (CommunityFeed, error) {
	key := cache.Key{Query: cache.QueryCommunityPosts, Arg: communityID.Hex()}
	return cache.Fetch(ctx, s.Cache, key, func(ctx context.Context) (CommunityFeed, error) {
		return s.build(ctx, communityID)
	})
}

func (s *CommunityFeedService) build(ctx context.Context, communityID bson.ObjectID) (CommunityFeed, error) {
	community, err := s.Store.Communities.FindByID(ctx, communityID)
	if err != nil {
		return CommunityFeed{}, notFoundOr(err, "community")
	}

	posts, err := s.Store.Posts.List(ctx, models.PostFilter{CommunityID: &communityID})
	if err != nil {
		return CommunityFeed{}, fmt.Errorf("list community posts: %w", err)
	}
	ids := make([]bson.ObjectID, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}

	likes, err := s.Store.Votes.CountByPosts(ctx, ids)
	if err != nil {
		return CommunityFeed{}, fmt.Errorf("count votes: %w", err)
	}
	comments, err := s.Store.Comments.CountByPosts(ctx, ids)
	if err != nil {
		return CommunityFeed{}, fmt.Errorf("count comments: %w", err)
	}

	// counts above are community-scoped; annotate only attaches them and ranks like the main feed
	return CommunityFeed{Community: community, Posts: annotate(posts, likes, comments)}, nil
}
