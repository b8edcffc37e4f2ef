package services

import (
	"context"
	"fmt"

	"smartpet-backend/internal/cache"
	"smartpet-backend/internal/models"
	"smartpet-backend/internal/repository"
)

type SearchService struct {
	Posts repository.PostRepository
	Cache *cache.QueryCache
}

func NewSearchService(store *repository.Store, qc *cache.QueryCache) *SearchService {
	return &SearchService{Posts: store.Posts, Cache: qc}
}

// Search returns the posts matching every active predicate of f, newest
// first. An empty filter returns every post.
func (s *SearchService) Search(ctx context.Context, f models.PostFilter) ([]models.Post, error) {
	if err := ValidateFilter(f); err != nil {
		return nil, err
	}
	key := cache.Key{Query: cache.QueryPosts, Arg: "search?" + f.Key()}
	return cache.Fetch(ctx, s.Cache, key, func(ctx context.Context) ([]models.Post, error) {
		posts, err := s.Posts.List(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("search posts: %w", err)
		}
		return posts, nil
	})
}

func ValidateFilter(f models.PostFilter) error {
	if f.Size != nil && !f.Size.Valid() {
		return invalid("unknown size %q", *f.Size)
	}
	if f.Status != nil && !f.Status.Valid() {
		return invalid("unknown status %q", *f.Status)
	}
	if f.MinAge != nil && *f.MinAge < 0 {
		return invalid("min_age must not be negative")
	}
	if f.MaxAge != nil && *f.MaxAge < 0 {
		return invalid("max_age must not be negative")
	}
	return nil
}
