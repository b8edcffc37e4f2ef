package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"smartpet-backend/internal/cache"
	"smartpet-backend/internal/models"
	"smartpet-backend/internal/repository"
)

var communitiesKey = cache.Key{Query: cache.QueryCommunities}

type CommunityService struct {
	Communities repository.CommunityRepository
	Cache       *cache.QueryCache
	Now         func() time.Time
}

func NewCommunityService(store *repository.Store, qc *cache.QueryCache) *CommunityService {
	return &CommunityService{Communities: store.Communities, Cache: qc, Now: func() time.Time { return time.Now().UTC() }}
}

func (s *CommunityService) Create(ctx context.Context, caller, name, description string) (models.Community, error) {
	if caller == "" {
		return models.Community{}, ErrUnauthenticated
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Community{}, invalid("name is required")
	}
	c := models.Community{
		ID:          bson.NewObjectID(),
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   s.Now(),
	}
	if err := s.Communities.Create(ctx, &c); err != nil {
		return models.Community{}, fmt.Errorf("insert community: %w", err)
	}
	s.Cache.Invalidate(cache.Invalidation{Query: cache.QueryCommunities})
	return c, nil
}

// List returns every community, newest first.
func (s *CommunityService) List(ctx context.Context) ([]models.Community, error) {
	return cache.Fetch(ctx, s.Cache, communitiesKey, func(ctx context.Context) ([]models.Community, error) {
		out, err := s.Communities.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list communities: %w", err)
		}
		return out, nil
	})
}

func (s *CommunityService) Get(ctx context.Context, id bson.ObjectID) (models.Community, error) {
	c, err := s.Communities.FindByID(ctx, id)
	if err != nil {
		return models.Community{}, notFoundOr(err, "community")
	}
	return c, nil
}
