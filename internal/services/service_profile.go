package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"smartpet-backend/internal/models"
	"smartpet-backend/internal/repository"
)

type ProfileService struct {
	Users  repository.UserRepository
	Badges repository.BadgeRepository
	Log    *zap.Logger
	Now    func() time.Time
}

func NewProfileService(store *repository.Store, log *zap.Logger) *ProfileService {
	return &ProfileService{Users: store.Users, Badges: store.Badges, Log: log, Now: func() time.Time { return time.Now().UTC() }}
}

// Get loads the caller's profile, creating the default one on first view.
// A concurrent first view that wins the insert is re-read.
func (s *ProfileService) Get(ctx context.Context, caller string) (models.UserProfile, error) {
	if caller == "" {
		return models.UserProfile{}, ErrUnauthenticated
	}
	u, err := s.Users.FindByID(ctx, caller)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return models.UserProfile{}, fmt.Errorf("load profile: %w", err)
	}

	fresh := models.DefaultProfile(caller, s.Now())
	dup, err := s.Users.Insert(ctx, fresh)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("create profile: %w", err)
	}
	if dup {
		u, err := s.Users.FindByID(ctx, caller)
		if err != nil {
			return models.UserProfile{}, fmt.Errorf("load profile: %w", err)
		}
		return u, nil
	}
	s.Log.Info("profile created", zap.String("user_id", caller))
	return fresh, nil
}

func (s *ProfileService) Update(ctx context.Context, caller string, patch models.ProfilePatch) (models.UserProfile, error) {
	if _, err := s.Get(ctx, caller); err != nil {
		return models.UserProfile{}, err
	}
	if patch.Bio != nil {
		v := strings.TrimSpace(*patch.Bio)
		patch.Bio = &v
	}
	if patch.Location != nil {
		v := strings.TrimSpace(*patch.Location)
		patch.Location = &v
	}
	if patch.Favorites != nil {
		favs := make([]string, 0, len(*patch.Favorites))
		for _, f := range *patch.Favorites {
			if f = strings.TrimSpace(f); f != "" {
				favs = append(favs, f)
			}
		}
		patch.Favorites = &favs
	}
	u, err := s.Users.Update(ctx, caller, patch)
	if err != nil {
		return models.UserProfile{}, notFoundOr(err, "profile")
	}
	return u, nil
}

func (s *ProfileService) ListBadges(ctx context.Context, caller string) ([]models.Badge, error) {
	if caller == "" {
		return nil, ErrUnauthenticated
	}
	out, err := s.Badges.ListByUser(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	return out, nil
}
