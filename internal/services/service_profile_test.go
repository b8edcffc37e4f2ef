package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"smartpet-backend/internal/models"
)

func TestProfileCreatedOnFirstView(t *testing.T) {
	e := newEnv(t)
	svc := NewProfileService(e.store, zaptest.NewLogger(t))
	svc.Now = fixedClock()

	u, err := svc.Get(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultProfile(alice, svc.Now()), u)

	again, err := svc.Get(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, u.CreatedAt, again.CreatedAt)
}

func TestConcurrentFirstViewsConverge(t *testing.T) {
	e := newEnv(t)
	svc := NewProfileService(e.store, zaptest.NewLogger(t))

	var wg sync.WaitGroup
	got := make([]models.UserProfile, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, err := svc.Get(context.Background(), bob)
			assert.NoError(t, err)
			got[i] = u
		}(i)
	}
	wg.Wait()
	for _, u := range got {
		assert.Equal(t, bob, u.ID)
		assert.True(t, got[0].CreatedAt.Equal(u.CreatedAt))
	}
}

func TestProfileUpdateAndBadges(t *testing.T) {
	e := newEnv(t)
	svc := NewProfileService(e.store, zaptest.NewLogger(t))
	ctx := context.Background()

	u, err := svc.Update(ctx, alice, models.ProfilePatch{
		Bio:       ptr("  Foster parent "),
		Favorites: ptr([]string{"huskies", " ", "cats"}),
	})
	require.NoError(t, err)
	assert.Equal(t, "Foster parent", u.Bio)
	assert.Equal(t, []string{"huskies", "cats"}, u.Favorites)
	assert.Equal(t, "", u.Location)

	e.db.AwardBadge(models.Badge{UserID: alice, BadgeType: "first_post", AwardedAt: base})
	e.db.AwardBadge(models.Badge{UserID: alice, BadgeType: "helper", AwardedAt: base.Add(time.Hour)})
	e.db.AwardBadge(models.Badge{UserID: bob, BadgeType: "helper", AwardedAt: base})

	badges, err := svc.ListBadges(ctx, alice)
	require.NoError(t, err)
	require.Len(t, badges, 2)
	assert.Equal(t, "helper", badges[0].BadgeType)

	_, err = svc.ListBadges(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = svc.Get(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
