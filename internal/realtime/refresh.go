package realtime

import (
	"context"

	"go.uber.org/zap"

	"smartpet-backend/internal/cache"
	"smartpet-backend/internal/models"
)

// FeedRefresher re-runs the full feed aggregation.
type FeedRefresher interface {
	Refresh(ctx context.Context) error
}

// RefreshHandler invalidates every cached post query, rebuilds the feed and
// tells stream clients. A failed rebuild is logged; the invalidation stands.
func RefreshHandler(qc *cache.QueryCache, feed FeedRefresher, hub *Hub, log *zap.Logger) Handler {
	return func(ctx context.Context, ch models.PostChange) {
		qc.Invalidate(
			cache.Invalidation{Query: cache.QueryPosts},
			cache.Invalidation{Query: cache.QueryCommunityPosts},
		)
		if err := feed.Refresh(ctx); err != nil {
			log.Warn("feed refresh after change failed", zap.Error(err), zap.String("post_id", ch.PostID.Hex()))
		}
		hub.Broadcast(Event{Name: EventPostsChanged, Data: ch})
	}
}
