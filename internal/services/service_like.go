package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"smartpet-backend/internal/cache"
	"smartpet-backend/internal/models"
	"smartpet-backend/internal/repository"
)

type LikeStatus struct {
	PostID    bson.ObjectID `json:"post_id"`
	Liked     bool          `json:"liked"`
	LikeCount int64         `json:"like_count"`
}

type LikeService struct {
	Posts repository.PostRepository
	Votes repository.VoteRepository
	Cache *cache.QueryCache
	Now   func() time.Time
}

func NewLikeService(store *repository.Store, qc *cache.QueryCache) *LikeService {
	return &LikeService{Posts: store.Posts, Votes: store.Votes, Cache: qc, Now: func() time.Time { return time.Now().UTC() }}
}

// Toggle likes the post, or unlikes it when the caller already did.
func (s *LikeService) Toggle(ctx context.Context, postID bson.ObjectID, caller string) (LikeStatus, error) {
	if caller == "" {
		return LikeStatus{}, ErrUnauthenticated
	}
	if _, err := s.Posts.FindByID(ctx, postID); err != nil {
		return LikeStatus{}, notFoundOr(err, "post")
	}

	dup, err := s.Votes.Insert(ctx, models.Vote{
		ID:        bson.NewObjectID(),
		UserID:    caller,
		PostID:    postID,
		CreatedAt: s.Now(),
	})
	if err != nil {
		return LikeStatus{}, fmt.Errorf("insert vote: %w", err)
	}
	liked := true
	if dup {
		if _, err := s.Votes.Delete(ctx, caller, postID); err != nil {
			return LikeStatus{}, fmt.Errorf("delete vote: %w", err)
		}
		liked = false
	}
	invalidatePosts(s.Cache)

	n, err := s.Votes.Count(ctx, postID)
	if err != nil {
		return LikeStatus{}, fmt.Errorf("count votes: %w", err)
	}
	return LikeStatus{PostID: postID, Liked: liked, LikeCount: n}, nil
}

// Status reports the like count and, for a signed-in caller, whether they liked it.
func (s *LikeService) Status(ctx context.Context, postID bson.ObjectID, caller string) (LikeStatus, error) {
	if _, err := s.Posts.FindByID(ctx, postID); err != nil {
		return LikeStatus{}, notFoundOr(err, "post")
	}
	n, err := s.Votes.Count(ctx, postID)
	if err != nil {
		return LikeStatus{}, fmt.Errorf("count votes: %w", err)
	}
	st := LikeStatus{PostID: postID, LikeCount: n}
	if caller != "" {
		if st.Liked, err = s.Votes.Exists(ctx, caller, postID); err != nil {
			return LikeStatus{}, fmt.Errorf("vote lookup: %w", err)
		}
	}
	return st, nil
}
