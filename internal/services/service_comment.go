package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"smartpet-backend/config"
	"smartpet-backend/internal/cache"
	"smartpet-backend/internal/cursor"
	"smartpet-backend/internal/models"
	"smartpet-backend/internal/repository"
)

type CommentPage struct {
	Items      []models.Comment `json:"items"`
	NextCursor *string          `json:"next_cursor,omitempty"`
}

type NewComment struct {
	Content         string
	ParentCommentID *bson.ObjectID
	AuthorName      string
	AvatarURL       string
}

type CommentService struct {
	Posts    repository.PostRepository
	Comments repository.CommentRepository
	Cache    *cache.QueryCache
	Now      func() time.Time
}

func NewCommentService(store *repository.Store, qc *cache.QueryCache) *CommentService {
	return &CommentService{Posts: store.Posts, Comments: store.Comments, Cache: qc, Now: func() time.Time { return time.Now().UTC() }}
}

func ClampCommentLimit(limit int64) int64 {
	if limit <= 0 {
		return config.DefaultLimitComments
	}
	if limit > config.MaxLimitComments {
		return config.MaxLimitComments
	}
	return limit
}

func (s *CommentService) List(ctx context.Context, postID bson.ObjectID, cursorStr string, limit int64) (CommentPage, error) {
	if _, err := s.Posts.FindByID(ctx, postID); err != nil {
		return CommentPage{}, notFoundOr(err, "post")
	}
	items, next, err := s.Comments.ListByPostNewestFirst(ctx, postID, cursorStr, ClampCommentLimit(limit))
	if err != nil {
		if errors.Is(err, cursor.ErrInvalidCursor) {
			return CommentPage{}, invalid("bad cursor")
		}
		return CommentPage{}, fmt.Errorf("list comments: %w", err)
	}
	return CommentPage{Items: items, NextCursor: next}, nil
}

func (s *CommentService) Create(ctx context.Context, postID bson.ObjectID, caller string, in NewComment) (models.Comment, error) {
	if caller == "" {
		return models.Comment{}, ErrUnauthenticated
	}
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return models.Comment{}, invalid("content is required")
	}
	if _, err := s.Posts.FindByID(ctx, postID); err != nil {
		return models.Comment{}, notFoundOr(err, "post")
	}
	if in.ParentCommentID != nil {
		parent, err := s.Comments.FindByID(ctx, *in.ParentCommentID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return models.Comment{}, invalid("parent comment %s does not exist", in.ParentCommentID.Hex())
			}
			return models.Comment{}, err
		}
		if parent.PostID != postID {
			return models.Comment{}, invalid("parent comment belongs to another post")
		}
	}

	c := models.Comment{
		ID:              bson.NewObjectID(),
		PostID:          postID,
		UserID:          caller,
		Content:         content,
		ParentCommentID: in.ParentCommentID,
		AuthorName:      strings.TrimSpace(in.AuthorName),
		AvatarURL:       strings.TrimSpace(in.AvatarURL),
		CreatedAt:       s.Now(),
	}
	if err := s.Comments.Create(ctx, &c); err != nil {
		return models.Comment{}, fmt.Errorf("insert comment: %w", err)
	}
	invalidatePosts(s.Cache)
	return c, nil
}

// Delete removes the caller's own comment.
func (s *CommentService) Delete(ctx context.Context, id bson.ObjectID, caller string) error {
	if caller == "" {
		return ErrUnauthenticated
	}
	c, err := s.Comments.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "comment")
	}
	if c.UserID != caller {
		return fmt.Errorf("comment %s: %w", id.Hex(), ErrForbidden)
	}
	ok, err := s.Comments.DeleteOwned(ctx, id, caller)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if !ok {
		return fmt.Errorf("comment %s: %w", id.Hex(), ErrNotFound)
	}
	invalidatePosts(s.Cache)
	return nil
}
