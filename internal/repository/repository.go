package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"smartpet-backend/internal/models"
)

const (
	ColPosts       = "posts"
	ColVotes       = "votes"
	ColComments    = "comments"
	ColCommunities = "communities"
	ColUsers       = "users"
	ColBadges      = "user_badges"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

type PostRepository interface {
	// List returns posts matching f, newest first.
	List(ctx context.Context, f models.PostFilter) ([]models.Post, error)
	FindByID(ctx context.Context, id bson.ObjectID) (models.Post, error)
	Insert(ctx context.Context, p *models.Post) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

type VoteRepository interface {
	// PostRefs returns the post_id of every vote row, unfiltered.
	PostRefs(ctx context.Context) ([]bson.ObjectID, error)
	CountByPosts(ctx context.Context, postIDs []bson.ObjectID) (map[bson.ObjectID]int, error)
	Count(ctx context.Context, postID bson.ObjectID) (int64, error)
	Exists(ctx context.Context, userID string, postID bson.ObjectID) (bool, error)
	// Insert reports dup=true when the (user, post) pair already exists.
	Insert(ctx context.Context, v models.Vote) (dup bool, err error)
	Delete(ctx context.Context, userID string, postID bson.ObjectID) (bool, error)
	DeleteByPost(ctx context.Context, postID bson.ObjectID) (int64, error)
}

type CommentRepository interface {
	// PostRefs returns the post_id of every comment row, unfiltered.
	PostRefs(ctx context.Context) ([]bson.ObjectID, error)
	CountByPosts(ctx context.Context, postIDs []bson.ObjectID) (map[bson.ObjectID]int, error)
	Count(ctx context.Context, postID bson.ObjectID) (int64, error)
	Create(ctx context.Context, c *models.Comment) error
	FindByID(ctx context.Context, id bson.ObjectID) (models.Comment, error)
	ListByPostNewestFirst(ctx context.Context, postID bson.ObjectID, cursorStr string, limit int64) ([]models.Comment, *string, error)
	// DeleteOwned removes the comment only when userID wrote it.
	DeleteOwned(ctx context.Context, id bson.ObjectID, userID string) (bool, error)
	DeleteByPost(ctx context.Context, postID bson.ObjectID) (int64, error)
}

type CommunityRepository interface {
	Create(ctx context.Context, c *models.Community) error
	List(ctx context.Context) ([]models.Community, error)
	FindByID(ctx context.Context, id bson.ObjectID) (models.Community, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id string) (models.UserProfile, error)
	Insert(ctx context.Context, u models.UserProfile) (dup bool, err error)
	Update(ctx context.Context, id string, patch models.ProfilePatch) (models.UserProfile, error)
}

type BadgeRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Badge, error)
}

// ChangeStream yields post change notifications until it is closed or fails.
type ChangeStream interface {
	Next(ctx context.Context) (models.PostChange, error)
	Close(ctx context.Context) error
}

type ChangeSource interface {
	WatchPosts(ctx context.Context) (ChangeStream, error)
}

// Store is the one backend handle every service is built from.
type Store struct {
	Posts       PostRepository
	Votes       VoteRepository
	Comments    CommentRepository
	Communities CommunityRepository
	Users       UserRepository
	Badges      BadgeRepository
	Changes     ChangeSource
}
