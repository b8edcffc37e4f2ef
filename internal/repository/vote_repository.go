package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"smartpet-backend/internal/models"
)

type MongoVoteRepository struct {
	Col *mongo.Collection
}

func (r *MongoVoteRepository) PostRefs(ctx context.Context) ([]bson.ObjectID, error) {
	return allPostRefs(ctx, r.Col)
}

func (r *MongoVoteRepository) CountByPosts(ctx context.Context, postIDs []bson.ObjectID) (map[bson.ObjectID]int, error) {
	return countByPosts(ctx, r.Col, postIDs)
}

func (r *MongoVoteRepository) Count(ctx context.Context, postID bson.ObjectID) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"post_id": postID})
}

func (r *MongoVoteRepository) Exists(ctx context.Context, userID string, postID bson.ObjectID) (bool, error) {
	n, err := r.Col.CountDocuments(ctx, bson.M{"user_id": userID, "post_id": postID})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Insert relies on the unique (user_id, post_id) index; a duplicate key means
// the user already liked the post.
func (r *MongoVoteRepository) Insert(ctx context.Context, v models.Vote) (bool, error) {
	_, err := r.Col.InsertOne(ctx, v)
	if err == nil {
		return false, nil
	}
	if isDuplicateKey(err) {
		return true, nil
	}
	return false, err
}

func (r *MongoVoteRepository) Delete(ctx context.Context, userID string, postID bson.ObjectID) (bool, error) {
	res, err := r.Col.DeleteOne(ctx, bson.M{"user_id": userID, "post_id": postID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoVoteRepository) DeleteByPost(ctx context.Context, postID bson.ObjectID) (int64, error) {
	res, err := r.Col.DeleteMany(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
