package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"smartpet-backend/internal/cursor"
	"smartpet-backend/internal/models"
)

type MongoCommentRepository struct {
	Col *mongo.Collection
}

func (r *MongoCommentRepository) PostRefs(ctx context.Context) ([]bson.ObjectID, error) {
	return allPostRefs(ctx, r.Col)
}

func (r *MongoCommentRepository) CountByPosts(ctx context.Context, postIDs []bson.ObjectID) (map[bson.ObjectID]int, error) {
	return countByPosts(ctx, r.Col, postIDs)
}

func (r *MongoCommentRepository) Count(ctx context.Context, postID bson.ObjectID) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"post_id": postID})
}

func (r *MongoCommentRepository) Create(ctx context.Context, c *models.Comment) error {
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	_, err := r.Col.InsertOne(ctx, c)
	return err
}

func (r *MongoCommentRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.Comment, error) {
	var c models.Comment
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c, fmt.Errorf("comment %s: %w", id.Hex(), ErrNotFound)
		}
		return c, err
	}
	return c, nil
}

// ListByPostNewestFirst pages a post's comments, newest first, using an opaque
// (created_at, _id) cursor.
func (r *MongoCommentRepository) ListByPostNewestFirst(
	ctx context.Context,
	postID bson.ObjectID,
	cursorStr string,
	limit int64,
) (items []models.Comment, next *string, err error) {
	filter := bson.M{"post_id": postID}

	if cursorStr != "" {
		t, oid, derr := cursor.DecodeCommentCursor(cursorStr)
		if derr != nil {
			return nil, nil, derr
		}
		filter[OpOr] = []bson.M{
			{"created_at": bson.M{"$lt": t}},
			{"created_at": t, "_id": bson.M{"$lt": oid}},
		}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit + 1)

	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, nil, err
	}
	defer cur.Close(ctx)

	all := []models.Comment{}
	if err = cur.All(ctx, &all); err != nil {
		return nil, nil, err
	}

	if int64(len(all)) > limit {
		items = all[:limit]
		last := items[len(items)-1]
		s := cursor.EncodeCommentCursor(last.CreatedAt, last.ID)
		return items, &s, nil
	}
	return all, nil, nil
}

func (r *MongoCommentRepository) DeleteOwned(ctx context.Context, id bson.ObjectID, userID string) (bool, error) {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoCommentRepository) DeleteByPost(ctx context.Context, postID bson.ObjectID) (int64, error) {
	res, err := r.Col.DeleteMany(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
