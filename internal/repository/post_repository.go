package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"smartpet-backend/internal/models"
)

type MongoPostRepository struct {
	Col *mongo.Collection
}

func (r *MongoPostRepository) List(ctx context.Context, f models.PostFilter) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.Col.Find(ctx, BuildPostFilter(f), opts)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer cur.Close(ctx)

	items := []models.Post{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	for i := range items {
		items[i].Normalize()
	}
	return items, nil
}

func (r *MongoPostRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.Post, error) {
	var p models.Post
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return p, fmt.Errorf("post %s: %w", id.Hex(), ErrNotFound)
		}
		return p, err
	}
	p.Normalize()
	return p, nil
}

func (r *MongoPostRepository) Insert(ctx context.Context, p *models.Post) error {
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	_, err := r.Col.InsertOne(ctx, p)
	return err
}

func (r *MongoPostRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("post %s: %w", id.Hex(), ErrNotFound)
	}
	return nil
}
