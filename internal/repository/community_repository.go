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

type MongoCommunityRepository struct {
	Col *mongo.Collection
}

func (r *MongoCommunityRepository) Create(ctx context.Context, c *models.Community) error {
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	_, err := r.Col.InsertOne(ctx, c)
	return err
}

func (r *MongoCommunityRepository) List(ctx context.Context) ([]models.Community, error) {
	cur, err := r.Col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Community{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoCommunityRepository) FindByID(ctx context.Context, id bson.ObjectID) (models.Community, error) {
	var c models.Community
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c, fmt.Errorf("community %s: %w", id.Hex(), ErrNotFound)
		}
		return c, err
	}
	return c, nil
}
