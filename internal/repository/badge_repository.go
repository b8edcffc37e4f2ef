package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"smartpet-backend/internal/models"
)

type MongoBadgeRepository struct {
	Col *mongo.Collection
}

func (r *MongoBadgeRepository) ListByUser(ctx context.Context, userID string) ([]models.Badge, error) {
	opts := options.Find().SetSort(bson.D{{Key: "awarded_at", Value: -1}})
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Badge{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
