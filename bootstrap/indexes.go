package bootstrap

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"smartpet-backend/internal/repository"
)

// Indexes lists every index the backend relies on, by collection.
func Indexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		repository.ColVotes: {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "post_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_user_post"),
			},
			{
				Keys:    bson.D{{Key: "post_id", Value: 1}},
				Options: options.Index().SetName("post_id"),
			},
		},
		repository.ColComments: {
			{
				Keys:    bson.D{{Key: "post_id", Value: 1}, {Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
				Options: options.Index().SetName("post_created_desc"),
			},
		},
		repository.ColPosts: {
			{
				Keys:    bson.D{{Key: "created_at", Value: -1}},
				Options: options.Index().SetName("created_desc"),
			},
			{
				Keys:    bson.D{{Key: "community_id", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("community_created_desc"),
			},
		},
		repository.ColBadges: {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}},
				Options: options.Index().SetName("user_id"),
			},
		},
	}
}

// EnsureIndexes creates the indexes; existing ones are left alone.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for col, models := range Indexes() {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", col, err)
		}
	}
	return nil
}
