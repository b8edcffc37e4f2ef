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

type MongoUserRepository struct {
	Col *mongo.Collection
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (models.UserProfile, error) {
	var u models.UserProfile
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return u, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return u, err
	}
	u.Normalize()
	return u, nil
}

func (r *MongoUserRepository) Insert(ctx context.Context, u models.UserProfile) (bool, error) {
	_, err := r.Col.InsertOne(ctx, u)
	if err == nil {
		return false, nil
	}
	if isDuplicateKey(err) {
		return true, nil
	}
	return false, err
}

func (r *MongoUserRepository) Update(ctx context.Context, id string, patch models.ProfilePatch) (models.UserProfile, error) {
	set := bson.M{}
	if patch.Bio != nil {
		set["bio"] = *patch.Bio
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Favorites != nil {
		set["favorites"] = *patch.Favorites
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	var u models.UserProfile
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.Col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return u, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return u, err
	}
	u.Normalize()
	return u, nil
}
