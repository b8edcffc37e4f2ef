package repository

import (
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"smartpet-backend/internal/models"
)

// MongoChangeSource opens change streams on the posts collection.
// Change streams need a replica set or a sharded cluster.
type MongoChangeSource struct {
	Col *mongo.Collection
}

func (s *MongoChangeSource) WatchPosts(ctx context.Context) (ChangeStream, error) {
	pipe := mongo.Pipeline{
		{{Key: StageMatch, Value: bson.M{"operationType": bson.M{OpIn: bson.A{
			string(models.OpInsert), string(models.OpUpdate), string(models.OpReplace), string(models.OpDelete),
		}}}}},
	}
	cs, err := s.Col.Watch(ctx, pipe, options.ChangeStream())
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", s.Col.Name(), err)
	}
	return &mongoChangeStream{cs: cs}, nil
}

type mongoChangeStream struct {
	cs *mongo.ChangeStream
}

type changeEvent struct {
	OperationType string `bson:"operationType"`
	DocumentKey   struct {
		ID bson.ObjectID `bson:"_id"`
	} `bson:"documentKey"`
}

func (s *mongoChangeStream) Next(ctx context.Context) (models.PostChange, error) {
	if !s.cs.Next(ctx) {
		if err := s.cs.Err(); err != nil {
			return models.PostChange{}, err
		}
		if err := ctx.Err(); err != nil {
			return models.PostChange{}, err
		}
		return models.PostChange{}, io.EOF
	}
	var ev changeEvent
	if err := s.cs.Decode(&ev); err != nil {
		return models.PostChange{}, fmt.Errorf("decode change event: %w", err)
	}
	return models.PostChange{Op: models.ChangeOp(ev.OperationType), PostID: ev.DocumentKey.ID}, nil
}

func (s *mongoChangeStream) Close(ctx context.Context) error {
	return s.cs.Close(ctx)
}
