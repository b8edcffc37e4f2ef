package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// NewMongoStore wires every repository to its collection in db.
func NewMongoStore(db *mongo.Database) *Store {
	posts := db.Collection(ColPosts)
	return &Store{
		Posts:       &MongoPostRepository{Col: posts},
		Votes:       &MongoVoteRepository{Col: db.Collection(ColVotes)},
		Comments:    &MongoCommentRepository{Col: db.Collection(ColComments)},
		Communities: &MongoCommunityRepository{Col: db.Collection(ColCommunities)},
		Users:       &MongoUserRepository{Col: db.Collection(ColUsers)},
		Badges:      &MongoBadgeRepository{Col: db.Collection(ColBadges)},
		Changes:     &MongoChangeSource{Col: posts},
	}
}

func isDuplicateKey(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000 {
		return true
	}
	return mongo.IsDuplicateKeyError(err)
}

type postRef struct {
	PostID bson.ObjectID `bson:"post_id"`
}

// allPostRefs reads post_id from every row of col.
func allPostRefs(ctx context.Context, col *mongo.Collection) ([]bson.ObjectID, error) {
	opts := options.Find().SetProjection(bson.M{"post_id": 1, "_id": 0})
	cur, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []postRef
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	out := make([]bson.ObjectID, len(rows))
	for i, r := range rows {
		out[i] = r.PostID
	}
	return out, nil
}

// countByPosts groups col by post_id, restricted to postIDs.
func countByPosts(ctx context.Context, col *mongo.Collection, postIDs []bson.ObjectID) (map[bson.ObjectID]int, error) {
	out := make(map[bson.ObjectID]int, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}
	pipe := mongo.Pipeline{
		{{Key: StageMatch, Value: bson.M{"post_id": bson.M{OpIn: postIDs}}}},
		{{Key: StageGroup, Value: bson.M{"_id": "$post_id", "count": bson.M{"$sum": 1}}}},
	}
	cur, err := col.Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		ID    bson.ObjectID `bson:"_id"`
		Count int           `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.ID] = r.Count
	}
	return out, nil
}
