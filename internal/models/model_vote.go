package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Vote is one like of a post. (user_id, post_id) is unique.
type Vote struct {
	ID        bson.ObjectID `json:"id"         bson:"_id,omitempty"`
	UserID    string        `json:"user_id"    bson:"user_id"`
	PostID    bson.ObjectID `json:"post_id"    bson:"post_id"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
}
