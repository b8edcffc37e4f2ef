package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Community struct {
	ID          bson.ObjectID `json:"id"          bson:"_id,omitempty"`
	Name        string        `json:"name"        bson:"name"`
	Description string        `json:"description" bson:"description"`
	CreatedAt   time.Time     `json:"created_at"  bson:"created_at"`
}
