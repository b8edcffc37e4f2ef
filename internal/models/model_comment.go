package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID              bson.ObjectID  `json:"id"                          bson:"_id,omitempty"`
	PostID          bson.ObjectID  `json:"post_id"                     bson:"post_id"`
	UserID          string         `json:"user_id"                     bson:"user_id"`
	Content         string         `json:"content"                     bson:"content"`
	ParentCommentID *bson.ObjectID `json:"parent_comment_id,omitempty" bson:"parent_comment_id,omitempty"`
	AuthorName      string         `json:"author_name,omitempty"       bson:"author_name,omitempty"`
	AvatarURL       string         `json:"avatar_url,omitempty"        bson:"avatar_url,omitempty"`
	CreatedAt       time.Time      `json:"created_at"                  bson:"created_at"`
}
