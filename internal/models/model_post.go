package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type PetSize string

const (
	SizeSmall      PetSize = "Small"
	SizeMedium     PetSize = "Medium"
	SizeLarge      PetSize = "Large"
	SizeExtraLarge PetSize = "Extra Large"
)

func (s PetSize) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge:
		return true
	}
	return false
}

type AdoptionStatus string

const (
	StatusAvailable AdoptionStatus = "Available"
	StatusPending   AdoptionStatus = "Pending"
	StatusAdopted   AdoptionStatus = "Adopted"
)

func (s AdoptionStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusPending, StatusAdopted:
		return true
	}
	return false
}

// Post is one pet listing. Optional scalars are pointers so an absent value
// stays distinguishable from zero.
type Post struct {
	ID                bson.ObjectID  `json:"id" bson:"_id,omitempty"`
	Name              string         `json:"name" bson:"name"`
	Content           string         `json:"content" bson:"content"`
	CreatedAt         time.Time      `json:"created_at" bson:"created_at"`
	ImageURL          string         `json:"image_url" bson:"image_url"`
	AvatarURL         string         `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	Age               *int           `json:"age,omitempty" bson:"age,omitempty"`
	Breed             string         `json:"breed,omitempty" bson:"breed,omitempty"`
	VaccinationStatus *bool          `json:"vaccination_status,omitempty" bson:"vaccination_status,omitempty"`
	Location          string         `json:"location,omitempty" bson:"location,omitempty"`
	Size              PetSize        `json:"size,omitempty" bson:"size,omitempty"`
	Temperament       []string       `json:"temperament" bson:"temperament"`
	HealthInfo        string         `json:"health_info,omitempty" bson:"health_info,omitempty"`
	Status            AdoptionStatus `json:"status,omitempty" bson:"status,omitempty"`
	AdditionalPhotos  []string       `json:"additional_photos" bson:"additional_photos"`
	CommunityID       *bson.ObjectID `json:"community_id,omitempty" bson:"community_id,omitempty"`
	UserID            string         `json:"user_id,omitempty" bson:"user_id,omitempty"`
}

// Normalize is applied where documents leave the store: enum values outside
// the known sets become absent and nil lists become empty.
func (p *Post) Normalize() {
	if p.Size != "" && !p.Size.Valid() {
		p.Size = ""
	}
	if p.Status != "" && !p.Status.Valid() {
		p.Status = ""
	}
	if p.Temperament == nil {
		p.Temperament = []string{}
	}
	if p.AdditionalPhotos == nil {
		p.AdditionalPhotos = []string{}
	}
}

// FeedPost is a post with its derived counters.
type FeedPost struct {
	Post
	LikeCount    int `json:"like_count"`
	CommentCount int `json:"comment_count"`
}

type ChangeOp string

const (
	OpInsert  ChangeOp = "insert"
	OpUpdate  ChangeOp = "update"
	OpReplace ChangeOp = "replace"
	OpDelete  ChangeOp = "delete"
)

// PostChange is one notification from the posts change feed.
type PostChange struct {
	Op     ChangeOp      `json:"op"`
	PostID bson.ObjectID `json:"post_id"`
}
