package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserProfile shares its id with the identity platform's subject.
type UserProfile struct {
	ID              string    `json:"id"               bson:"_id"`
	Bio             string    `json:"bio"              bson:"bio"`
	Location        string    `json:"location"         bson:"location"`
	IsShelter       bool      `json:"is_shelter"       bson:"is_shelter"`
	Verified        bool      `json:"verified"         bson:"verified"`
	AdoptionHistory []string  `json:"adoption_history" bson:"adoption_history"`
	Favorites       []string  `json:"favorites"        bson:"favorites"`
	CreatedAt       time.Time `json:"created_at"       bson:"created_at"`
}

// DefaultProfile is what a first profile view creates.
func DefaultProfile(userID string, now time.Time) UserProfile {
	return UserProfile{
		ID:              userID,
		AdoptionHistory: []string{},
		Favorites:       []string{},
		CreatedAt:       now,
	}
}

func (u *UserProfile) Normalize() {
	if u.AdoptionHistory == nil {
		u.AdoptionHistory = []string{}
	}
	if u.Favorites == nil {
		u.Favorites = []string{}
	}
}

// ProfilePatch carries the user-editable profile fields. Nil means unchanged.
type ProfilePatch struct {
	Bio       *string
	Location  *string
	Favorites *[]string
}

type Badge struct {
	ID        bson.ObjectID `json:"id"         bson:"_id,omitempty"`
	UserID    string        `json:"user_id"    bson:"user_id"`
	BadgeType string        `json:"badge_type" bson:"badge_type"`
	AwardedAt time.Time     `json:"awarded_at" bson:"awarded_at"`
}
