package models

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// PostFilter is the sparse search predicate set. Nil fields impose nothing.
type PostFilter struct {
	Breed             *string
	Location          *string
	Size              *PetSize
	Status            *AdoptionStatus
	MinAge            *int
	MaxAge            *int
	VaccinationStatus *bool
	Term              *string

	CommunityID *bson.ObjectID
}

func (f PostFilter) Empty() bool {
	return f.Breed == nil && f.Location == nil && f.Size == nil && f.Status == nil &&
		f.MinAge == nil && f.MaxAge == nil && f.VaccinationStatus == nil && f.Term == nil &&
		f.CommunityID == nil
}

// Matches reports whether p satisfies every active predicate.
func (f PostFilter) Matches(p Post) bool {
	if f.Breed != nil && !containsFold(p.Breed, *f.Breed) {
		return false
	}
	if f.Location != nil && !containsFold(p.Location, *f.Location) {
		return false
	}
	if f.Size != nil && p.Size != *f.Size {
		return false
	}
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	if f.MinAge != nil && (p.Age == nil || *p.Age < *f.MinAge) {
		return false
	}
	if f.MaxAge != nil && (p.Age == nil || *p.Age > *f.MaxAge) {
		return false
	}
	if f.VaccinationStatus != nil && (p.VaccinationStatus == nil || *p.VaccinationStatus != *f.VaccinationStatus) {
		return false
	}
	if f.Term != nil && !containsFold(p.Name, *f.Term) && !containsFold(p.Content, *f.Term) {
		return false
	}
	if f.CommunityID != nil && (p.CommunityID == nil || *p.CommunityID != *f.CommunityID) {
		return false
	}
	return true
}

// Key renders the filter as a stable string, used as the query identity in caches.
func (f PostFilter) Key() string {
	var b strings.Builder
	add := func(name, v string) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(strconv.Quote(v))
	}
	if f.Breed != nil {
		add("breed", *f.Breed)
	}
	if f.Location != nil {
		add("location", *f.Location)
	}
	if f.Size != nil {
		add("size", string(*f.Size))
	}
	if f.Status != nil {
		add("status", string(*f.Status))
	}
	if f.MinAge != nil {
		add("min_age", strconv.Itoa(*f.MinAge))
	}
	if f.MaxAge != nil {
		add("max_age", strconv.Itoa(*f.MaxAge))
	}
	if f.VaccinationStatus != nil {
		add("vaccinated", strconv.FormatBool(*f.VaccinationStatus))
	}
	if f.Term != nil {
		add("q", *f.Term)
	}
	if f.CommunityID != nil {
		add("community", f.CommunityID.Hex())
	}
	return b.String()
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
