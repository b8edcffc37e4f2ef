package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"

	"smartpet-backend/internal/models"
)

// ===== MongoDB stage/keyword constants =====
const (
	StageMatch = "$match"
	StageGroup = "$group"
	StageSort  = "$sort"

	OpAnd   = "$and"
	OpOr    = "$or"
	OpIn    = "$in"
	OpGte   = "$gte"
	OpLte   = "$lte"
	OpRegex = "$regex"
	OpOpts  = "$options"
)

func containsI(term string) bson.M {
	return bson.M{OpRegex: regexp.QuoteMeta(term), OpOpts: "i"}
}

// BuildPostFilter compiles the sparse filter into a find filter. Each active
// predicate is one clause; clauses are AND-ed; no predicate means match-all.
func BuildPostFilter(f models.PostFilter) bson.M {
	and := make([]bson.M, 0, 8)

	if f.CommunityID != nil {
		and = append(and, bson.M{"community_id": *f.CommunityID})
	}
	if f.Breed != nil {
		and = append(and, bson.M{"breed": containsI(*f.Breed)})
	}
	if f.Location != nil {
		and = append(and, bson.M{"location": containsI(*f.Location)})
	}
	if f.Size != nil {
		and = append(and, bson.M{"size": string(*f.Size)})
	}
	if f.Status != nil {
		and = append(and, bson.M{"status": string(*f.Status)})
	}
	if f.MinAge != nil || f.MaxAge != nil {
		age := bson.M{}
		if f.MinAge != nil {
			age[OpGte] = *f.MinAge
		}
		if f.MaxAge != nil {
			age[OpLte] = *f.MaxAge
		}
		and = append(and, bson.M{"age": age})
	}
	if f.VaccinationStatus != nil {
		and = append(and, bson.M{"vaccination_status": *f.VaccinationStatus})
	}
	if f.Term != nil {
		and = append(and, bson.M{OpOr: []bson.M{
			{"name": containsI(*f.Term)},
			{"content": containsI(*f.Term)},
		}})
	}

	switch len(and) {
	case 0:
		return bson.M{}
	case 1:
		return and[0]
	}
	return bson.M{OpAnd: and}
}
