package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func ptr[T any](v T) *T { return &v }

func TestPostFilterMatches(t *testing.T) {
	community := bson.NewObjectID()
	retriever := Post{
		Name:              "Sunny",
		Content:           "A fluffy golden retriever",
		Breed:             "Golden Retriever",
		Location:          "Portland, OR",
		Size:              SizeLarge,
		Status:            StatusAvailable,
		Age:               ptr(18),
		VaccinationStatus: ptr(true),
		CommunityID:       &community,
	}
	quiet := Post{
		Name:    "Miso",
		Content: "calm and quiet.",
		Breed:   "Siamese",
		Size:    SizeSmall,
		Status:  StatusPending,
	}

	cases := []struct {
		name   string
		filter PostFilter
		want   [2]bool
	}{
		{"empty filter matches all", PostFilter{}, [2]bool{true, true}},
		{"term is case-insensitive over content", PostFilter{Term: ptr("FLUFFY")}, [2]bool{true, false}},
		{"term also matches name", PostFilter{Term: ptr("miso")}, [2]bool{false, true}},
		{"breed substring", PostFilter{Breed: ptr("retriev")}, [2]bool{true, false}},
		{"location substring", PostFilter{Location: ptr("portland")}, [2]bool{true, false}},
		{"size equality", PostFilter{Size: ptr(SizeSmall)}, [2]bool{false, true}},
		{"status equality", PostFilter{Status: ptr(StatusPending)}, [2]bool{false, true}},
		{"inclusive age bounds", PostFilter{MinAge: ptr(18), MaxAge: ptr(18)}, [2]bool{true, false}},
		{"age below min", PostFilter{MinAge: ptr(19)}, [2]bool{false, false}},
		{"vaccinated", PostFilter{VaccinationStatus: ptr(true)}, [2]bool{true, false}},
		{"community", PostFilter{CommunityID: &community}, [2]bool{true, false}},
		{"predicates are AND-ed", PostFilter{Term: ptr("fluffy"), Size: ptr(SizeSmall)}, [2]bool{false, false}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want[0], tc.filter.Matches(retriever))
			assert.Equal(t, tc.want[1], tc.filter.Matches(quiet))
		})
	}
}

func TestPostFilterKey(t *testing.T) {
	assert.Equal(t, "", PostFilter{}.Key())
	assert.True(t, PostFilter{}.Empty())

	a := PostFilter{Breed: ptr("lab"), MinAge: ptr(2)}
	b := PostFilter{MinAge: ptr(2), Breed: ptr("lab")}
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), PostFilter{Breed: ptr("lab")}.Key())
	assert.False(t, a.Empty())
}

func TestPostNormalize(t *testing.T) {
	p := Post{Size: "Huge", Status: "Gone"}
	p.Normalize()

	assert.Equal(t, PetSize(""), p.Size)
	assert.Equal(t, AdoptionStatus(""), p.Status)
	assert.NotNil(t, p.Temperament)
	assert.NotNil(t, p.AdditionalPhotos)

	ok := Post{Size: SizeExtraLarge, Status: StatusAdopted}
	ok.Normalize()
	assert.Equal(t, SizeExtraLarge, ok.Size)
	assert.Equal(t, StatusAdopted, ok.Status)
}
