package services

import (
	"context"
	"io"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"smartpet-backend/internal/models"
	"smartpet-backend/internal/repository"
	"smartpet-backend/internal/utils"
)

func file(name string) *Upload {
	return &Upload{Filename: name, ContentType: "image/jpeg", Body: strings.NewReader("bytes of " + name)}
}

func TestCreatePostUploadsAndEmbedsProof(t *testing.T) {
	e := newEnv(t)
	svc := e.posts(t)

	p, err := svc.Create(context.Background(), alice, CreatePostInput{
		Name:              " Rex ",
		Content:           "Friendly boy",
		Temperament:       []string{"calm", " ", "playful "},
		HealthInfo:        "Neutered.",
		VaccinationStatus: ptr(true),
		Image:             file("main.jpg"),
		VaccinationProof:  file("card.png"),
		AdditionalPhotos:  []Upload{*file("side.jpg")},
	})
	require.NoError(t, err)

	ms := strconv.FormatInt(svc.Now().UnixMilli(), 10)
	assert.Equal(t, "Rex", p.Name)
	assert.Equal(t, alice, p.UserID)
	assert.Equal(t, models.SizeMedium, p.Size)
	assert.Equal(t, models.StatusAvailable, p.Status)
	assert.Equal(t, []string{"calm", "playful"}, p.Temperament)
	assert.Equal(t, e.st.PublicURL("Rex-"+ms+"-main.jpg"), p.ImageURL)
	assert.Equal(t, []string{e.st.PublicURL("Rex-" + ms + "-side.jpg")}, p.AdditionalPhotos)

	clean, proof := utils.ParseHealthInfo(p.HealthInfo)
	assert.Equal(t, "Neutered.", clean)
	assert.Equal(t, e.st.PublicURL("vaccination-proof-Rex-"+ms+"-card.png"), proof)

	keys := e.bucket.Keys()
	sort.Strings(keys)
	assert.Equal(t, []string{
		"Rex-" + ms + "-main.jpg",
		"Rex-" + ms + "-side.jpg",
		"vaccination-proof-Rex-" + ms + "-card.png",
	}, keys)

	stored, err := e.store.Posts.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.HealthInfo, stored.HealthInfo)
}

func TestCreatePostValidation(t *testing.T) {
	e := newEnv(t)
	svc := e.posts(t)
	valid := func() CreatePostInput {
		return CreatePostInput{Name: "Rex", Content: "hi", Image: file("a.jpg")}
	}

	cases := map[string]func(*CreatePostInput){
		"missing name":           func(in *CreatePostInput) { in.Name = "  " },
		"missing content":        func(in *CreatePostInput) { in.Content = "" },
		"missing image":          func(in *CreatePostInput) { in.Image = nil },
		"unknown size":           func(in *CreatePostInput) { in.Size = "Huge" },
		"unknown status":         func(in *CreatePostInput) { in.Status = "Sold" },
		"negative age":           func(in *CreatePostInput) { in.Age = ptr(-2) },
		"vaccinated needs proof": func(in *CreatePostInput) { in.VaccinationStatus = ptr(true) },
		"unknown community":      func(in *CreatePostInput) { id := bson.NewObjectID(); in.CommunityID = &id },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := valid()
			mutate(&in)
			_, err := svc.Create(context.Background(), alice, in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Empty(t, e.bucket.Keys(), "nothing is uploaded for rejected input")

	_, err := svc.Create(context.Background(), "", valid())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestCreatePostRollsBackUploadsOnFailure(t *testing.T) {
	e := newEnv(t)
	svc := e.posts(t)

	_, err := svc.Create(context.Background(), alice, CreatePostInput{
		Name:             "Rex",
		Content:          "hi",
		Image:            file("main.jpg"),
		AdditionalPhotos: []Upload{*file("ok.jpg"), {Filename: "bad.jpg", Body: brokenReader{}}},
	})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Empty(t, e.bucket.Keys())

	posts, err := e.store.Posts.List(context.Background(), models.PostFilter{})
	require.NoError(t, err)
	assert.Empty(t, posts)
}

type rejectingPosts struct {
	repository.PostRepository
}

func (rejectingPosts) Insert(context.Context, *models.Post) error { return errBackend }

func TestCreatePostRollsBackWhenInsertFails(t *testing.T) {
	e := newEnv(t)
	svc := e.posts(t)
	store := *e.store
	store.Posts = rejectingPosts{e.store.Posts}
	svc.Store = &store

	_, err := svc.Create(context.Background(), alice, CreatePostInput{
		Name: "Rex", Content: "hi", Image: file("main.jpg"),
	})
	assert.ErrorIs(t, err, errBackend)
	assert.Empty(t, e.bucket.Keys())
}

func TestCreatePostInCommunity(t *testing.T) {
	e := newEnv(t)
	c := models.Community{Name: "Huskies"}
	require.NoError(t, e.store.Communities.Create(context.Background(), &c))

	p, err := e.posts(t).Create(context.Background(), alice, CreatePostInput{
		Name: "Rex", Content: "hi", Image: file("main.jpg"), CommunityID: &c.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, p.CommunityID)
	assert.Equal(t, c.ID, *p.CommunityID)
}
