package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"smartpet-backend/internal/models"
	"smartpet-backend/internal/repository"
	"smartpet-backend/internal/utils"
)

const vaccinationProofPrefix = "vaccination-proof-"

// Upload is one file of a create-post form.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type CreatePostInput struct {
	Name              string
	Content           string
	Age               *int
	Breed             string
	Location          string
	Size              models.PetSize
	Temperament       []string
	HealthInfo        string
	VaccinationStatus *bool
	Status            models.AdoptionStatus
	CommunityID       *bson.ObjectID

	Image            *Upload
	AdditionalPhotos []Upload
	VaccinationProof *Upload
}

func (in *CreatePostInput) normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Content = strings.TrimSpace(in.Content)
	if in.Name == "" {
		return invalid("name is required")
	}
	if in.Content == "" {
		return invalid("content is required")
	}
	if in.Image == nil {
		return invalid("image is required")
	}
	if in.Age != nil && *in.Age < 0 {
		return invalid("age must not be negative")
	}
	if in.Size == "" {
		in.Size = models.SizeMedium
	}
	if !in.Size.Valid() {
		return invalid("unknown size %q", in.Size)
	}
	if in.Status == "" {
		in.Status = models.StatusAvailable
	}
	if !in.Status.Valid() {
		return invalid("unknown status %q", in.Status)
	}
	if in.VaccinationStatus != nil && *in.VaccinationStatus && in.VaccinationProof == nil {
		return invalid("vaccination proof is required for vaccinated pets")
	}
	temperament := make([]string, 0, len(in.Temperament))
	for _, t := range in.Temperament {
		if t = strings.TrimSpace(t); t != "" {
			temperament = append(temperament, t)
		}
	}
	in.Temperament = temperament
	return nil
}

// Create uploads the main image, the vaccination proof and the extra photos
// in that order, then inserts the post. Objects uploaded before a failure are
// removed best effort.
func (s *PostService) Create(ctx context.Context, caller string, in CreatePostInput) (models.Post, error) {
	if caller == "" {
		return models.Post{}, ErrUnauthenticated
	}
	if err := in.normalize(); err != nil {
		return models.Post{}, err
	}
	if in.CommunityID != nil {
		if _, err := s.Store.Communities.FindByID(ctx, *in.CommunityID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return models.Post{}, invalid("community %s does not exist", in.CommunityID.Hex())
			}
			return models.Post{}, err
		}
	}

	now := s.Now()
	var uploaded []string
	rollback := func() {
		for _, key := range uploaded {
			if err := s.Storage.Remove(context.WithoutCancel(ctx), key); err != nil {
				s.Log.Warn("orphaned upload", zap.String("key", key), zap.Error(err))
			}
		}
	}
	put := func(prefix string, u Upload) (string, error) {
		key := utils.ObjectKey(prefix, in.Name, u.Filename, now)
		url, err := s.Storage.Put(ctx, key, u.Body, u.ContentType)
		if err != nil {
			return "", err
		}
		uploaded = append(uploaded, key)
		return url, nil
	}

	imageURL, err := put("", *in.Image)
	if err != nil {
		return models.Post{}, fmt.Errorf("upload image: %w", err)
	}

	// only the server writes proof markers
	healthInfo, _ := s.parseHealthInfo(in.HealthInfo)
	if in.VaccinationProof != nil {
		proofURL, err := put(vaccinationProofPrefix, *in.VaccinationProof)
		if err != nil {
			rollback()
			return models.Post{}, fmt.Errorf("upload vaccination proof: %w", err)
		}
		healthInfo = utils.AppendVaccinationProof(healthInfo, proofURL)
	}

	photos := make([]string, 0, len(in.AdditionalPhotos))
	for _, u := range in.AdditionalPhotos {
		url, err := put("", u)
		if err != nil {
			rollback()
			return models.Post{}, fmt.Errorf("upload photo %s: %w", u.Filename, err)
		}
		photos = append(photos, url)
	}

	p := models.Post{
		Name:              in.Name,
		Content:           in.Content,
		CreatedAt:         now,
		ImageURL:          imageURL,
		Age:               in.Age,
		Breed:             strings.TrimSpace(in.Breed),
		VaccinationStatus: in.VaccinationStatus,
		Location:          strings.TrimSpace(in.Location),
		Size:              in.Size,
		Temperament:       in.Temperament,
		HealthInfo:        strings.TrimSpace(healthInfo),
		Status:            in.Status,
		AdditionalPhotos:  photos,
		CommunityID:       in.CommunityID,
		UserID:            caller,
	}
	if err := s.Store.Posts.Insert(ctx, &p); err != nil {
		rollback()
		return models.Post{}, fmt.Errorf("insert post: %w", err)
	}
	invalidatePosts(s.Cache)
	s.Log.Info("post created", zap.String("post_id", p.ID.Hex()), zap.String("user_id", caller))
	return p, nil
}
