package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"smartpet-backend/internal/cache"
	"smartpet-backend/internal/models"
	"smartpet-backend/internal/repository"
	"smartpet-backend/internal/storage"
	"smartpet-backend/internal/utils"
)

// PostDetail is one post as the detail page shows it: health info without
// the proof marker, the proof URL on its own.
type PostDetail struct {
	models.Post
	VaccinationProofURL string `json:"vaccination_proof_url,omitempty"`
	LikeCount           int64  `json:"like_count"`
	CommentCount        int64  `json:"comment_count"`
	Liked               bool   `json:"liked"`
}

// DeleteReport records what a delete removed. StorageErr collects object
// removal failures, which never stop the delete.
type DeleteReport struct {
	CommentsDeleted int64    `json:"comments_deleted"`
	VotesDeleted    int64    `json:"votes_deleted"`
	ObjectsRemoved  []string `json:"objects_removed"`
	StorageErr      error    `json:"-"`
}

type PostService struct {
	Store   *repository.Store
	Storage *storage.Storage
	Cache   *cache.QueryCache
	Log     *zap.Logger
	Now     func() time.Time
}

func NewPostService(store *repository.Store, st *storage.Storage, qc *cache.QueryCache, log *zap.Logger) *PostService {
	return &PostService{Store: store, Storage: st, Cache: qc, Log: log, Now: func() time.Time { return time.Now().UTC() }}
}

// Detail loads exactly one post. viewer may be empty.
func (s *PostService) Detail(ctx context.Context, id bson.ObjectID, viewer string) (PostDetail, error) {
	p, err := s.Store.Posts.FindByID(ctx, id)
	if err != nil {
		return PostDetail{}, notFoundOr(err, "post")
	}

	d := PostDetail{Post: p}
	d.HealthInfo, d.VaccinationProofURL = s.parseHealthInfo(p.HealthInfo)

	if d.LikeCount, err = s.Store.Votes.Count(ctx, id); err != nil {
		return PostDetail{}, fmt.Errorf("count votes: %w", err)
	}
	if d.CommentCount, err = s.Store.Comments.Count(ctx, id); err != nil {
		return PostDetail{}, fmt.Errorf("count comments: %w", err)
	}
	if viewer != "" {
		if d.Liked, err = s.Store.Votes.Exists(ctx, viewer, id); err != nil {
			return PostDetail{}, fmt.Errorf("vote lookup: %w", err)
		}
	}
	return d, nil
}

// Delete removes a post owned by caller. Comments and votes go first and any
// failure there aborts; stored images are removed best effort; the post row
// goes last. The steps are not transactional.
func (s *PostService) Delete(ctx context.Context, id bson.ObjectID, caller string) (DeleteReport, error) {
	var rep DeleteReport
	if caller == "" {
		return rep, ErrUnauthenticated
	}
	p, err := s.Store.Posts.FindByID(ctx, id)
	if err != nil {
		return rep, notFoundOr(err, "post")
	}
	if p.UserID != caller {
		return rep, fmt.Errorf("post %s belongs to another user: %w", id.Hex(), ErrForbidden)
	}

	if rep.CommentsDeleted, err = s.Store.Comments.DeleteByPost(ctx, id); err != nil {
		return rep, fmt.Errorf("delete comments: %w", err)
	}
	if rep.VotesDeleted, err = s.Store.Votes.DeleteByPost(ctx, id); err != nil {
		return rep, fmt.Errorf("delete votes: %w", err)
	}

	for _, key := range s.objectKeys(p) {
		if err := s.Storage.Remove(ctx, key); err != nil {
			rep.StorageErr = multierr.Append(rep.StorageErr, err)
			continue
		}
		rep.ObjectsRemoved = append(rep.ObjectsRemoved, key)
	}
	if rep.StorageErr != nil {
		s.Log.Warn("post images not fully removed",
			zap.String("post_id", id.Hex()),
			zap.Errors("errors", multierr.Errors(rep.StorageErr)))
	}

	if err := s.Store.Posts.Delete(ctx, id); err != nil {
		return rep, notFoundOr(fmt.Errorf("delete post: %w", err), "post")
	}
	invalidatePosts(s.Cache)
	s.Log.Info("post deleted",
		zap.String("post_id", id.Hex()),
		zap.Int64("comments", rep.CommentsDeleted),
		zap.Int64("votes", rep.VotesDeleted))
	return rep, nil
}

// parseHealthInfo also accepts proof URLs of this server's own storage, which
// are plain http in local setups.
func (s *PostService) parseHealthInfo(healthInfo string) (clean, proofURL string) {
	return utils.ParseHealthInfo(healthInfo, s.Storage.PublicURL(""))
}

// objectKeys lists the storage keys a post references: main image, extra
// photos, then the vaccination proof. URLs outside this storage are skipped,
// and the proof must name a proof object.
func (s *PostService) objectKeys(p models.Post) []string {
	var keys []string
	add := func(u, prefix string) {
		if !s.Storage.Owns(u) {
			return
		}
		if k := utils.StorageKeyFromURL(u); k != "" && strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	add(p.ImageURL, "")
	for _, u := range p.AdditionalPhotos {
		add(u, "")
	}
	_, proof := s.parseHealthInfo(p.HealthInfo)
	add(proof, vaccinationProofPrefix)
	return keys
}

// invalidatePosts drops every cached post listing.
func invalidatePosts(qc *cache.QueryCache) {
	if qc == nil {
		return
	}
	qc.Invalidate(
		cache.Invalidation{Query: cache.QueryPosts},
		cache.Invalidation{Query: cache.QueryCommunityPosts},
	)
}
