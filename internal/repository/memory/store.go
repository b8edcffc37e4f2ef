// Package memory is an in-process backend with the same contracts as the
// MongoDB repositories. Used by tests and by DB_DRIVER=memory.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"smartpet-backend/internal/cursor"
	"smartpet-backend/internal/models"
	"smartpet-backend/internal/repository"
)

// DB holds every collection behind one lock.
type DB struct {
	mu          sync.RWMutex
	posts       map[bson.ObjectID]models.Post
	votes       map[voteKey]models.Vote
	comments    map[bson.ObjectID]models.Comment
	communities map[bson.ObjectID]models.Community
	users       map[string]models.UserProfile
	badges      []models.Badge

	feed *changeFeed
	now  func() time.Time
}

type voteKey struct {
	user string
	post bson.ObjectID
}

func NewDB() *DB {
	return &DB{
		posts:       map[bson.ObjectID]models.Post{},
		votes:       map[voteKey]models.Vote{},
		comments:    map[bson.ObjectID]models.Comment{},
		communities: map[bson.ObjectID]models.Community{},
		users:       map[string]models.UserProfile{},
		feed:        newChangeFeed(),
		now:         func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// NewStore returns a Store backed by a fresh DB.
func NewStore() (*repository.Store, *DB) {
	db := NewDB()
	return db.Store(), db
}

func (db *DB) Store() *repository.Store {
	return &repository.Store{
		Posts:       postRepo{db},
		Votes:       voteRepo{db},
		Comments:    commentRepo{db},
		Communities: communityRepo{db},
		Users:       userRepo{db},
		Badges:      badgeRepo{db},
		Changes:     db.feed,
	}
}

// AwardBadge seeds a badge. Badges are granted out of band.
func (db *DB) AwardBadge(b models.Badge) {
	db.mu.Lock()
	defer db.mu.Unlock()
	if b.ID.IsZero() {
		b.ID = bson.NewObjectID()
	}
	db.badges = append(db.badges, b)
}

// UpdatePost replaces a stored post and emits an update notification.
func (db *DB) UpdatePost(p models.Post) error {
	db.mu.Lock()
	if _, ok := db.posts[p.ID]; !ok {
		db.mu.Unlock()
		return fmt.Errorf("post %s: %w", p.ID.Hex(), repository.ErrNotFound)
	}
	db.posts[p.ID] = p
	db.mu.Unlock()
	db.feed.publish(models.PostChange{Op: models.OpUpdate, PostID: p.ID})
	return nil
}

// ---------- posts ----------

type postRepo struct{ db *DB }

func (r postRepo) List(ctx context.Context, f models.PostFilter) ([]models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	out := []models.Post{}
	for _, p := range r.db.posts {
		if f.Matches(p) {
			p.Normalize()
			out = append(out, p)
		}
	}
	r.db.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.Hex() > out[j].ID.Hex()
	})
	return out, nil
}

func (r postRepo) FindByID(ctx context.Context, id bson.ObjectID) (models.Post, error) {
	if err := ctx.Err(); err != nil {
		return models.Post{}, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	p, ok := r.db.posts[id]
	if !ok {
		return models.Post{}, fmt.Errorf("post %s: %w", id.Hex(), repository.ErrNotFound)
	}
	p.Normalize()
	return p, nil
}

func (r postRepo) Insert(ctx context.Context, p *models.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = r.db.now()
	}
	r.db.mu.Lock()
	if _, ok := r.db.posts[p.ID]; ok {
		r.db.mu.Unlock()
		return repository.ErrDuplicate
	}
	r.db.posts[p.ID] = *p
	r.db.mu.Unlock()
	r.db.feed.publish(models.PostChange{Op: models.OpInsert, PostID: p.ID})
	return nil
}

func (r postRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	if _, ok := r.db.posts[id]; !ok {
		r.db.mu.Unlock()
		return fmt.Errorf("post %s: %w", id.Hex(), repository.ErrNotFound)
	}
	delete(r.db.posts, id)
	r.db.mu.Unlock()
	r.db.feed.publish(models.PostChange{Op: models.OpDelete, PostID: id})
	return nil
}

// ---------- votes ----------

type voteRepo struct{ db *DB }

func (r voteRepo) PostRefs(ctx context.Context) ([]bson.ObjectID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := make([]bson.ObjectID, 0, len(r.db.votes))
	for _, v := range r.db.votes {
		out = append(out, v.PostID)
	}
	return out, nil
}

func (r voteRepo) CountByPosts(ctx context.Context, postIDs []bson.ObjectID) (map[bson.ObjectID]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	want := idSet(postIDs)
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := make(map[bson.ObjectID]int, len(postIDs))
	for _, v := range r.db.votes {
		if _, ok := want[v.PostID]; ok {
			out[v.PostID]++
		}
	}
	return out, nil
}

func (r voteRepo) Count(ctx context.Context, postID bson.ObjectID) (int64, error) {
	m, err := r.CountByPosts(ctx, []bson.ObjectID{postID})
	return int64(m[postID]), err
}

func (r voteRepo) Exists(ctx context.Context, userID string, postID bson.ObjectID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	_, ok := r.db.votes[voteKey{userID, postID}]
	return ok, nil
}

func (r voteRepo) Insert(ctx context.Context, v models.Vote) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	k := voteKey{v.UserID, v.PostID}
	if _, ok := r.db.votes[k]; ok {
		return true, nil
	}
	if v.ID.IsZero() {
		v.ID = bson.NewObjectID()
	}
	r.db.votes[k] = v
	return false, nil
}

func (r voteRepo) Delete(ctx context.Context, userID string, postID bson.ObjectID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	k := voteKey{userID, postID}
	if _, ok := r.db.votes[k]; !ok {
		return false, nil
	}
	delete(r.db.votes, k)
	return true, nil
}

func (r voteRepo) DeleteByPost(ctx context.Context, postID bson.ObjectID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var n int64
	for k := range r.db.votes {
		if k.post == postID {
			delete(r.db.votes, k)
			n++
		}
	}
	return n, nil
}

// ---------- comments ----------

type commentRepo struct{ db *DB }

func (r commentRepo) PostRefs(ctx context.Context) ([]bson.ObjectID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := make([]bson.ObjectID, 0, len(r.db.comments))
	for _, c := range r.db.comments {
		out = append(out, c.PostID)
	}
	return out, nil
}

func (r commentRepo) CountByPosts(ctx context.Context, postIDs []bson.ObjectID) (map[bson.ObjectID]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	want := idSet(postIDs)
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	out := make(map[bson.ObjectID]int, len(postIDs))
	for _, c := range r.db.comments {
		if _, ok := want[c.PostID]; ok {
			out[c.PostID]++
		}
	}
	return out, nil
}

func (r commentRepo) Count(ctx context.Context, postID bson.ObjectID) (int64, error) {
	m, err := r.CountByPosts(ctx, []bson.ObjectID{postID})
	return int64(m[postID]), err
}

func (r commentRepo) Create(ctx context.Context, c *models.Comment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.db.now()
	}
	// stored timestamps carry millisecond precision, same as BSON dates
	c.CreatedAt = c.CreatedAt.Truncate(time.Millisecond)
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.comments[c.ID] = *c
	return nil
}

func (r commentRepo) FindByID(ctx context.Context, id bson.ObjectID) (models.Comment, error) {
	if err := ctx.Err(); err != nil {
		return models.Comment{}, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	c, ok := r.db.comments[id]
	if !ok {
		return models.Comment{}, fmt.Errorf("comment %s: %w", id.Hex(), repository.ErrNotFound)
	}
	return c, nil
}

func (r commentRepo) ListByPostNewestFirst(
	ctx context.Context,
	postID bson.ObjectID,
	cursorStr string,
	limit int64,
) ([]models.Comment, *string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	var (
		curT   time.Time
		curID  bson.ObjectID
		paging = cursorStr != ""
	)
	if paging {
		t, id, err := cursor.DecodeCommentCursor(cursorStr)
		if err != nil {
			return nil, nil, err
		}
		curT, curID = t, id
	}

	r.db.mu.RLock()
	all := []models.Comment{}
	for _, c := range r.db.comments {
		if c.PostID != postID {
			continue
		}
		if paging && !cursor.Before(c.CreatedAt, c.ID, curT, curID) {
			continue
		}
		all = append(all, c)
	}
	r.db.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID.Hex() > all[j].ID.Hex()
	})

	if int64(len(all)) > limit {
		items := all[:limit]
		last := items[len(items)-1]
		s := cursor.EncodeCommentCursor(last.CreatedAt, last.ID)
		return items, &s, nil
	}
	return all, nil, nil
}

func (r commentRepo) DeleteOwned(ctx context.Context, id bson.ObjectID, userID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c, ok := r.db.comments[id]
	if !ok || c.UserID != userID {
		return false, nil
	}
	delete(r.db.comments, id)
	return true, nil
}

func (r commentRepo) DeleteByPost(ctx context.Context, postID bson.ObjectID) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var n int64
	for id, c := range r.db.comments {
		if c.PostID == postID {
			delete(r.db.comments, id)
			n++
		}
	}
	return n, nil
}

// ---------- communities ----------

type communityRepo struct{ db *DB }

func (r communityRepo) Create(ctx context.Context, c *models.Community) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = r.db.now()
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.communities[c.ID] = *c
	return nil
}

func (r communityRepo) List(ctx context.Context) ([]models.Community, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	out := make([]models.Community, 0, len(r.db.communities))
	for _, c := range r.db.communities {
		out = append(out, c)
	}
	r.db.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r communityRepo) FindByID(ctx context.Context, id bson.ObjectID) (models.Community, error) {
	if err := ctx.Err(); err != nil {
		return models.Community{}, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	c, ok := r.db.communities[id]
	if !ok {
		return models.Community{}, fmt.Errorf("community %s: %w", id.Hex(), repository.ErrNotFound)
	}
	return c, nil
}

// ---------- users & badges ----------

type userRepo struct{ db *DB }

func (r userRepo) FindByID(ctx context.Context, id string) (models.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return models.UserProfile{}, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()
	u, ok := r.db.users[id]
	if !ok {
		return models.UserProfile{}, fmt.Errorf("user %s: %w", id, repository.ErrNotFound)
	}
	u.Normalize()
	return u, nil
}

func (r userRepo) Insert(ctx context.Context, u models.UserProfile) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.users[u.ID]; ok {
		return true, nil
	}
	r.db.users[u.ID] = u
	return false, nil
}

func (r userRepo) Update(ctx context.Context, id string, patch models.ProfilePatch) (models.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return models.UserProfile{}, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[id]
	if !ok {
		return models.UserProfile{}, fmt.Errorf("user %s: %w", id, repository.ErrNotFound)
	}
	if patch.Bio != nil {
		u.Bio = *patch.Bio
	}
	if patch.Location != nil {
		u.Location = *patch.Location
	}
	if patch.Favorites != nil {
		u.Favorites = append([]string{}, (*patch.Favorites)...)
	}
	r.db.users[id] = u
	u.Normalize()
	return u, nil
}

type badgeRepo struct{ db *DB }

func (r badgeRepo) ListByUser(ctx context.Context, userID string) ([]models.Badge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	out := []models.Badge{}
	for _, b := range r.db.badges {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	r.db.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].AwardedAt.After(out[j].AwardedAt) })
	return out, nil
}

func idSet(ids []bson.ObjectID) map[bson.ObjectID]struct{} {
	m := make(map[bson.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}
