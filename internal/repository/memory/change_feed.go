package memory

import (
	"context"
	"io"
	"sync"

	"smartpet-backend/internal/models"
	"smartpet-backend/internal/repository"
)

const streamBuffer = 64

// changeFeed fans post mutations out to every open stream. A stream whose
// buffer is full drops the notification.
type changeFeed struct {
	mu      sync.Mutex
	streams map[*stream]struct{}
}

func newChangeFeed() *changeFeed {
	return &changeFeed{streams: map[*stream]struct{}{}}
}

func (f *changeFeed) WatchPosts(ctx context.Context) (repository.ChangeStream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := &stream{feed: f, ch: make(chan models.PostChange, streamBuffer), done: make(chan struct{})}
	f.mu.Lock()
	f.streams[s] = struct{}{}
	f.mu.Unlock()
	return s, nil
}

func (f *changeFeed) publish(ch models.PostChange) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for s := range f.streams {
		select {
		case s.ch <- ch:
		default:
		}
	}
}

// Streams is the number of open watchers.
func (db *DB) Streams() int {
	db.feed.mu.Lock()
	defer db.feed.mu.Unlock()
	return len(db.feed.streams)
}

type stream struct {
	feed *changeFeed
	ch   chan models.PostChange
	done chan struct{}
	once sync.Once
}

func (s *stream) Next(ctx context.Context) (models.PostChange, error) {
	select {
	case ch := <-s.ch:
		return ch, nil
	case <-s.done:
		return models.PostChange{}, io.EOF
	case <-ctx.Done():
		return models.PostChange{}, ctx.Err()
	}
}

func (s *stream) Close(context.Context) error {
	s.once.Do(func() {
		s.feed.mu.Lock()
		delete(s.feed.streams, s)
		s.feed.mu.Unlock()
		close(s.done)
	})
	return nil
}
