// Package realtime turns the posts change feed into cache invalidations,
// feed refreshes and stream events.
package realtime

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"smartpet-backend/internal/models"
	"smartpet-backend/internal/repository"
)

// Handler reacts to one change notification.
type Handler func(ctx context.Context, ch models.PostChange)

type Listener struct {
	source  repository.ChangeSource
	handler Handler
	log     *zap.Logger
}

func NewListener(source repository.ChangeSource, handler Handler, log *zap.Logger) *Listener {
	return &Listener{source: source, handler: handler, log: log}
}

// Subscribe opens the change stream and starts delivering notifications to
// the handler until Unsubscribe is called.
func (l *Listener) Subscribe(ctx context.Context) (*Subscription, error) {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stream, err := l.source.WatchPosts(runCtx)
	if err != nil {
		cancel()
		return nil, err
	}
	s := &Subscription{
		stream: stream,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.active.Store(true)
	go l.run(runCtx, s)
	l.log.Info("subscribed to post changes")
	return s, nil
}

func (l *Listener) run(ctx context.Context, s *Subscription) {
	defer close(s.done)
	for {
		ch, err := s.stream.Next(ctx)
		if err != nil {
			if ctx.Err() == nil && !errors.Is(err, io.EOF) {
				l.log.Error("post change stream failed", zap.Error(err))
			}
			return
		}
		l.log.Debug("post changed", zap.String("op", string(ch.Op)), zap.String("post_id", ch.PostID.Hex()))
		l.handler(ctx, ch)
	}
}

// Subscription is either subscribed or unsubscribed; it never returns to
// subscribed once released.
type Subscription struct {
	stream repository.ChangeStream
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
	active atomic.Bool
}

func (s *Subscription) Active() bool { return s.active.Load() }

// Done is closed once delivery has stopped, either after Unsubscribe or
// because the stream ended.
func (s *Subscription) Done() <-chan struct{} { return s.done }

// Unsubscribe stops delivery and closes the stream. Calls after the first are no-ops.
func (s *Subscription) Unsubscribe(ctx context.Context) error {
	var err error
	s.once.Do(func() {
		s.active.Store(false)
		s.cancel()
		<-s.done
		err = s.stream.Close(ctx)
	})
	return err
}
