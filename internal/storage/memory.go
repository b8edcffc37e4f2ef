package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
)

type memObject struct {
	data        []byte
	contentType string
}

// MemoryBucket keeps objects in process memory.
type MemoryBucket struct {
	mu      sync.RWMutex
	objects map[string]memObject
}

func NewMemoryBucket() *MemoryBucket {
	return &MemoryBucket{objects: map[string]memObject{}}
}

func (b *MemoryBucket) Upload(ctx context.Context, key string, r io.Reader, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[key] = memObject{data: data, contentType: contentType}
	return nil
}

func (b *MemoryBucket) Open(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, ObjectInfo{}, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	o, ok := b.objects[key]
	if !ok {
		return nil, ObjectInfo{}, fmt.Errorf("%s: %w", key, ErrObjectNotFound)
	}
	info := ObjectInfo{Key: key, ContentType: o.contentType, Size: int64(len(o.data))}
	return io.NopCloser(bytes.NewReader(o.data)), info, nil
}

func (b *MemoryBucket) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.objects[key]; !ok {
		return fmt.Errorf("%s: %w", key, ErrObjectNotFound)
	}
	delete(b.objects, key)
	return nil
}

// Keys lists stored keys in no particular order.
func (b *MemoryBucket) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, 0, len(b.objects))
	for k := range b.objects {
		out = append(out, k)
	}
	return out
}
