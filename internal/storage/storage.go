// Package storage keeps uploaded post images. A Bucket is one named object
// namespace; Storage pairs it with the public URL scheme served by
// GET /storage/:bucket/:key.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
)

var (
	ErrObjectNotFound = errors.New("object not found")
	ErrInvalidKey     = errors.New("invalid object key")
)

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key         string
	ContentType string
	Size        int64
}

type Bucket interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	Remove(ctx context.Context, key string) error
}

type Storage struct {
	name    string
	baseURL string
	bucket  Bucket
}

func New(name, baseURL string, b Bucket) *Storage {
	return &Storage{name: name, baseURL: strings.TrimRight(baseURL, "/"), bucket: b}
}

func (s *Storage) Name() string { return s.name }

// PublicURL is the address the object is served from.
func (s *Storage) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/%s/%s", s.baseURL, s.name, url.PathEscape(key))
}

// Owns reports whether raw is one of this storage's public URLs.
func (s *Storage) Owns(raw string) bool {
	return strings.HasPrefix(raw, s.PublicURL(""))
}

// Put uploads r under key and returns its public URL.
func (s *Storage) Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	if err := ValidateKey(key); err != nil {
		return "", err
	}
	if err := s.bucket.Upload(ctx, key, r, contentType); err != nil {
		return "", fmt.Errorf("upload %s/%s: %w", s.name, key, err)
	}
	return s.PublicURL(key), nil
}

func (s *Storage) Open(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	if err := ValidateKey(key); err != nil {
		return nil, ObjectInfo{}, err
	}
	return s.bucket.Open(ctx, key)
}

func (s *Storage) Remove(ctx context.Context, key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if err := s.bucket.Remove(ctx, key); err != nil {
		return fmt.Errorf("remove %s/%s: %w", s.name, key, err)
	}
	return nil
}

// ValidateKey accepts flat keys only.
func ValidateKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) || strings.ContainsRune(key, 0) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
