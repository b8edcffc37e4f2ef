package main

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"smartpet-backend/config"
)

func TestOpenBackendMemory(t *testing.T) {
	c := config.Default()
	c.DBDriver = config.DriverMemory
	c.StorageDriver = config.StorageLocal
	c.StorageDir = t.TempDir()

	b, err := openBackend(context.Background(), c, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer b.Close(context.Background())

	require.NotNil(t, b.Store.Posts)
	require.NotNil(t, b.Store.Changes)
	assert.Equal(t, config.PostImagesBucket, b.Storage.Name())

	url, err := b.Storage.Put(context.Background(), "a.txt", bytes.NewBufferString("hi"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/storage/post-images/a.txt", url)

	rc, _, err := b.Storage.Open(context.Background(), "a.txt")
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(got))
}

func TestOpenBackendUnknownStorage(t *testing.T) {
	c := config.Default()
	c.DBDriver = config.DriverMemory
	c.StorageDriver = "s3"

	_, err := openBackend(context.Background(), c, zaptest.NewLogger(t))
	assert.ErrorContains(t, err, "unknown storage driver")
}

func TestServeRequiresSecret(t *testing.T) {
	cfg = config.Default()
	cfg.DBDriver = config.DriverMemory
	cfg.StorageDriver = config.StorageMemory
	logger = zaptest.NewLogger(t)

	assert.EqualError(t, serve(context.Background()), "JWT_SECRET is required")
}
