package main

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"smartpet-backend/bootstrap"
	"smartpet-backend/config"
	"smartpet-backend/database"
	"smartpet-backend/internal/repository"
	"smartpet-backend/internal/repository/memory"
	"smartpet-backend/internal/storage"
)

// backend is the storage side of the server: the repositories and the image
// bucket, plus whatever has to be released on shutdown.
type backend struct {
	Store   *repository.Store
	Storage *storage.Storage
	client  *mongo.Client
}

func openBackend(ctx context.Context, cfg config.Config, log *zap.Logger) (*backend, error) {
	b := &backend{}

	var db *mongo.Database
	switch cfg.DBDriver {
	case config.DriverMongo:
		client, d, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB, log)
		if err != nil {
			return nil, err
		}
		b.client, db = client, d
		if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
			return nil, multierr.Append(fmt.Errorf("ensure indexes: %w", err), b.Close(ctx))
		}
		b.Store = repository.NewMongoStore(db)
	case config.DriverMemory:
		log.Warn("using in-memory store; data is lost on restart")
		b.Store, _ = memory.NewStore()
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.DBDriver)
	}

	var bucket storage.Bucket
	switch cfg.StorageDriver {
	case config.StorageGridFS:
		bucket = storage.NewGridFSBucket(db, config.PostImagesBucket)
	case config.StorageLocal:
		lb, err := storage.NewLocalBucket(cfg.StorageDir)
		if err != nil {
			return nil, multierr.Append(err, b.Close(ctx))
		}
		bucket = lb
	case config.StorageMemory:
		bucket = storage.NewMemoryBucket()
	default:
		return nil, multierr.Append(fmt.Errorf("unknown storage driver %q", cfg.StorageDriver), b.Close(ctx))
	}
	b.Storage = storage.New(config.PostImagesBucket, cfg.PublicBaseURL, bucket)

	log.Info("backend ready",
		zap.String("db", cfg.DBDriver),
		zap.String("storage", cfg.StorageDriver),
	)
	return b, nil
}

func (b *backend) Close(ctx context.Context) error {
	if b.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return b.client.Disconnect(ctx)
}
