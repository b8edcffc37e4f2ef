package storage

import (
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/multierr"
)

// GridFSBucket stores objects in a MongoDB GridFS bucket; the object key is
// the GridFS filename and the newest revision wins.
type GridFSBucket struct {
	b *mongo.GridFSBucket
}

func NewGridFSBucket(db *mongo.Database, name string) *GridFSBucket {
	return &GridFSBucket{b: db.GridFSBucket(options.GridFSBucket().SetName(name))}
}

type gridFile struct {
	ID       bson.ObjectID `bson:"_id"`
	Length   int64         `bson:"length"`
	Metadata struct {
		ContentType string `bson:"contentType"`
	} `bson:"metadata"`
}

func (g *GridFSBucket) Upload(ctx context.Context, key string, r io.Reader, contentType string) error {
	opts := options.GridFSUpload().SetMetadata(bson.D{{Key: "contentType", Value: contentType}})
	_, err := g.b.UploadFromStream(ctx, key, r, opts)
	return err
}

func (g *GridFSBucket) files(ctx context.Context, key string) ([]gridFile, error) {
	opts := options.GridFSFind().SetSort(bson.D{{Key: "uploadDate", Value: -1}})
	cur, err := g.b.Find(ctx, bson.M{"filename": key}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []gridFile
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *GridFSBucket) Open(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	files, err := g.files(ctx, key)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	if len(files) == 0 {
		return nil, ObjectInfo{}, fmt.Errorf("%s: %w", key, ErrObjectNotFound)
	}
	f := files[0]
	ds, err := g.b.OpenDownloadStream(ctx, f.ID)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	ct := f.Metadata.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	return ds, ObjectInfo{Key: key, ContentType: ct, Size: f.Length}, nil
}

// Remove deletes every revision stored under key.
func (g *GridFSBucket) Remove(ctx context.Context, key string) error {
	files, err := g.files(ctx, key)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%s: %w", key, ErrObjectNotFound)
	}
	var errs error
	for _, f := range files {
		errs = multierr.Append(errs, g.b.Delete(ctx, f.ID))
	}
	return errs
}
