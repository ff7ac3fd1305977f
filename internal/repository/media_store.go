package repository

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const uploadTimeout = 30 * time.Second

// Media is a stored file opened for reading. Close it when done.
type Media struct {
	io.ReadCloser
	ID          string
	Name        string
	ContentType string
	Length      int64
	UploadedAt  time.Time
}

// MediaStore keeps product images in a GridFS bucket.
type MediaStore struct {
	db     *mongo.Database
	bucket string
}

func NewMediaStore(db *mongo.Database, bucket string) *MediaStore {
	return &MediaStore{db: db, bucket: bucket}
}

// GridFS deadlines are per bucket, so each call opens its own.
func (s *MediaStore) open(ctx context.Context) (*gridfs.Bucket, error) {
	b, err := gridfs.NewBucket(s.db, options.GridFSBucket().SetName(s.bucket))
	if err != nil {
		return nil, errors.Wrap(err, "open bucket")
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := b.SetReadDeadline(deadline); err != nil {
			return nil, err
		}
		if err := b.SetWriteDeadline(deadline); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Upload stores r under filename and returns the file id.
func (s *MediaStore) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	b, err := s.open(ctx)
	if err != nil {
		return "", err
	}

	opts := options.GridFSUpload().SetMetadata(bson.D{{Key: "content_type", Value: contentType}})
	id, err := b.UploadFromStream(filename, r, opts)
	if err != nil {
		return "", errors.Wrapf(err, "upload %s", filename)
	}
	return id.Hex(), nil
}

// Open returns the file with the given id for streaming.
func (s *MediaStore) Open(ctx context.Context, id string) (*Media, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	b, err := s.open(ctx)
	if err != nil {
		return nil, err
	}

	ds, err := b.OpenDownloadStream(oid)
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open media %s", id)
	}

	f := ds.GetFile()
	m := &Media{
		ReadCloser:  ds,
		ID:          id,
		Name:        f.Name,
		ContentType: "application/octet-stream",
		Length:      f.Length,
		UploadedAt:  f.UploadDate,
	}
	if ct, ok := f.Metadata.Lookup("content_type").StringValueOK(); ok && ct != "" {
		m.ContentType = ct
	}
	return m, nil
}
