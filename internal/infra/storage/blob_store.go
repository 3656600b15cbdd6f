// Package storage implements the durable key-value store behind the client-side collections and session token.
package storage

import (
	"context"
	"log/slog"

	"solarsavers/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const jsonContentType = "application/json"

// blobStore keeps one object per key in a gocloud bucket.
type blobStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewFileStore opens a directory-backed store, creating the directory if needed.
// fileblob writes through a temp file and rename, so a reader never sees a partial value.
func NewFileStore(dir string, logger *slog.Logger) (repository.KeyValueStore, error) {
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "open file bucket %s", dir)
	}

	return &blobStore{bucket: bucket, logger: logger}, nil
}

// NewMemoryStore returns a process-local store. Values vanish on exit.
func NewMemoryStore(logger *slog.Logger) repository.KeyValueStore {
	return &blobStore{bucket: memblob.OpenBucket(nil), logger: logger}
}

// NewBucketStore wraps an already opened bucket.
func NewBucketStore(bucket *blob.Bucket, logger *slog.Logger) repository.KeyValueStore {
	return &blobStore{bucket: bucket, logger: logger}
}

func (s *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "read key %s", key)
	}

	return data, nil
}

func (s *blobStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.bucket.WriteAll(ctx, key, value, &blob.WriterOptions{ContentType: jsonContentType}); err != nil {
		return errors.Wrapf(err, "write key %s", key)
	}
	s.logger.Debug("Stored key", slog.String("key", key), slog.Int("bytes", len(value)))

	return nil
}

func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "delete key %s", key)
	}
	s.logger.Debug("Deleted key", slog.String("key", key))

	return nil
}

func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
