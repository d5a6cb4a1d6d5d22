// Package blob implements the key-value store on top of a gocloud.dev bucket.
package blob

import (
	"context"
	"log/slog"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const contentType = "application/json"

// kvStore implements repository.KeyValueStore; every key is one object in the bucket.
type kvStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// OpenBucket opens a bucket from a URL such as mem:// or file:///var/lib/storefront.
func OpenBucket(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return bucket, nil
}

// NewKeyValueStore wraps an opened bucket.
func NewKeyValueStore(bucket *blob.Bucket, logger *slog.Logger) repository.KeyValueStore {
	return &kvStore{
		bucket: bucket,
		logger: logger,
	}
}

// Get reads the object stored under key.
func (s *kvStore) Get(ctx context.Context, key string) (string, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", repository.ErrKeyNotFound
		}

		return "", errors.Wrapf(err, "failed to read key %s", key)
	}

	return string(data), nil
}

// Set writes value under key; the write is complete when Set returns nil.
func (s *kvStore) Set(ctx context.Context, key, value string) error {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, []byte(value), opts); err != nil {
		return errors.Wrapf(err, "failed to write key %s", key)
	}

	s.logger.Debug("Key-value entry written",
		slog.String("key", key),
		slog.Int("bytes", len(value)),
	)

	return nil
}
