// Package media stores fetched media objects in a Go CDK blob bucket.
package media

import (
	"context"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Blob drivers are registered by their URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// blobStore implements MediaStore on top of a gocloud blob bucket, so local
// disk and Cloud Storage are interchangeable through the bucket URL.
type blobStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Params holds dependencies for the media store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns it as a MediaStore.
func New(params Params) (service.MediaStore, error) {
	if params.Config.Media == nil || params.Config.Media.BucketURL == "" {
		return nil, errors.New("media bucket URL must be configured")
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open media bucket %s", params.Config.Media.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{
		bucket: bucket,
		logger: params.Logger,
	}, nil
}

// Save writes the object under the given key and returns the stored key.
func (s *blobStore) Save(ctx context.Context, key, contentType string, data []byte) (string, error) {
	opts := &blob.WriterOptions{
		ContentType: contentType,
	}

	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write media object %s", key)
	}

	s.logger.Info("Media object stored",
		slog.String("key", key),
		slog.Int("size", len(data)),
	)

	return key, nil
}
