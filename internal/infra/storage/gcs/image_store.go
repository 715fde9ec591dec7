// Package gcs implements the product image store on a Cloud Storage bucket
// through the gocloud.dev blob portability layer.
package gcs

import (
	"context"
	"io"
	"log/slog"

	"chocoshop/config"
	"chocoshop/internal/domain/lifecycle"
	"chocoshop/internal/domain/service"
	"chocoshop/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/gcsblob" // register the gs:// bucket scheme
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// imageStore is a concrete implementation of the ImageStore interface
// backed by a blob bucket.
type imageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// New opens the configured bucket and returns it as a service.ImageStore.
func New(params Params) (service.ImageStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, "gs://"+params.Config.Storage.Bucket)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing image bucket")

			return errors.Wrap(bucket.Close(), "failed to close image bucket")
		},
	})

	return &imageStore{
		bucket:        bucket,
		publicBaseURL: params.Config.Storage.PublicBaseURL,
	}, nil
}

// Upload streams the image bytes to the bucket under the given key and
// returns the public reference URL. The write is not committed until the
// writer is closed, so a failed upload leaves no partial object behind.
func (s *imageStore) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, body); err != nil {
		// Abort the write; Close still has to run to release the writer.
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to copy image bytes")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to commit image write")
	}

	return s.publicBaseURL + "/" + key, nil
}
