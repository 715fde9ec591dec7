package service

import (
	"context"
	"io"
)

// ImageStore defines the interface for product image blob storage.
type ImageStore interface {
	// Upload streams image bytes to the bucket under the given key and
	// returns the public reference URL for the stored object.
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}
