// Package storage stages generated files awaiting download, either on
// the local filesystem or in an S3-compatible object store.
package storage

import "context"

type Storage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, error)
	// Delete is best effort; staged files are transient by design.
	Delete(ctx context.Context, key string) error
}
