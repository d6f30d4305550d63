package sitegen

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned by ObjectStorage implementations for missing keys.
var ErrObjectNotFound = errors.New("object not found")

// ObjectStorage abstracts where published sites are kept (R2/S3/memory).
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, mimeType string) (StoredObject, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// StoredObject captures persisted blob metadata.
type StoredObject struct {
	Key      string
	Size     int64
	MimeType string
	ETag     string
}
