package service

import (
	"context"
	"io"
)

// Uploader is the object-storage port: push a file, get back a public URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
