package ports

import (
	"context"
	"errors"
	"io"
)

// ErrNotImage is returned by ImageStore.Save when the uploaded file is not
// an image.
var ErrNotImage = errors.New("uploaded file is not an image")

// ImageStore persists uploaded images and exposes them by filename.
type ImageStore interface {
	Save(ctx context.Context, originalName, contentType string, r io.Reader) (filename string, err error)
	Remove(ctx context.Context, filename string) error
}
