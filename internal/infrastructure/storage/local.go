package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/fastbite/ordering-api/internal/api/metrics"
	"github.com/fastbite/ordering-api/internal/core/ports"
)

// LocalStore saves uploaded images on the local filesystem. Filenames are
// derived from a fresh UUID so uploads never collide or overwrite.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed and returns a store
// rooted there.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes the image to disk under a generated name and returns that name.
// Only image content types are accepted.
func (s *LocalStore) Save(ctx context.Context, originalName, contentType string, r io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ports.ErrNotImage
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	filename := uuid.NewString() + "_card" + ext

	f, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}

	metrics.UploadsStoredTotal.Inc()
	return filename, nil
}

// Remove deletes a stored image. A missing file is not an error.
func (s *LocalStore) Remove(ctx context.Context, filename string) error {
	if filename == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}
