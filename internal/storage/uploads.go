// Package storage persists uploaded report images on local disk.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTooLarge = errors.New("image exceeds the maximum upload size")
	ErrNotImage = errors.New("only image uploads are accepted")
)

type UploadStore struct {
	dir     string
	maxSize int64
}

// NewUploadStore creates the upload directory if needed.
func NewUploadStore(dir string, maxSize int64) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &UploadStore{dir: dir, maxSize: maxSize}, nil
}

// Dir is the directory uploads are written to, for the static file server.
func (s *UploadStore) Dir() string { return s.dir }

// SaveImage writes an uploaded image under a generated unique filename and
// returns its path relative to the serving root.
func (s *UploadStore) SaveImage(file multipart.File, header *multipart.FileHeader) (string, error) {
	if header.Size > s.maxSize {
		return "", ErrTooLarge
	}
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotImage
	}

	ext := filepath.Ext(header.Filename)
	name := fmt.Sprintf("%d-%s%s", time.Now().Unix(), uuid.NewString()[:8], ext)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(file, s.maxSize+1)); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return "uploads/" + name, nil
}

// Remove deletes a stored image by its relative path. Used to clean up after
// a failed report insert.
func (s *UploadStore) Remove(relPath string) error {
	name := filepath.Base(relPath)
	return os.Remove(filepath.Join(s.dir, name))
}
