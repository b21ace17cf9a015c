package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Errors surfaced to callers as client-visible upload rejections.
var (
	ErrFileType     = errors.New("only image files (jpeg, jpg, png, webp) are allowed")
	ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")
)

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".webp": true,
}

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// Store persists uploaded images under a fixed root directory.
// The root is injected at construction and never derived at call time.
type Store struct {
	root string
}

// New creates the storage root if needed and returns a Store bound to it
func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{root: root}, nil
}

// Root returns the storage root directory
func (s *Store) Root() string {
	return s.root
}

// Save validates and persists an uploaded image, returning the generated
// filename. The name is collision-resistant: <field>-<uuid><ext>.
func (s *Store) Save(fh *multipart.FileHeader, field string, maxSize int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", ErrFileType
	}
	// The declared content type must be an allowed image type as well.
	if ct := fh.Header.Get("Content-Type"); ct != "" && !allowedMimeTypes[ct] {
		return "", ErrFileType
	}
	if fh.Size > maxSize {
		return "", ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := field + "-" + uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return name, nil
}

// Remove deletes a stored file by name. A missing file is not an error.
func (s *Store) Remove(name string) error {
	if name == "" {
		return nil
	}
	// Reject anything that would escape the storage root.
	if filepath.Base(name) != name {
		return fmt.Errorf("invalid filename: %q", name)
	}
	err := os.Remove(filepath.Join(s.root, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// IsRejection reports whether err is a client-visible upload rejection
// rather than an internal storage failure.
func IsRejection(err error) bool {
	return errors.Is(err, ErrFileType) || errors.Is(err, ErrFileTooLarge)
}
