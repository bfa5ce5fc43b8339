package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrInvalidKey is returned for keys that escape the media root.
var ErrInvalidKey = errors.New("invalid storage key")

// Store persists uploaded media (item images, banners) and maps stored
// objects to browser-reachable URLs.
type Store interface {
	// Save writes the object under key and returns its public URL.
	Save(ctx context.Context, key string, r io.Reader) (string, error)
	// Delete removes the object under key. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
	// URL returns the public URL an object under key would be served at.
	URL(key string) string
}

// FileStore keeps media on the local filesystem under a single root
// directory, served by the HTTP server at /media/.
type FileStore struct {
	root    string
	baseURL string
}

// NewFileStore creates a FileStore rooted at dir. The directory is created
// if it does not exist.
func NewFileStore(dir, baseURL string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}
	return &FileStore{
		root:    dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// cleanKey normalizes a key and rejects anything that would resolve outside
// the media root.
func cleanKey(key string) (string, error) {
	cleaned := path.Clean("/" + key)
	if cleaned == "/" {
		return "", ErrInvalidKey
	}
	return strings.TrimPrefix(cleaned, "/"), nil
}

// Save writes the object under key, creating intermediate directories.
func (s *FileStore) Save(ctx context.Context, key string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rel, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	dst := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return s.URL(rel), nil
}

// Delete removes the object under key. A missing file is treated as success
// so deletes stay idempotent.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rel, err := cleanKey(key)
	if err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.root, filepath.FromSlash(rel))); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete media file: %w", err)
	}
	return nil
}

// URL maps a key to its public URL under the /media/ mount.
func (s *FileStore) URL(key string) string {
	rel, err := cleanKey(key)
	if err != nil {
		rel = key
	}
	return s.baseURL + "/media/" + rel
}

// Root returns the media root directory for the HTTP file server.
func (s *FileStore) Root() string {
	return s.root
}
