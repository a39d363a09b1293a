// Package filestore persists uploaded accident images on the local filesystem.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/headmetal/headware-backend/internal/domain"
)

// Store writes uploaded files into a fixed directory. A file with the same
// name overwrites the previous one; the stored name is returned to the
// caller so clients can reference the image later.
type Store struct {
	dir string
}

// New creates a Store rooted at dir. The directory is created lazily on
// the first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes the file content under the sanitized filename and returns the
// stored name. Filenames are reduced to their base component so callers
// cannot escape the storage directory.
func (s *Store) Save(filename string, content io.Reader) (string, error) {
	name := filepath.Base(filepath.Clean(filename))
	if name == "." || name == ".." || name == string(filepath.Separator) || strings.TrimSpace(name) == "" {
		return "", domain.NewValidationError("filename", "invalid filename")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("filestore: create dir %s: %w", s.dir, err)
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("filestore: create %s: %w", name, err)
	}

	if _, err := io.Copy(dst, content); err != nil {
		dst.Close()
		return "", fmt.Errorf("filestore: write %s: %w", name, err)
	}

	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("filestore: close %s: %w", name, err)
	}

	return name, nil
}
