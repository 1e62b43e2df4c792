package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"pneutrack/backend/internal/apperrors"
)

// Allowed upload extensions. Enforced here, at the storage boundary, so no
// attachment record ever points at a rejected file.
var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"pdf":  true,
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// LocalStore persists attachment blobs on the local filesystem. Each upload
// gets a fresh timestamp-prefixed name, so there is nothing to lock.
type LocalStore struct {
	dir string

	// now is swappable for tests
	now func() time.Time
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &LocalStore{dir: dir, now: time.Now}, nil
}

// Allowed reports whether the filename carries an accepted extension
func Allowed(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return allowedExtensions[ext]
}

// SanitizeName strips path components and unsafe characters from an
// uploaded filename
func SanitizeName(filename string) string {
	name := filepath.Base(filename)
	name = unsafeChars.ReplaceAllString(name, "_")
	return strings.Trim(name, "._")
}

// Save writes the bytes under a generated unique name and returns it.
// Files with extensions outside the allowed set are rejected with
// ErrUnsupportedMedia.
func (s *LocalStore) Save(originalName string, data []byte) (string, error) {
	if !Allowed(originalName) {
		return "", fmt.Errorf("file %q: %w", originalName, apperrors.ErrUnsupportedMedia)
	}

	storedName := fmt.Sprintf("%d_%s", s.now().Unix(), SanitizeName(originalName))
	path := filepath.Join(s.dir, storedName)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to store file: %w", err)
	}
	return storedName, nil
}

// Open returns the stored file's bytes
func (s *LocalStore) Open(storedName string) ([]byte, error) {
	// stored names are generated by Save, reject anything path-like
	if storedName != filepath.Base(storedName) {
		return nil, fmt.Errorf("file %q: %w", storedName, apperrors.ErrNotFound)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, storedName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file %q: %w", storedName, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read stored file: %w", err)
	}
	return data, nil
}
