// File: internal/storage/saver.go
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Saver is the capability to deliver bytes to the user's storage under a
// suggested name. The response processors only hand bytes and a name to this
// interface; they never touch persistent storage themselves, which keeps the
// save mechanism swappable per target platform.
type Saver interface {
	// Save writes data under the suggested name and returns the path (or
	// other platform reference) where it landed.
	Save(name string, data []byte) (string, error)
}

// LocalSaver writes documents into a directory on the local filesystem.
type LocalSaver struct {
	Dir string
}

// NewLocalSaver creates a saver rooted at dir, defaulting to the current
// directory.
func NewLocalSaver(dir string) *LocalSaver {
	if dir == "" {
		dir = "."
	}
	return &LocalSaver{Dir: dir}
}

// Save writes data under the suggested name inside the saver's directory.
// The name is sanitized to its base component so a hostile response header
// cannot traverse outside the directory.
func (s *LocalSaver) Save(name string, data []byte) (string, error) {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return "", fmt.Errorf("unusable file name %q", name)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", s.Dir, err)
	}

	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
