// Package adapter contains infrastructure adapters for the fixtkit CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	m "fixtkit.dev/pkg/fixtkit/internal/model"
)

// FSAdapter abstracts the filesystem operations the domain layer relies on so
// workflow logic can be tested without touching the disk.
type FSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to path, creating parent directories as needed.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalFSAdapter implements FSAdapter on the local disk.
type LocalFSAdapter struct{}

// NewLocalFSAdapter constructs a LocalFSAdapter.
func NewLocalFSAdapter() *LocalFSAdapter {
	return &LocalFSAdapter{}
}

// ReadFile reads the named file. Directories are rejected.
func (a *LocalFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	info, err := a.FileInfo(path)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}

// WriteFile writes content to path, creating parent directories first.
func (a *LocalFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(string(path))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(string(path), content, perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// FileInfo returns os.Stat for path.
func (a *LocalFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	info, err := os.Stat(string(path))
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	return info, nil
}
