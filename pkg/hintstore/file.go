package hintstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists the hint as a flag file on local disk, scoped to the
// device the dashboard client runs on. Presence of the file means the hint
// is set; its content is irrelevant.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed hint store at the given path, for
// example filepath.Join(configDir, "session.hint").
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Get(ctx context.Context) (bool, error) {
	_, err := os.Stat(f.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat hint file: %w", err)
}

func (f *FileStore) Set(ctx context.Context, value bool) error {
	if !value {
		return f.Clear(ctx)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create hint dir: %w", err)
	}
	if err := os.WriteFile(f.path, []byte("1\n"), 0o600); err != nil {
		return fmt.Errorf("write hint file: %w", err)
	}
	return nil
}

func (f *FileStore) Clear(ctx context.Context) error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove hint file: %w", err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
