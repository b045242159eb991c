package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/kamal-hamza/uigen/internal/core/ports"
)

// errIsDir is returned when a directory is given where a file is expected
var errIsDir = errors.New("is a directory")

// FileStore reads assets and writes generated sources through an afero filesystem
type FileStore struct {
	fs afero.Fs
}

// NewFileStore creates a store backed by the given filesystem
func NewFileStore(fs afero.Fs) *FileStore {
	return &FileStore{fs: fs}
}

// NewOsFileStore creates a store backed by the operating system filesystem
func NewOsFileStore() *FileStore {
	return NewFileStore(afero.NewOsFs())
}

// Ensure it implements the interface
var _ ports.AssetStore = (*FileStore)(nil)

// Read returns the full contents of the file at path
func (s *FileStore) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := s.fs.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &os.PathError{Op: "read", Path: path, Err: errIsDir}
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Write creates or truncates the file at path and writes data to it.
// The parent directory is never created; a missing parent is an error.
func (s *FileStore) Write(ctx context.Context, path string, data []byte, perm os.FileMode) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	// MemMapFs creates parents implicitly, so check explicitly
	dir := filepath.Dir(path)
	info, err := s.fs.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "open", Path: path, Err: fmt.Errorf("parent %s: %w", dir, os.ErrNotExist)}
	}

	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err := f.Write(data); err != nil {
		return err
	}
	return nil
}
