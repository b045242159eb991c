package ports

import (
	"context"
	"os"
)

// AssetStore defines the port for reading assets and writing generated sources
type AssetStore interface {
	// Read returns the full contents of the file at path
	Read(ctx context.Context, path string) ([]byte, error)

	// Write creates or truncates the file at path and writes data to it.
	// The parent directory must already exist.
	Write(ctx context.Context, path string, data []byte, perm os.FileMode) error
}
