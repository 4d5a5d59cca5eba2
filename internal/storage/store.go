// Package storage writes rendered pages to a filesystem.
package storage

import (
	"context"
	"io"
)

// Store defines the interface for a page output backend.
type Store interface {
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
}
