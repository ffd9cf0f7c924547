package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`. A missing cache blob is the normal
// first-run case, not a failure.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for reading and replacing prime cache blobs.
type Store interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Put replaces the blob's content atomically.
	Put(ctx context.Context, name string, data []byte) error
}
