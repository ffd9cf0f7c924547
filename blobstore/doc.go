// Package blobstore provides storage abstraction for prime cache files.
//
// Store is the interface for reading and replacing whole cache blobs.
// A cache blob is read once at engine construction and fully rewritten on
// save, so the interface is deliberately whole-blob: no range reads, no
// appends.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with atomic replace
//   - MemoryStore: In-memory store for testing
//   - s3.Store: Amazon S3
//   - minio.Store: MinIO and other S3-compatible endpoints
//
// # Custom Implementations
//
// Implement the Store interface to support custom storage backends:
//
//	type Store interface {
//	    Open(ctx, name) (io.ReadCloser, error)  // Open for reading
//	    Put(ctx, name, data) error              // Atomic whole-blob replace
//	}
package blobstore
