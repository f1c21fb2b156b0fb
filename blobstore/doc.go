// Package blobstore provides storage abstraction for dictionary snapshots.
//
// A Store keeps whole, immutable blobs: snapshots are written once and
// read in full, so there are no range reads or streaming writes in the
// interface.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem with mmap reads and atomic renames
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3
//   - minio.Store: MinIO and other S3-compatible object stores
//   - Throttle: bandwidth-limiting wrapper around any Store
//
// # Custom Implementations
//
// Implement the Store interface to support custom backends:
//
//	type Store interface {
//	    Put(ctx, name, data) error
//	    Get(ctx, name) ([]byte, error)
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Get must return an error satisfying errors.Is(err, ErrNotFound) for
// missing blobs.
package blobstore
