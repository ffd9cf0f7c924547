// Package s3 provides an Amazon S3 implementation of blobstore.Store.
//
// Use it to share a prime cache across hosts:
//
//	store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("primes/"))
//	engine, _ := primecache.Open[uint64](ctx, store, "primes64.gz")
package s3
