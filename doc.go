// Package primecache provides an incremental prime-discovery and
// primality-testing engine with a persisted cache of known primes.
//
// The engine keeps a gap-free ascending list of every prime from 2 up to its
// current maximum (the frontier) and extends it by trial division against
// itself. Primality queries for arbitrary integers combine a sieve test
// against the frontier with a bounded brute-force fallback when the frontier
// is too short to decide, so answers never require recomputing primes that
// were discovered in an earlier run.
//
// # Quick Start
//
// In-memory, seeded with the first 34 primes:
//
//	engine := primecache.New[uint64]()
//	p, _ := engine.NextPrime()        // 149
//	fmt.Println(engine.IsPrime(221))  // false (13 * 17)
//
// With a persisted cache:
//
//	ctx := context.Background()
//	store := blobstore.NewLocalStore("./data")
//	engine, _ := primecache.Open[uint64](ctx, store, "primes64.gz")
//	_ = engine.FindNewPrimes(10_000)
//	_ = engine.Save(ctx, store, "primes64.gz")
//
// Cloud-backed cache:
//
//	s3Store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("primes/"))
//	engine, _ := primecache.Open[uint64](ctx, s3Store, "primes64.gz")
//
// # Widths
//
// Engine is generic over the unsigned integer width, ~uint32 or ~uint64.
// The two instantiations share all logic but use separate cache files (the
// on-disk encoding is width-dependent). Arithmetic never wraps: when the
// frontier reaches the top of the width's range, NextPrime fails with
// ErrOutOfRange.
//
// # Concurrency
//
// Engine holds mutable state with no internal locking and assumes one
// logical owner. Wrap it in SafeEngine to share it across goroutines.
package primecache
