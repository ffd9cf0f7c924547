package primecache

import (
	"context"
	"strconv"
	"sync"

	"github.com/dskrypa/primecache/blobstore"
	"golang.org/x/sync/singleflight"
)

// SafeEngine wraps an Engine for use from multiple goroutines. All mutating
// operations are serialized behind a mutex; read-only queries take a shared
// lock. Concurrent IsPrime calls for the same value are deduplicated, so an
// expensive gap scan runs once no matter how many callers ask.
//
// The wrapped Engine must not be used directly while the wrapper is in use.
type SafeEngine[W Width] struct {
	mu     sync.RWMutex
	engine *Engine[W]
	flight singleflight.Group
}

// NewSafe wraps engine in a SafeEngine.
func NewSafe[W Width](engine *Engine[W]) *SafeEngine[W] {
	return &SafeEngine[W]{engine: engine}
}

// IsPrime reports whether n is prime using the default strategy.
func (s *SafeEngine[W]) IsPrime(n W) bool {
	key := strconv.FormatUint(uint64(n), 10)
	v, _, _ := s.flight.Do(key, func() (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.engine.IsPrime(n), nil
	})
	return v.(bool)
}

// NextPrime extends the frontier by one prime and returns it.
func (s *SafeEngine[W]) NextPrime() (W, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.NextPrime()
}

// FindNewPrimes extends the frontier by count primes.
func (s *SafeEngine[W]) FindNewPrimes(count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.FindNewPrimes(count)
}

// Contains reports whether n is an element of the frontier.
func (s *SafeEngine[W]) Contains(n W) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.Contains(n)
}

// IsKnownPrime reports whether n has already been confirmed prime.
func (s *SafeEngine[W]) IsKnownPrime(n W) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.IsKnownPrime(n)
}

// Len returns the number of primes in the frontier.
func (s *SafeEngine[W]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.Len()
}

// Max returns the largest prime in the frontier.
func (s *SafeEngine[W]) Max() W {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.Max()
}

// Snapshot returns a copy of the frontier.
func (s *SafeEngine[W]) Snapshot() []W {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]W, len(s.engine.primes))
	copy(out, s.engine.primes)
	return out
}

// Save serializes the frontier and fully rewrites the named blob in store.
func (s *SafeEngine[W]) Save(ctx context.Context, store blobstore.Store, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Save(ctx, store, name)
}
