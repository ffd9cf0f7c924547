package primecache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"math"
	"math/bits"
	"slices"
	"time"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/dskrypa/primecache/blobstore"
	"github.com/dskrypa/primecache/codec"
	"github.com/dskrypa/primecache/persistence"
	"golang.org/x/time/rate"
)

// Width is the set of unsigned integer widths an Engine can be instantiated
// with. The two instantiations share all logic; only the arithmetic range and
// the on-disk cache encoding differ.
type Width interface {
	~uint32 | ~uint64
}

// Strategy identifies how a primality answer was (or would be) obtained once
// the frontier alone is insufficient.
type Strategy string

const (
	// StrategySieve grows the frontier until the sieve becomes conclusive.
	StrategySieve Strategy = "sieve"
	// StrategyBruteForce trial-divides the uncovered gap directly.
	StrategyBruteForce Strategy = "brute-force"
)

// seedPrimes is the built-in frontier used when no cache data is available:
// the first 34 primes.
var seedPrimes = []uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61,
	67, 71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139,
}

// Engine is an incremental prime-discovery and primality-testing engine.
//
// It owns two pieces of state: the frontier, a gap-free ascending slice of
// every prime from 2 up to its last element, and a set of non-contiguous
// primes, values confirmed prime above the frontier's maximum without proving
// the primes below them. The frontier is what gets persisted; the
// non-contiguous set is a per-run cache and is never merged back.
//
// Engine is not safe for concurrent use; see SafeEngine.
type Engine[W Width] struct {
	primes        []W
	nonContiguous *roaring64.Bitmap

	logger   *Logger
	metrics  MetricsCollector
	progress rate.Sometimes

	valuesChecked uint64

	opts options
}

// New creates an Engine seeded with the built-in list of the first 34 primes.
func New[W Width](optFns ...Option) *Engine[W] {
	e := newEngine[W](applyOptions(optFns))
	e.seed()
	return e
}

// Open creates an Engine from the named cache blob in store.
//
// A missing blob is not an error: it is the normal first-run case and yields
// a seeded engine. An empty payload seeds as well. Any other read or decode
// failure is surfaced as-is.
func Open[W Width](ctx context.Context, store blobstore.Store, name string, optFns ...Option) (*Engine[W], error) {
	e := newEngine[W](applyOptions(optFns))

	start := time.Now()
	primes, err := loadFrontier[W](ctx, store, name, e.opts.codec)
	if err != nil {
		e.metrics.RecordLoad(0, time.Since(start), err)
		e.logger.LogLoad(ctx, name, 0, false, err)
		return nil, err
	}

	seeded := len(primes) == 0
	if seeded {
		e.seed()
	} else {
		if err := validateFrontier(primes); err != nil {
			e.metrics.RecordLoad(0, time.Since(start), err)
			e.logger.LogLoad(ctx, name, 0, false, err)
			return nil, fmt.Errorf("cache blob %q: %w", name, err)
		}
		e.primes = primes
	}

	e.metrics.RecordLoad(len(e.primes), time.Since(start), nil)
	e.logger.LogLoad(ctx, name, len(e.primes), seeded, nil)
	return e, nil
}

func loadFrontier[W Width](ctx context.Context, store blobstore.Store, name string, c codec.Codec) ([]W, error) {
	rc, err := store.Open(ctx, name)
	if errors.Is(err, blobstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	return persistence.DecodeFrontier[W](data, c)
}

func newEngine[W Width](o options) *Engine[W] {
	return &Engine[W]{
		nonContiguous: roaring64.New(),
		logger:        o.logger,
		metrics:       o.metrics,
		progress:      rate.Sometimes{Interval: 10 * time.Second},
		opts:          o,
	}
}

func (e *Engine[W]) seed() {
	e.primes = make([]W, len(seedPrimes))
	for i, p := range seedPrimes {
		e.primes[i] = W(p)
	}
}

// validateFrontier rejects cache payloads that violate the frontier
// invariants the search loop depends on: starts at 2, strictly ascending,
// everything after 2 odd.
func validateFrontier[W Width](primes []W) error {
	if primes[0] != 2 {
		return fmt.Errorf("%w: first element is %d, want 2", ErrInvalidFrontier, uint64(primes[0]))
	}
	for i := 1; i < len(primes); i++ {
		if primes[i] <= primes[i-1] {
			return fmt.Errorf("%w: not strictly ascending at index %d", ErrInvalidFrontier, i)
		}
		if primes[i]%2 == 0 {
			return fmt.Errorf("%w: even element %d", ErrInvalidFrontier, uint64(primes[i]))
		}
	}
	return nil
}

// Save serializes the frontier and fully rewrites the named blob in store.
// The non-contiguous set is not persisted.
func (e *Engine[W]) Save(ctx context.Context, store blobstore.Store, name string) error {
	start := time.Now()

	data, err := persistence.EncodeFrontier(e.primes, e.opts.codec)
	if err == nil {
		err = store.Put(ctx, name, data)
	}

	e.metrics.RecordSave(len(e.primes), time.Since(start), err)
	e.logger.LogSave(ctx, name, len(e.primes), err)
	return err
}

// Len returns the number of primes in the frontier.
func (e *Engine[W]) Len() int { return len(e.primes) }

// Max returns the largest prime in the frontier.
func (e *Engine[W]) Max() W { return e.last() }

// ValuesChecked returns the number of trial divisions performed so far.
func (e *Engine[W]) ValuesChecked() uint64 { return e.valuesChecked }

// NonContiguousCount returns the size of the non-contiguous prime set.
func (e *Engine[W]) NonContiguousCount() uint64 { return e.nonContiguous.GetCardinality() }

func (e *Engine[W]) last() W { return e.primes[len(e.primes)-1] }

// NextPrime extends the frontier by exactly one prime and returns it.
// Fails with ErrOutOfRange when the next candidate would not fit in W.
func (e *Engine[W]) NextPrime() (W, error) {
	start := time.Now()
	p, err := e.nextPrime()
	e.metrics.RecordNextPrime(time.Since(start), err)
	e.logger.LogNextPrime(uint64(p), time.Since(start), err)
	return p, err
}

func (e *Engine[W]) nextPrime() (W, error) {
	n := e.last()
	if n == 2 {
		// The odd stride below assumes an odd starting point.
		e.primes = append(e.primes, 3)
		return 3, nil
	}
	maxW := maxValue[W]()
	for {
		if n > maxW-2 {
			return 0, fmt.Errorf("%w: frontier ends at %d", ErrOutOfRange, uint64(n))
		}
		n += 2

		bound := sqrtBound(n)
		composite, conclusive := e.scanKnown(n, bound)
		if !conclusive {
			// A loaded frontier can end below sqrt(n); cover the rest of the
			// divisor range directly so the appended value is a true prime.
			composite = e.scanOdds(n, e.gapScanStart(), bound)
		}
		if !composite {
			e.primes = append(e.primes, n)
			return n, nil
		}
	}
}

// FindNewPrimes extends the frontier by count primes. Equivalent to calling
// NextPrime count times without the per-call overhead.
func (e *Engine[W]) FindNewPrimes(count int) error {
	start := time.Now()
	for i := 0; i < count; i++ {
		if _, err := e.nextPrime(); err != nil {
			e.metrics.RecordFindNewPrimes(i, time.Since(start), err)
			return err
		}
		found := i + 1
		e.progress.Do(func() {
			e.logger.Debug("prime discovery progress",
				"found", found,
				"target", count,
				"max", uint64(e.last()),
			)
		})
	}
	e.metrics.RecordFindNewPrimes(count, time.Since(start), nil)
	return nil
}

// Primes returns a lazy, effectively infinite sequence of primes: first every
// element of the frontier as of iteration start, then NextPrime results. The
// sequence ends only if the width's range is exhausted. Each call starts a
// fresh iteration; there is no shared cursor.
func (e *Engine[W]) Primes() iter.Seq[W] {
	return func(yield func(W) bool) {
		for _, p := range e.primes {
			if !yield(p) {
				return
			}
		}
		for {
			p, err := e.NextPrime()
			if err != nil {
				return
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Contains reports whether n is an element of the frontier. Non-contiguous
// primes are not considered; use IsKnownPrime for that.
func (e *Engine[W]) Contains(n W) bool {
	_, found := slices.BinarySearch(e.primes, n)
	return found
}

// IsKnownPrime reports whether n has already been confirmed prime, either as
// part of the frontier or in the non-contiguous set.
func (e *Engine[W]) IsKnownPrime(n W) bool {
	return e.Contains(n) || e.nonContiguous.Contains(uint64(n))
}

// IsPrime reports whether n is prime. It is the default strategy and is an
// alias for IsPrimeViaBruteForce.
func (e *Engine[W]) IsPrime(n W) bool {
	return e.IsPrimeViaBruteForce(n)
}

// IsPrimeViaBruteForce reports whether n is prime. When the frontier sieve is
// inconclusive it trial-divides n by every odd integer between the frontier's
// maximum and sqrt(n)+1, which is strictly cheaper than growing the frontier
// when only the answer is needed.
func (e *Engine[W]) IsPrimeViaBruteForce(n W) bool {
	start := time.Now()

	prime, err := e.isPrimeViaKnownSieve(n)
	var insufficient *InsufficientDataError
	if errors.As(err, &insufficient) {
		prime = !e.scanOdds(n, e.gapScanStart(), W(insufficient.Bound))
		if prime {
			e.nonContiguous.Add(uint64(n))
		}
	}

	e.metrics.RecordPrimality(StrategyBruteForce, time.Since(start), nil)
	e.logger.LogPrimality(uint64(n), StrategyBruteForce, prime, time.Since(start))
	return prime
}

// IsPrimeViaSieve reports whether n is prime. When the frontier sieve is
// inconclusive it extends the frontier one prime at a time until a divisor is
// found or the frontier passes sqrt(n)+1. This keeps every discovered prime
// but can be very slow when sqrt(n) is far beyond the frontier; prefer
// IsPrime unless the side effect of frontier growth is wanted.
//
// The only possible error is ErrOutOfRange from the embedded frontier search.
func (e *Engine[W]) IsPrimeViaSieve(n W) (bool, error) {
	start := time.Now()

	prime, err := e.isPrimeViaKnownSieve(n)
	var insufficient *InsufficientDataError
	if errors.As(err, &insufficient) {
		prime, err = e.extendUntilDecided(n, W(insufficient.Bound))
	}

	e.metrics.RecordPrimality(StrategySieve, time.Since(start), err)
	e.logger.LogPrimality(uint64(n), StrategySieve, prime, time.Since(start))
	return prime, err
}

// isPrimeViaKnownSieve is the central decision procedure: trial division
// restricted to primes already in the frontier. When the frontier does not
// reach sqrt(n)+1 it fails with *InsufficientDataError, which the two public
// strategies consume; the signal never escapes the engine.
func (e *Engine[W]) isPrimeViaKnownSieve(n W) (bool, error) {
	if n < 2 {
		return false, nil
	}
	if n == 2 {
		return true, nil
	}
	if n%2 == 0 {
		return false, nil
	}
	if e.IsKnownPrime(n) {
		return true, nil
	}

	bound := sqrtBound(n)
	composite, conclusive := e.scanKnown(n, bound)
	if !conclusive {
		return false, &InsufficientDataError{
			N:         uint64(n),
			Bound:     uint64(bound),
			LastKnown: uint64(e.last()),
		}
	}
	if composite {
		return false, nil
	}

	// Conclusively prime, and past the frontier's maximum (anything at or
	// below it would have been caught by IsKnownPrime or found a divisor).
	e.nonContiguous.Add(uint64(n))
	return true, nil
}

func (e *Engine[W]) extendUntilDecided(n, bound W) (bool, error) {
	for {
		p, err := e.nextPrime()
		if err != nil {
			return false, err
		}
		if p > bound {
			e.nonContiguous.Add(uint64(n))
			return true, nil
		}
		if n%p == 0 {
			return false, nil
		}
	}
}

// scanKnown trial-divides n by frontier primes in ascending order, skipping
// the leading 2 (candidates are always odd). conclusive is false when the
// scan ran off the end of the frontier before reaching bound.
func (e *Engine[W]) scanKnown(n, bound W) (composite, conclusive bool) {
	for _, d := range e.primes[1:] {
		if d > bound {
			return false, true
		}
		e.valuesChecked++
		if n%d == 0 {
			return true, true
		}
	}
	return false, false
}

// gapScanStart returns the first trial divisor above the frontier. The odd
// stride in scanOdds requires an odd start, so a frontier ending at 2 scans
// from 3 rather than 4.
func (e *Engine[W]) gapScanStart() W {
	if last := e.last(); last != 2 {
		return last + 2
	}
	return 3
}

// scanOdds trial-divides n by every odd integer in [from, bound).
func (e *Engine[W]) scanOdds(n, from, bound W) bool {
	for d := from; d < bound; d += 2 {
		e.valuesChecked++
		if n%d == 0 {
			return true
		}
	}
	return false
}

// sqrtBound returns floor(sqrt(n)) + 1, the exclusive upper bound for trial
// divisors of n. Always representable in W.
func sqrtBound[W Width](n W) W {
	return W(isqrt(uint64(n))) + 1
}

// isqrt returns floor(sqrt(n)), exact over the full uint64 range. float64
// sqrt can land one off in either direction above 2^52, so the estimate is
// corrected with 128-bit multiplies.
func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	for r > 0 {
		if hi, lo := bits.Mul64(r, r); hi != 0 || lo > n {
			r--
			continue
		}
		break
	}
	for {
		next := r + 1
		if hi, lo := bits.Mul64(next, next); hi == 0 && lo <= n {
			r = next
			continue
		}
		break
	}
	return r
}

func maxValue[W Width]() W {
	var zero W
	return ^zero
}
