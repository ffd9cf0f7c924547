package primecache

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when extending the frontier would exceed the
	// representable range of the engine's integer width.
	ErrOutOfRange = errors.New("next prime candidate exceeds integer width")

	// ErrInvalidFrontier is returned when a loaded cache payload violates the
	// frontier invariants (starts at 2, strictly ascending, odd after 2).
	ErrInvalidFrontier = errors.New("invalid frontier")
)

// InsufficientDataError indicates that the frontier does not reach sqrt(n)+1,
// so the sieve alone cannot decide the primality of n.
//
// It is an internal control signal: the fallback strategies consume it and it
// never escapes the engine's public predicates.
type InsufficientDataError struct {
	N         uint64 // value under test
	Bound     uint64 // floor(sqrt(n)) + 1
	LastKnown uint64 // largest frontier prime at the time of the scan
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("too few primes known to decide primality of %d via sieve: need divisors up to %d, frontier ends at %d",
		e.N, e.Bound, e.LastKnown)
}
