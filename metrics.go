package primecache

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordNextPrime is called after each explicit single frontier extension
	// (NextPrime). Frontier growth embedded in a sieve-strategy primality
	// query is not reported here; it is covered by that query's
	// RecordPrimality call. duration is the total time taken, err is nil if
	// successful.
	RecordNextPrime(duration time.Duration, err error)

	// RecordFindNewPrimes is called after each batched extension.
	// found is the number of primes actually discovered, which is less than
	// requested only when err is non-nil.
	RecordFindNewPrimes(found int, duration time.Duration, err error)

	// RecordPrimality is called after each primality query.
	RecordPrimality(strategy Strategy, duration time.Duration, err error)

	// RecordLoad is called after a cache load attempt at construction.
	// count is the resulting frontier size.
	RecordLoad(count int, duration time.Duration, err error)

	// RecordSave is called after each cache save.
	RecordSave(count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordNextPrime(time.Duration, error)          {}
func (NoopMetricsCollector) RecordFindNewPrimes(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordPrimality(Strategy, time.Duration, error) {
}
func (NoopMetricsCollector) RecordLoad(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSave(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
//
// DiscoveredPrimes counts primes found by explicit extension calls
// (NextPrime, FindNewPrimes) only.
type BasicMetricsCollector struct {
	NextPrimeCount      atomic.Int64
	NextPrimeErrors     atomic.Int64
	NextPrimeTotalNanos atomic.Int64
	DiscoveredPrimes    atomic.Int64
	PrimalityCount      atomic.Int64
	PrimalityErrors     atomic.Int64
	PrimalityTotalNanos atomic.Int64
	LoadCount           atomic.Int64
	LoadErrors          atomic.Int64
	SaveCount           atomic.Int64
	SaveErrors          atomic.Int64
}

// RecordNextPrime implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNextPrime(duration time.Duration, err error) {
	b.NextPrimeCount.Add(1)
	b.NextPrimeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.NextPrimeErrors.Add(1)
	} else {
		b.DiscoveredPrimes.Add(1)
	}
}

// RecordFindNewPrimes implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFindNewPrimes(found int, duration time.Duration, err error) {
	b.DiscoveredPrimes.Add(int64(found))
	if err != nil {
		b.NextPrimeErrors.Add(1)
	}
}

// RecordPrimality implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPrimality(strategy Strategy, duration time.Duration, err error) {
	b.PrimalityCount.Add(1)
	b.PrimalityTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PrimalityErrors.Add(1)
	}
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(count int, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// RecordSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSave(count int, duration time.Duration, err error) {
	b.SaveCount.Add(1)
	if err != nil {
		b.SaveErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		NextPrimeCount:    b.NextPrimeCount.Load(),
		NextPrimeErrors:   b.NextPrimeErrors.Load(),
		NextPrimeAvgNanos: b.getAvgNextPrimeNanos(),
		DiscoveredPrimes:  b.DiscoveredPrimes.Load(),
		PrimalityCount:    b.PrimalityCount.Load(),
		PrimalityErrors:   b.PrimalityErrors.Load(),
		PrimalityAvgNanos: b.getAvgPrimalityNanos(),
		LoadCount:         b.LoadCount.Load(),
		LoadErrors:        b.LoadErrors.Load(),
		SaveCount:         b.SaveCount.Load(),
		SaveErrors:        b.SaveErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgNextPrimeNanos() int64 {
	count := b.NextPrimeCount.Load()
	if count == 0 {
		return 0
	}
	return b.NextPrimeTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgPrimalityNanos() int64 {
	count := b.PrimalityCount.Load()
	if count == 0 {
		return 0
	}
	return b.PrimalityTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	NextPrimeCount    int64
	NextPrimeErrors   int64
	NextPrimeAvgNanos int64
	DiscoveredPrimes  int64
	PrimalityCount    int64
	PrimalityErrors   int64
	PrimalityAvgNanos int64
	LoadCount         int64
	LoadErrors        int64
	SaveCount         int64
	SaveErrors        int64
}
