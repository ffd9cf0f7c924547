package primecache

import (
	"context"
	"testing"

	"github.com/dskrypa/primecache/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSafeEngine_ConcurrentQueries(t *testing.T) {
	safe := NewSafe(New[uint64]())

	values := []uint64{20011, 22499, 30011, 221, 149, 139, 140}
	want := map[uint64]bool{
		20011: true,
		22499: false,
		30011: true,
		221:   false,
		149:   true,
		139:   true,
		140:   false,
	}

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for _, v := range values {
				if safe.IsPrime(v) != want[v] {
					return assert.AnError
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestSafeEngine_ConcurrentGrowthAndReads(t *testing.T) {
	safe := NewSafe(New[uint64]())

	var g errgroup.Group
	g.Go(func() error {
		return safe.FindNewPrimes(200)
	})
	g.Go(func() error {
		for i := 0; i < 1000; i++ {
			safe.Contains(139)
			safe.Len()
			safe.Max()
		}
		return nil
	})
	require.NoError(t, g.Wait())

	assert.Equal(t, 234, safe.Len())
}

func TestSafeEngine_Snapshot(t *testing.T) {
	safe := NewSafe(New[uint64]())

	snap := safe.Snapshot()
	require.Len(t, snap, 34)

	// The snapshot is a copy, not a view of the live frontier.
	_, err := safe.NextPrime()
	require.NoError(t, err)
	assert.Len(t, snap, 34)
	assert.Equal(t, uint64(139), snap[len(snap)-1])
}

func TestSafeEngine_Save(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	safe := NewSafe(New[uint64]())

	require.NoError(t, safe.FindNewPrimes(10))
	require.NoError(t, safe.Save(ctx, store, "primes64"))

	loaded, err := Open[uint64](ctx, store, "primes64")
	require.NoError(t, err)
	assert.Equal(t, safe.Len(), loaded.Len())
	assert.Equal(t, safe.Max(), loaded.Max())
}
