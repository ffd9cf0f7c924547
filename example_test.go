package primecache_test

import (
	"context"
	"fmt"
	"log"

	"github.com/dskrypa/primecache"
	"github.com/dskrypa/primecache/blobstore"
	"github.com/dskrypa/primecache/codec"
)

// Example demonstrates basic primality testing with a seeded engine.
func Example() {
	engine := primecache.New[uint64]()

	fmt.Println(engine.IsPrime(139))
	fmt.Println(engine.IsPrime(221)) // 13 * 17
	// Output:
	// true
	// false
}

// Example_nextPrime demonstrates extending the frontier.
func Example_nextPrime() {
	engine := primecache.New[uint64]()

	p, err := engine.NextPrime()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("next prime after %d is %d\n", 139, p)
	// Output: next prime after 139 is 149
}

// Example_primes demonstrates the lazy infinite prime sequence.
func Example_primes() {
	engine := primecache.New[uint32]()

	count := 0
	for p := range engine.Primes() {
		if p > 150 {
			break
		}
		count++
	}

	fmt.Printf("%d primes up to 150\n", count)
	// Output: 35 primes up to 150
}

// Example_persistence demonstrates saving and reloading the frontier.
func Example_persistence() {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	engine := primecache.New[uint64](primecache.WithCodec(codec.Zstd{}))
	if err := engine.FindNewPrimes(1000); err != nil {
		log.Fatal(err)
	}
	if err := engine.Save(ctx, store, "primes64.zst"); err != nil {
		log.Fatal(err)
	}

	reloaded, err := primecache.Open[uint64](ctx, store, "primes64.zst", primecache.WithCodec(codec.Zstd{}))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d primes cached, frontier at %d\n", reloaded.Len(), reloaded.Max())
	// Output: 1034 primes cached, frontier at 8237
}

// Example_safeEngine demonstrates sharing an engine across goroutines.
func Example_safeEngine() {
	safe := primecache.NewSafe(primecache.New[uint64]())

	done := make(chan bool, 2)
	for i := 0; i < 2; i++ {
		go func() {
			done <- safe.IsPrime(20011)
		}()
	}

	fmt.Println(<-done, <-done)
	// Output: true true
}
