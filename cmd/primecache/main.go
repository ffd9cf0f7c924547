// Command primecache discovers prime numbers incrementally, keeping the
// results in a compressed cache file so later runs pick up where earlier
// ones stopped.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dskrypa/primecache"
	"github.com/dskrypa/primecache/blobstore"
	"github.com/dskrypa/primecache/codec"
	"github.com/spf13/cobra"
)

var (
	cache32Path string
	cache64Path string
	compression string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "primecache",
	Short: "Incremental prime discovery with a persisted cache",
	Long: `Discover prime numbers incrementally and test arbitrary integers for
primality, backed by a compressed cache of every prime found so far.

The cache file is width-specific: --cache32 selects the 32-bit engine,
--cache64 the 64-bit one. Without a cache flag, a 64-bit engine runs
in memory seeded with the first 34 primes.`,
	SilenceUsage: true,
}

var countCmd = &cobra.Command{
	Use:   "count N",
	Short: "Iterate N primes from the lazy prime sequence",
	Long: `Draw N primes from the engine's lazy sequence: cached primes first,
then freshly discovered ones. The cache file is not modified.`,
	Args: cobra.ExactArgs(1),
	RunE: runCount,
}

var findCmd = &cobra.Command{
	Use:   "find N",
	Short: "Find N new primes beyond the current frontier",
	Args:  cobra.ExactArgs(1),
	RunE:  runFind,
}

var testCmd = &cobra.Command{
	Use:   "test N",
	Short: "Test whether N is prime",
	Args:  cobra.ExactArgs(1),
	RunE:  runTest,
}

var saveCmd = &cobra.Command{
	Use:   "save N",
	Short: "Find N new primes and persist the frontier to the cache file",
	Long: `Find N new primes and rewrite the cache file with the grown frontier.
If the cache file already exists, this effectively appends N primes to it.
Requires --cache32 or --cache64.`,
	Args: cobra.ExactArgs(1),
	RunE: runSave,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cache32Path, "cache32", "", "path of the 32-bit prime cache file")
	rootCmd.PersistentFlags().StringVar(&cache64Path, "cache64", "", "path of the 64-bit prime cache file")
	rootCmd.PersistentFlags().StringVar(&compression, "compression", "gzip", "cache compression codec (gzip, zstd, lz4, none)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.MarkFlagsMutuallyExclusive("cache32", "cache64")

	rootCmd.AddCommand(countCmd, findCmd, testCmd, saveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// session erases the engine's width parameter so the commands can run
// against either instantiation.
type session interface {
	count(n int) error
	find(n int) error
	test(v uint64) (bool, error)
	save(ctx context.Context) error
	persisted() bool
	length() int
	max() uint64
	valuesChecked() uint64
}

type engineSession[W primecache.Width] struct {
	engine *primecache.Engine[W]
	store  blobstore.Store
	name   string
}

func openSession[W primecache.Width](ctx context.Context, path string, opts []primecache.Option) (*engineSession[W], error) {
	if path == "" {
		return &engineSession[W]{engine: primecache.New[W](opts...)}, nil
	}

	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	store := blobstore.NewLocalStore(dir)

	engine, err := primecache.Open[W](ctx, store, name, opts...)
	if err != nil {
		return nil, err
	}
	return &engineSession[W]{engine: engine, store: store, name: name}, nil
}

func (s *engineSession[W]) count(n int) error {
	remaining := n
	for range s.engine.Primes() {
		remaining--
		if remaining <= 0 {
			return nil
		}
	}
	// The sequence ends early only when the width's range is exhausted.
	return fmt.Errorf("prime sequence ended after %d of %d primes: %w", n-remaining, n, primecache.ErrOutOfRange)
}

func (s *engineSession[W]) find(n int) error {
	return s.engine.FindNewPrimes(n)
}

func (s *engineSession[W]) test(v uint64) (bool, error) {
	if v > uint64(^W(0)) {
		return false, fmt.Errorf("%d does not fit the engine's %d-bit width", v, widthBits[W]())
	}
	return s.engine.IsPrime(W(v)), nil
}

func (s *engineSession[W]) save(ctx context.Context) error {
	if s.store == nil {
		return errors.New("--cache32 or --cache64 is required to save results to a file")
	}
	return s.engine.Save(ctx, s.store, s.name)
}

func (s *engineSession[W]) persisted() bool { return s.store != nil }

func (s *engineSession[W]) length() int { return s.engine.Len() }

func (s *engineSession[W]) max() uint64 { return uint64(s.engine.Max()) }

func (s *engineSession[W]) valuesChecked() uint64 { return s.engine.ValuesChecked() }

func widthBits[W primecache.Width]() int {
	if uint64(^W(0)) == uint64(^uint32(0)) {
		return 32
	}
	return 64
}

func newSession(ctx context.Context) (session, error) {
	c, err := codec.ByName(compression)
	if err != nil {
		return nil, err
	}

	logger := primecache.NoopLogger()
	if verbose {
		logger = primecache.NewTextLogger(slog.LevelDebug)
	}
	opts := []primecache.Option{primecache.WithCodec(c)}

	if cache32Path != "" {
		opts = append(opts, primecache.WithLogger(logger.WithWidth(32)))
		return openSession[uint32](ctx, cache32Path, opts)
	}
	opts = append(opts, primecache.WithLogger(logger.WithWidth(64)))
	return openSession[uint64](ctx, cache64Path, opts)
}

func parseCount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("expected a positive count, got %q", arg)
	}
	return n, nil
}

func runCount(cmd *cobra.Command, args []string) error {
	n, err := parseCount(args[0])
	if err != nil {
		return err
	}
	s, err := newSession(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Most recent prime: %d\n", s.max())
	start := time.Now()
	err = s.count(n)
	finish(s, start)
	return err
}

func runFind(cmd *cobra.Command, args []string) error {
	n, err := parseCount(args[0])
	if err != nil {
		return err
	}
	s, err := newSession(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Most recent prime: %d\n", s.max())
	start := time.Now()
	if err := s.find(n); err != nil {
		return err
	}
	fmt.Printf("Most recent prime: %d\n", s.max())
	finish(s, start)
	return nil
}

func runTest(cmd *cobra.Command, args []string) error {
	v, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("expected an unsigned integer, got %q", args[0])
	}
	s, err := newSession(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Most recent prime: %d\n", s.max())
	start := time.Now()
	prime, err := s.test(v)
	if err != nil {
		return err
	}
	fmt.Printf("Is %d prime? %v (values checked: %d)\n", v, prime, s.valuesChecked())
	finish(s, start)
	return nil
}

func runSave(cmd *cobra.Command, args []string) error {
	n, err := parseCount(args[0])
	if err != nil {
		return err
	}
	s, err := newSession(cmd.Context())
	if err != nil {
		return err
	}
	if !s.persisted() {
		return errors.New("--cache32 or --cache64 is required to save results to a file")
	}

	fmt.Printf("Most recent prime: %d\n", s.max())
	start := time.Now()
	if err := s.find(n); err != nil {
		return err
	}
	fmt.Printf("Most recent prime: %d\n", s.max())
	if err := s.save(cmd.Context()); err != nil {
		return err
	}
	finish(s, start)
	return nil
}

func finish(s session, start time.Time) {
	if s.persisted() {
		fmt.Printf("%d prime numbers are currently cached\n", s.length())
	}
	fmt.Printf("Took %s\n", time.Since(start).Round(time.Millisecond))
}
