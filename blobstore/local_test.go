package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStore_PutOpen(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)

	ctx := context.Background()
	data := []byte("frontier payload bytes")

	err := store.Put(ctx, "primes64.gz", data)
	require.NoError(t, err)

	// Verify file exists on disk
	_, err = os.Stat(filepath.Join(tmpDir, "primes64.gz"))
	require.NoError(t, err)

	rc, err := store.Open(ctx, "primes64.gz")
	require.NoError(t, err)
	defer rc.Close()

	loaded, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, data, loaded)
}

func TestLocalStore_PutOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "cache.bin", []byte("old content, longer than the new one")))
	require.NoError(t, store.Put(ctx, "cache.bin", []byte("new")))

	rc, err := store.Open(ctx, "cache.bin")
	require.NoError(t, err)
	defer rc.Close()

	loaded, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, []byte("new"), loaded)

	// No temp file leftovers
	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestLocalStore_OpenMissing(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	_, err := store.Open(context.Background(), "does-not-exist.gz")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestLocalStore_PutCreatesSubdirectories(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, filepath.Join("caches", "primes32.gz"), []byte("x")))

	rc, err := store.Open(ctx, filepath.Join("caches", "primes32.gz"))
	require.NoError(t, err)
	rc.Close()
}
