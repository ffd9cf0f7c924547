package blobstore

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutOpenDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Open(ctx, "missing")
	require.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, store.Put(ctx, "blob", []byte("abc")))

	rc, err := store.Open(ctx, "blob")
	require.NoError(t, err)
	loaded, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, []byte("abc"), loaded)

	require.NoError(t, store.Delete(ctx, "blob"))
	_, err = store.Open(ctx, "blob")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStore_CopiesData(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	data := []byte("mutable")
	require.NoError(t, store.Put(ctx, "blob", data))
	data[0] = 'X'

	rc, err := store.Open(ctx, "blob")
	require.NoError(t, err)
	defer rc.Close()

	loaded, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, []byte("mutable"), loaded)
}
