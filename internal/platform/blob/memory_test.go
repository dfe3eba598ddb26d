package blob

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePutGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	info, err := store.Put(ctx, "pets/thor.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "pets/thor.jpg", info.Key)
	assert.Equal(t, int64(len("jpeg-bytes")), info.Size)
	assert.Equal(t, "image/jpeg", info.ContentType)
	assert.NotEmpty(t, info.URL)

	got, reader, err := store.Get(ctx, "pets/thor.jpg")
	require.NoError(t, err)
	defer reader.Close()
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
	assert.Equal(t, info.Size, got.Size)
}

func TestMemoryStorePutReplaces(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Put(ctx, "k", "text/plain", strings.NewReader("one"))
	require.NoError(t, err)
	info, err := store.Put(ctx, "k", "text/plain", strings.NewReader("longer content"))
	require.NoError(t, err)
	assert.Equal(t, int64(len("longer content")), info.Size)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()
	_, _, err := store.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Put(ctx, "k", "text/plain", strings.NewReader("x"))
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, "k"))
	assert.ErrorIs(t, store.Delete(ctx, "k"), ErrNotFound)
}
