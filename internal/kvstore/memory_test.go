package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "weekend")
	assert.ErrorIs(t, err, ErrNotFound)

	value := []byte(`{"status":"active"}`)
	require.NoError(t, store.Set(ctx, "weekend", value))
	value[0] = 'X'

	got, err := store.Get(ctx, "weekend")
	require.NoError(t, err)
	assert.Equal(t, `{"status":"active"}`, string(got))

	require.NoError(t, store.Set(ctx, "budget", []byte("{}")))
	require.NoError(t, store.Delete(ctx, "weekend"))
	_, err = store.Get(ctx, "weekend")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Clear(ctx))
	_, err = store.Get(ctx, "budget")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, store.Delete(ctx, "missing"))
}
