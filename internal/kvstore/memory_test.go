package kvstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGet(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "server_ip", "192.168.1.10"))

	value, err := store.Get(ctx, "server_ip")
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.10", value)
}

func TestMemory_GetMissing(t *testing.T) {
	store := NewMemory()

	_, err := store.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemory_SetOverwrites(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "server_port", "8080"))
	require.NoError(t, store.Set(ctx, "server_port", "9090"))

	value, err := store.Get(ctx, "server_port")
	require.NoError(t, err)
	assert.Equal(t, "9090", value)
}

func TestMemory_Delete(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "device_pin", "4242"))
	require.NoError(t, store.Delete(ctx, "device_pin"))

	_, err := store.Get(ctx, "device_pin")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// deleting again is fine
	assert.NoError(t, store.Delete(ctx, "device_pin"))
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set(ctx, "key", "value")
			_, _ = store.Get(ctx, "key")
			_ = store.Delete(ctx, "other")
		}()
	}
	wg.Wait()

	value, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", value)
}

func TestMemory_Close(t *testing.T) {
	assert.NoError(t, NewMemory().Close())
}
