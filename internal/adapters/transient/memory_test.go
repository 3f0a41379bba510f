package transient_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slink/internal/adapters/transient"
)

func TestMemory_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	store := transient.NewMemory()

	missing, err := store.Get(ctx, "absent")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, store.Set(ctx, "key", []byte("value"), time.Hour))

	got, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)

	require.NoError(t, store.Delete(ctx, "key"))

	gone, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	store := transient.NewMemory()

	require.NoError(t, store.Set(ctx, "short", []byte("v"), time.Nanosecond))
	time.Sleep(5 * time.Millisecond)

	got, err := store.Get(ctx, "short")
	require.NoError(t, err)
	assert.Nil(t, got, "expired entry should read as a miss")
}

func TestMemory_ZeroTTLKeepsEntry(t *testing.T) {
	ctx := context.Background()
	store := transient.NewMemory()

	require.NoError(t, store.Set(ctx, "pinned", []byte("v"), 0))

	got, err := store.Get(ctx, "pinned")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := transient.NewMemory()

	original := []byte("payload")
	require.NoError(t, store.Set(ctx, "key", original, time.Hour))
	original[0] = 'X'

	first, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), first)

	first[0] = 'Y'
	second, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), second, "callers must not share backing arrays")
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := transient.NewMemory()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := string(rune('a' + n))
			for range 50 {
				_ = store.Set(ctx, key, []byte{byte(n)}, time.Hour)
				_, _ = store.Get(ctx, key)
				_ = store.Delete(ctx, key)
			}
		}(i)
	}
	wg.Wait()
}

func TestMemory_DeleteAbsentKey(t *testing.T) {
	store := transient.NewMemory()
	assert.NoError(t, store.Delete(context.Background(), "never-set"))
}
