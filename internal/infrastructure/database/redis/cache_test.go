package redis

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nutrientDoc struct {
	Name     string  `json:"name"`
	Calcium  float64 `json:"calcium"`
	VitaminK float64 `json:"vitamin_k"`
}

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCache(client, "dfi", ttl, nil, nil), mr
}

func TestCacheSetGet(t *testing.T) {
	cache, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	in := nutrientDoc{Name: "spinach", Calcium: 99, VitaminK: 482.9}
	require.NoError(t, cache.Set(ctx, "food:spinach", in))

	var out nutrientDoc
	require.NoError(t, cache.Get(ctx, "food:spinach", &out))
	assert.Equal(t, in, out)
}

func TestCacheGetMiss(t *testing.T) {
	cache, _ := newTestCache(t, time.Hour)

	var out nutrientDoc
	err := cache.Get(context.Background(), "absent", &out)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCacheKeyPrefix(t *testing.T) {
	cache, mr := newTestCache(t, time.Hour)

	require.NoError(t, cache.Set(context.Background(), "drug:aspirin", "smiles"))
	assert.True(t, mr.Exists("dfi:drug:aspirin"))
}

func TestCacheTTLJitter(t *testing.T) {
	cache, mr := newTestCache(t, time.Hour)

	require.NoError(t, cache.Set(context.Background(), "k", 1))
	ttl := mr.TTL("dfi:k")
	assert.GreaterOrEqual(t, ttl, time.Hour)
	assert.LessOrEqual(t, ttl, time.Hour+6*time.Minute)
}

func TestCacheZeroTTL(t *testing.T) {
	cache, mr := newTestCache(t, 0)

	require.NoError(t, cache.Set(context.Background(), "k", 1))
	assert.Equal(t, time.Duration(0), mr.TTL("dfi:k"))
}

func TestCacheDelete(t *testing.T) {
	cache, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v"))
	require.NoError(t, cache.Delete(ctx, "k"))

	var out string
	assert.ErrorIs(t, cache.Get(ctx, "k", &out), ErrCacheMiss)

	// absent key is fine
	assert.NoError(t, cache.Delete(ctx, "never-existed"))
}

func TestGetOrSetLoadsOnce(t *testing.T) {
	cache, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	var calls int32
	loader := func(context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		return nutrientDoc{Name: "milk", Calcium: 125}, nil
	}

	var first nutrientDoc
	require.NoError(t, cache.GetOrSet(ctx, "food:milk", &first, loader))
	assert.Equal(t, "milk", first.Name)

	var second nutrientDoc
	require.NoError(t, cache.GetOrSet(ctx, "food:milk", &second, loader))
	assert.Equal(t, first, second)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetOrSetLoaderError(t *testing.T) {
	cache, _ := newTestCache(t, time.Hour)

	wantErr := errors.New("upstream down")
	var out nutrientDoc
	err := cache.GetOrSet(context.Background(), "k", &out, func(context.Context) (interface{}, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestGetOrSetConcurrentSingleflight(t *testing.T) {
	cache, _ := newTestCache(t, time.Hour)
	ctx := context.Background()

	var calls int32
	loader := func(context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var out string
			assert.NoError(t, cache.GetOrSet(ctx, "shared", &out, loader))
			assert.Equal(t, "value", out)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetOrSetBackendOutageFallsThrough(t *testing.T) {
	cache, mr := newTestCache(t, time.Hour)
	mr.Close()

	var out nutrientDoc
	err := cache.GetOrSet(context.Background(), "food:milk", &out, func(context.Context) (interface{}, error) {
		return nutrientDoc{Name: "milk", Calcium: 125}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "milk", out.Name)
	assert.Equal(t, 125.0, out.Calcium)
}

func TestGetOrSetCorruptEntryFallsThrough(t *testing.T) {
	cache, mr := newTestCache(t, time.Hour)
	require.NoError(t, mr.Set("dfi:food:milk", "not json"))

	var out nutrientDoc
	err := cache.GetOrSet(context.Background(), "food:milk", &out, func(context.Context) (interface{}, error) {
		return nutrientDoc{Name: "milk"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "milk", out.Name)
}

type countingObserver struct {
	mu     sync.Mutex
	counts map[string]int
}

func (o *countingObserver) ObserveCache(kind string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.counts == nil {
		o.counts = map[string]int{}
	}
	o.counts[kind]++
}

func TestCacheObserver(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	obs := &countingObserver{}
	cache := NewCache(client, "dfi", time.Hour, nil, obs)
	ctx := context.Background()

	var out string
	assert.ErrorIs(t, cache.Get(ctx, "k", &out), ErrCacheMiss)
	require.NoError(t, cache.Set(ctx, "k", "v"))
	require.NoError(t, cache.Get(ctx, "k", &out))

	assert.Equal(t, 1, obs.counts["miss"])
	assert.Equal(t, 1, obs.counts["set"])
	assert.Equal(t, 1, obs.counts["hit"])
}

func TestPing(t *testing.T) {
	cache, mr := newTestCache(t, time.Hour)
	assert.NoError(t, cache.Ping(context.Background()))

	mr.Close()
	assert.Error(t, cache.Ping(context.Background()))
}
