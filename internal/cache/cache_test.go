// Localescout - Business Review Analytics and Location Scouting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/localescout

package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/localescout/internal/metrics"
)

func newTestCache(t *testing.T, ttl time.Duration) *Cache {
	t.Helper()
	c := New("test-"+t.Name(), ttl)
	t.Cleanup(c.Close)
	return c
}

func TestCacheBasicOperations(t *testing.T) {
	c := newTestCache(t, time.Minute)

	c.Set("geo:toronto", "rows")
	value, exists := c.Get("geo:toronto")
	if !exists || value != "rows" {
		t.Errorf("Get() = %v, %v", value, exists)
	}

	if _, exists := c.Get("geo:phoenix"); exists {
		t.Error("Expected missing key to miss")
	}
}

func TestCacheExpiration(t *testing.T) {
	c := newTestCache(t, 50*time.Millisecond)

	c.Set("key1", "value1")
	if _, exists := c.Get("key1"); !exists {
		t.Fatal("Expected key1 to exist immediately after set")
	}

	time.Sleep(80 * time.Millisecond)

	if _, exists := c.Get("key1"); exists {
		t.Error("Expected key1 to be expired")
	}
	if c.GetStats().Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", c.GetStats().Evictions)
	}
}

func TestCacheStats(t *testing.T) {
	c := newTestCache(t, time.Minute)

	c.Set("key1", "value1")
	c.Get("key1") // hit
	c.Get("key2") // miss
	c.Get("key1") // hit

	stats := c.GetStats()
	if stats.Hits != 2 || stats.Misses != 1 {
		t.Errorf("hits/misses = %d/%d, want 2/1", stats.Hits, stats.Misses)
	}

	hitRate := c.HitRate()
	if hitRate < 66.65 || hitRate > 66.68 {
		t.Errorf("HitRate() = %.2f, want ~66.67", hitRate)
	}

	if got := testutil.ToFloat64(metrics.CacheHits.WithLabelValues(c.Name())); got != 2 {
		t.Errorf("cache_hits_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.CacheMisses.WithLabelValues(c.Name())); got != 1 {
		t.Errorf("cache_misses_total = %v, want 1", got)
	}
}

func TestCacheHitRateZeroOperations(t *testing.T) {
	c := newTestCache(t, time.Minute)
	if c.HitRate() != 0 {
		t.Errorf("HitRate() = %v, want 0", c.HitRate())
	}
}

func TestCacheSetWithTTLOverridesDefault(t *testing.T) {
	c := newTestCache(t, time.Hour)

	c.SetWithTTL("short", "v", 30*time.Millisecond)
	time.Sleep(60 * time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("Expected custom TTL to expire the entry")
	}
}

func TestCachePartialCleanup(t *testing.T) {
	c := newTestCache(t, time.Minute)

	c.SetWithTTL("short-lived", "value1", 20*time.Millisecond)
	c.SetWithTTL("long-lived", "value2", time.Minute)
	time.Sleep(40 * time.Millisecond)

	c.cleanup()

	stats := c.GetStats()
	if stats.TotalKeys != 1 {
		t.Errorf("TotalKeys = %d, want 1", stats.TotalKeys)
	}
	if stats.Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", stats.Evictions)
	}
	if _, ok := c.Get("long-lived"); !ok {
		t.Error("Expected long-lived key to survive cleanup")
	}
}

func TestCacheCloseIdempotent(t *testing.T) {
	c := New("close-test", time.Minute)
	c.Close()
	c.Close()
}

func TestGetOrLoad(t *testing.T) {
	c := newTestCache(t, time.Minute)
	ctx := context.Background()

	calls := 0
	load := func(context.Context) (interface{}, error) {
		calls++
		return []string{"Pier 4"}, nil
	}

	v, cached, err := c.GetOrLoad(ctx, "geo", load)
	if err != nil || cached {
		t.Fatalf("first call cached=%v err=%v", cached, err)
	}
	if got := v.([]string); got[0] != "Pier 4" {
		t.Errorf("value = %v", got)
	}

	_, cached, err = c.GetOrLoad(ctx, "geo", load)
	if err != nil || !cached {
		t.Fatalf("second call cached=%v err=%v", cached, err)
	}
	if calls != 1 {
		t.Errorf("load called %d times, want 1", calls)
	}
}

func TestGetOrLoad_ErrorsNotCached(t *testing.T) {
	c := newTestCache(t, time.Minute)
	ctx := context.Background()
	boom := errors.New("store down")

	if _, _, err := c.GetOrLoad(ctx, "k", func(context.Context) (interface{}, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	v, cached, err := c.GetOrLoad(ctx, "k", func(context.Context) (interface{}, error) { return 7, nil })
	if err != nil || cached || v != 7 {
		t.Errorf("after error: v=%v cached=%v err=%v", v, cached, err)
	}
}

func TestGetOrLoad_CollapsesConcurrentMisses(t *testing.T) {
	c := newTestCache(t, time.Minute)

	var calls int32
	release := make(chan struct{})
	load := func(context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "done", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := c.GetOrLoad(context.Background(), "seasonality", load); err != nil {
				t.Errorf("GetOrLoad() error = %v", err)
			}
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("load called %d times, want 1", n)
	}
}

func TestGetOrLoad_WaiterOutlivesCanceledLeader(t *testing.T) {
	c := newTestCache(t, time.Minute)

	started := make(chan struct{})
	release := make(chan struct{})
	load := func(ctx context.Context) (interface{}, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return "rows", nil
	}

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, _, err := c.GetOrLoad(leaderCtx, "geo:toronto", load)
		leaderErr <- err
	}()
	<-started

	followerDone := make(chan struct{})
	var (
		got       interface{}
		followErr error
	)
	go func() {
		defer close(followerDone)
		got, _, followErr = c.GetOrLoad(context.Background(), "geo:toronto", load)
	}()

	time.Sleep(20 * time.Millisecond)
	cancelLeader()
	if err := <-leaderErr; !errors.Is(err, context.Canceled) {
		t.Errorf("leader err = %v, want context.Canceled", err)
	}

	close(release)
	<-followerDone
	if followErr != nil || got != "rows" {
		t.Fatalf("follower got %v, %v; want rows", got, followErr)
	}
	if v, ok := c.Get("geo:toronto"); !ok || v != "rows" {
		t.Errorf("shared load result not cached: %v, %v", v, ok)
	}
}

func TestGetOrLoad_CallerDeadline(t *testing.T) {
	c := newTestCache(t, time.Minute)

	release := make(chan struct{})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, err := c.GetOrLoad(ctx, "slow", func(context.Context) (interface{}, error) {
		<-release
		return "late", nil
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want context.DeadlineExceeded", err)
	}
}

func TestLoadTyped(t *testing.T) {
	c := newTestCache(t, time.Minute)

	got, cached, err := Load(context.Background(), c, "n", func(context.Context) (int, error) { return 42, nil })
	if err != nil || cached || got != 42 {
		t.Fatalf("Load() = %v, %v, %v", got, cached, err)
	}

	c.Set("wrong", "not an int")
	if _, _, err := Load(context.Background(), c, "wrong", func(context.Context) (int, error) { return 0, nil }); err == nil {
		t.Error("expected type mismatch error")
	}
}

func TestGenerateKey(t *testing.T) {
	type params struct {
		Tag  int64
		City string
	}

	k1 := GenerateKey("geo", params{Tag: 2, City: "Toronto"})
	k2 := GenerateKey("geo", params{Tag: 2, City: "Toronto"})
	k3 := GenerateKey("geo", params{Tag: 2, City: "Phoenix"})
	k4 := GenerateKey("density", params{Tag: 2, City: "Toronto"})

	if k1 != k2 {
		t.Error("Expected same params to generate same key")
	}
	if k1 == k3 || k1 == k4 {
		t.Error("Expected different params or method to generate different keys")
	}
}

func TestGenerateKeyUnmarshalable(t *testing.T) {
	key := GenerateKey("bad", make(chan int))
	if key == "" {
		t.Error("Expected a fallback key for unmarshalable params")
	}
}

func TestCacheConcurrency(t *testing.T) {
	c := newTestCache(t, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := GenerateKey("k", []int{n, j % 10})
				c.Set(key, j)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	if c.GetStats().TotalKeys != 100 {
		t.Errorf("TotalKeys = %d, want 100", c.GetStats().TotalKeys)
	}
}
