package bin

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupCache(t *testing.T, inner Fetcher) (*CachedFetcher, *miniredis.Miniredis, func()) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cached := NewCachedFetcher(inner, client, time.Minute, nil)
	cleanup := func() {
		client.Close()
		mr.Close()
	}
	return cached, mr, cleanup
}

func TestCachedFetcherServesFromCache(t *testing.T) {
	inner := &fakeFetcher{records: map[string]Record{"411111": goodRecord()}}
	cached, _, cleanup := setupCache(t, inner)
	defer cleanup()

	ctx := context.Background()

	res := cached.FetchBin(ctx, "411111")
	if !res.Success {
		t.Fatalf("first fetch failed: %+v", res)
	}
	if inner.calls != 1 {
		t.Fatalf("expected one upstream call, got %d", inner.calls)
	}

	res = cached.FetchBin(ctx, "411111")
	if !res.Success || res.Data.Issuer != "Banco Exemplo" {
		t.Fatalf("cached fetch failed: %+v", res)
	}
	if inner.calls != 1 {
		t.Fatalf("cache miss on second fetch, upstream calls: %d", inner.calls)
	}
}

func TestCachedFetcherDoesNotCacheFailures(t *testing.T) {
	inner := &fakeFetcher{records: map[string]Record{}}
	cached, _, cleanup := setupCache(t, inner)
	defer cleanup()

	ctx := context.Background()

	if res := cached.FetchBin(ctx, "999999"); res.Success {
		t.Fatal("expected failure")
	}
	if res := cached.FetchBin(ctx, "999999"); res.Success {
		t.Fatal("expected failure")
	}
	if inner.calls != 2 {
		t.Fatalf("failures must not be cached, upstream calls: %d", inner.calls)
	}
}

func TestCachedFetcherExpiry(t *testing.T) {
	inner := &fakeFetcher{records: map[string]Record{"411111": goodRecord()}}
	cached, mr, cleanup := setupCache(t, inner)
	defer cleanup()

	ctx := context.Background()

	cached.FetchBin(ctx, "411111")
	mr.FastForward(2 * time.Minute)

	cached.FetchBin(ctx, "411111")
	if inner.calls != 2 {
		t.Fatalf("expected refetch after TTL, upstream calls: %d", inner.calls)
	}
}
