package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", time.Minute, zerolog.Nop())
	if c == nil {
		t.Fatal("cache should be constructed for a non-empty address")
	}
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
	return c, mr
}

func TestThroughCachesSecondRead(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	calls := 0
	fetch := func() ([]string, error) {
		calls++
		return []string{"WoodWOP 7.2", "AutoCAD"}, nil
	}

	first, err := Through(ctx, c, KeySkills, fetch)
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	second, err := Through(ctx, c, KeySkills, fetch)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one store fetch, got %d", calls)
	}
	if len(first) != 2 || len(second) != 2 || second[0] != "WoodWOP 7.2" {
		t.Fatalf("cached payload mismatch: %v vs %v", first, second)
	}
}

func TestThroughDoesNotCacheFetchErrors(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	boom := errors.New("store down")
	calls := 0
	fetch := func() (int, error) {
		calls++
		if calls == 1 {
			return 0, boom
		}
		return 42, nil
	}

	if _, err := Through(ctx, c, KeyReviewStats, fetch); !errors.Is(err, boom) {
		t.Fatalf("expected fetch error, got %v", err)
	}
	got, err := Through(ctx, c, KeyReviewStats, fetch)
	if err != nil || got != 42 {
		t.Fatalf("retry after error: got=%v err=%v", got, err)
	}
}

func TestInvalidatePortfolioDropsAllKeys(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	for _, key := range allKeys {
		if _, err := Through(ctx, c, key, func() (string, error) { return "v", nil }); err != nil {
			t.Fatalf("prime %s: %v", key, err)
		}
		if !mr.Exists(key) {
			t.Fatalf("key %s not primed", key)
		}
	}

	c.InvalidatePortfolio(ctx)

	for _, key := range allKeys {
		if mr.Exists(key) {
			t.Fatalf("key %s survived invalidation", key)
		}
	}
}

func TestNilCachePassesThrough(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	calls := 0
	fetch := func() (string, error) {
		calls++
		return "fresh", nil
	}

	for i := 0; i < 3; i++ {
		got, err := Through(ctx, c, KeyTalents, fetch)
		if err != nil || got != "fresh" {
			t.Fatalf("nil cache read %d: got=%v err=%v", i, got, err)
		}
	}
	if calls != 3 {
		t.Fatalf("nil cache should hit the store every time, got %d calls", calls)
	}

	// Invalidation on a nil cache is a no-op, not a panic.
	c.InvalidatePortfolio(ctx)
	if err := c.Ping(ctx); err != nil {
		t.Fatalf("nil ping: %v", err)
	}
}

func TestEmptyAddrMeansNoCache(t *testing.T) {
	if c := New("", "", time.Minute, zerolog.Nop()); c != nil {
		t.Fatal("empty address should yield a nil cache")
	}
}

func TestStalePayloadIsDropped(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	// A payload that no longer unmarshals into the expected shape falls
	// back to the store.
	if err := mr.Set(KeySkills, "not json at all"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, err := Through(ctx, c, KeySkills, func() ([]int, error) { return []int{1, 2}, nil })
	if err != nil || len(got) != 2 {
		t.Fatalf("stale payload should be bypassed: got=%v err=%v", got, err)
	}
}
