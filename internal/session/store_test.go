package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewRedisStore(rdb, "nav:session", time.Hour), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "sid-1", KeyToken, "abc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "sid-1", KeyUserRole, "admin"); err != nil {
		t.Fatalf("set: %v", err)
	}

	token, err := store.Get(ctx, "sid-1", KeyToken)
	if err != nil || token != "abc" {
		t.Errorf("token = %q, err = %v", token, err)
	}
	role, err := store.Get(ctx, "sid-1", KeyUserRole)
	if err != nil || role != "admin" {
		t.Errorf("role = %q, err = %v", role, err)
	}
}

func TestRedisStoreAbsenceIsNotAnError(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	value, err := store.Get(ctx, "unknown-sid", KeyToken)
	if err != nil {
		t.Fatalf("absent key returned error: %v", err)
	}
	if value != "" {
		t.Errorf("absent key returned %q", value)
	}

	// Empty session ID short-circuits without touching redis.
	value, err = store.Get(ctx, "", KeyToken)
	if err != nil || value != "" {
		t.Errorf("empty sid: value = %q, err = %v", value, err)
	}
}

func TestRedisStoreClear(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "sid-1", KeyToken, "abc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Clear(ctx, "sid-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	value, err := store.Get(ctx, "sid-1", KeyToken)
	if err != nil || value != "" {
		t.Errorf("after clear: value = %q, err = %v", value, err)
	}

	// Clearing twice is fine.
	if err := store.Clear(ctx, "sid-1"); err != nil {
		t.Errorf("second clear: %v", err)
	}
}

func TestRedisStoreTTL(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "sid-1", KeyToken, "abc"); err != nil {
		t.Fatalf("set: %v", err)
	}

	mr.FastForward(2 * time.Hour)

	value, err := store.Get(ctx, "sid-1", KeyToken)
	if err != nil || value != "" {
		t.Errorf("expired session still visible: value = %q, err = %v", value, err)
	}
}

func TestRedisStoreUnavailable(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	mr.Close()

	if _, err := store.Get(ctx, "sid-1", KeyToken); err == nil {
		t.Error("expected error from closed redis")
	}
	if err := store.Set(ctx, "sid-1", KeyToken, "abc"); err == nil {
		t.Error("expected error from closed redis")
	}
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if v, err := store.Get(ctx, "sid", KeyToken); err != nil || v != "" {
		t.Fatalf("empty store: value = %q, err = %v", v, err)
	}

	if err := store.Set(ctx, "sid", KeyToken, "abc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, _ := store.Get(ctx, "sid", KeyToken); v != "abc" {
		t.Errorf("value = %q", v)
	}

	if err := store.Clear(ctx, "sid"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if v, _ := store.Get(ctx, "sid", KeyToken); v != "" {
		t.Errorf("after clear: value = %q", v)
	}
}
