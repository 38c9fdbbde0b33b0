package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T, ttl time.Duration) (*OTPStore, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewOTPStore(rdb, ttl), s
}

func TestOTPStore_SetGetDelete(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	ctx := context.Background()

	if err := store.Set(ctx, "a@b.c", "123456"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := store.Get(ctx, "a@b.c")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "123456" {
		t.Fatalf("otp = %q", got)
	}

	if err := store.Delete(ctx, "a@b.c"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, "a@b.c"); err != ErrOTPNotFound {
		t.Fatalf("after delete err = %v, want ErrOTPNotFound", err)
	}
}

func TestOTPStore_Expiry(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	if err := store.Set(ctx, "a@b.c", "654321"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	if _, err := store.Get(ctx, "a@b.c"); err != ErrOTPNotFound {
		t.Fatalf("err = %v, want ErrOTPNotFound", err)
	}
}
