package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)
	return mr
}

func newRedisClient(t *testing.T, mr *miniredis.Miniredis) *redis.Client {
	t.Helper()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestRedisRequiresClient(t *testing.T) {
	if _, err := NewRedis(nil, "rg", 0); err == nil {
		t.Fatal("expected error for nil client")
	}
}

func TestRedisKeyLayout(t *testing.T) {
	ctx := context.Background()
	mr := newMiniredis(t)

	s, err := NewRedis(newRedisClient(t, mr), "dash", 0)
	if err != nil {
		t.Fatalf("NewRedis: %v", err)
	}
	if err := s.Save(ctx, Entry{Token: "T1", User: []byte(`{"id":1}`)}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if got, _ := mr.Get("dash:token"); got != "T1" {
		t.Fatalf("dash:token = %q", got)
	}
	if got, _ := mr.Get("dash:user"); got != `{"id":1}` {
		t.Fatalf("dash:user = %q", got)
	}
}

func TestRedisTTLExpiresSession(t *testing.T) {
	ctx := context.Background()
	mr := newMiniredis(t)

	s, err := NewRedis(newRedisClient(t, mr), "rg", time.Minute)
	if err != nil {
		t.Fatalf("NewRedis: %v", err)
	}
	if err := s.Save(ctx, Entry{Token: "T1", User: []byte(`{}`)}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	entry, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !entry.IsZero() {
		t.Fatalf("expected expired session, got %+v", entry)
	}
}

func TestRedisSaveDropsStaleUser(t *testing.T) {
	ctx := context.Background()
	mr := newMiniredis(t)

	s, err := NewRedis(newRedisClient(t, mr), "rg", 0)
	if err != nil {
		t.Fatalf("NewRedis: %v", err)
	}
	if err := s.Save(ctx, Entry{Token: "T1", User: []byte(`{"id":1}`)}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(ctx, Entry{Token: "T2"}); err != nil {
		t.Fatalf("Save without user: %v", err)
	}

	entry, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if entry.Token != "T2" || len(entry.User) != 0 {
		t.Fatalf("entry = %+v, want token only", entry)
	}
}

func TestRedisUnavailable(t *testing.T) {
	ctx := context.Background()
	mr := newMiniredis(t)
	rdb := newRedisClient(t, mr)

	s, err := NewRedis(rdb, "rg", 0)
	if err != nil {
		t.Fatalf("NewRedis: %v", err)
	}

	mr.Close()

	if _, err := s.Load(ctx); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Load err = %v, want ErrUnavailable", err)
	}
	if err := s.Save(ctx, Entry{Token: "T"}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Save err = %v, want ErrUnavailable", err)
	}
	if err := s.Clear(ctx); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Clear err = %v, want ErrUnavailable", err)
	}
}
