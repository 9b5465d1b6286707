package riskgate

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/fraudsight/riskgate/store"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return mr, rdb
}

func TestBuildWithRedisHydration(t *testing.T) {
	ctx := context.Background()
	_, rdb := newTestRedis(t)

	seed, err := store.NewRedis(rdb, "rg", 0)
	if err != nil {
		t.Fatalf("NewRedis failed: %v", err)
	}
	if err := seed.Save(ctx, store.Entry{Token: "shared", User: []byte(`{"id":9}`)}); err != nil {
		t.Fatalf("seed redis: %v", err)
	}

	gateway, err := New().WithRedis(rdb, "rg", 0).Build(ctx)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	snap := gateway.Session()
	if !snap.IsAuthenticated || snap.Token != "shared" {
		t.Fatalf("expected redis-hydrated session, got %+v", snap)
	}
}
