package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestRedisRepo(t *testing.T) (*RedisRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisRepo(client, "test:"), mr
}

func TestRedisRepo_SaveLoadDelete(t *testing.T) {
	repo, mr := newTestRedisRepo(t)
	ctx := context.Background()

	if err := repo.Save(ctx, "abc", sample{Name: "ugali", Count: 2}, time.Minute); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !mr.Exists("test:abc") {
		t.Fatal("expected prefixed key to exist")
	}

	var got sample
	if err := repo.Load(ctx, "abc", &got); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != "ugali" || got.Count != 2 {
		t.Errorf("got %+v", got)
	}

	if err := repo.Delete(ctx, "abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Load(ctx, "abc", &got); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestRedisRepo_Expiry(t *testing.T) {
	repo, mr := newTestRedisRepo(t)
	ctx := context.Background()

	if err := repo.Save(ctx, "short", sample{Name: "chai"}, time.Minute); err != nil {
		t.Fatalf("Save: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	var got sample
	if err := repo.Load(ctx, "short", &got); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected expired session, got %v", err)
	}
}

func TestRedisRepo_Flags(t *testing.T) {
	repo, mr := newTestRedisRepo(t)
	ctx := context.Background()

	ok, err := repo.HasFlag(ctx, "popup")
	if err != nil || ok {
		t.Fatalf("HasFlag before set = %v, %v", ok, err)
	}
	if err := repo.SetFlag(ctx, "popup", time.Hour); err != nil {
		t.Fatalf("SetFlag: %v", err)
	}
	ok, err = repo.HasFlag(ctx, "popup")
	if err != nil || !ok {
		t.Fatalf("HasFlag after set = %v, %v", ok, err)
	}

	mr.FastForward(2 * time.Hour)
	if ok, _ := repo.HasFlag(ctx, "popup"); ok {
		t.Error("flag should expire with its ttl")
	}
}
