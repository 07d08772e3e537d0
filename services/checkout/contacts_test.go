package checkout

import (
	"context"
	"testing"

	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/database/repository/session"
	"github.com/QuickPrimeTech/kenyan-restaurant-sub000/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func TestRepoContactStore_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := &RepoContactStore{Repo: session.NewRedisRepo(client, "")}
	ctx := context.Background()

	got, err := store.LoadContact(ctx, "client-1")
	if err != nil || got != nil {
		t.Fatalf("empty store returned %+v, %v", got, err)
	}

	want := models.SavedContact{Name: "Kamau", Email: "kamau@example.com", Phone: "0722000111", Instructions: "Call on arrival"}
	if err := store.SaveContact(ctx, "client-1", want); err != nil {
		t.Fatal(err)
	}
	if !mr.Exists("pickup-details:client-1") {
		t.Fatal("contact not written under pickup-details key")
	}
	if ttl := mr.TTL("pickup-details:client-1"); ttl != 0 {
		t.Errorf("saved contacts do not expire, ttl = %v", ttl)
	}

	got, err = store.LoadContact(ctx, "client-1")
	if err != nil || got == nil || *got != want {
		t.Errorf("got %+v, %v", got, err)
	}
}
