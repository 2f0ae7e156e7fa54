package cms

import (
	"testing"
	"time"
)

func TestQueryCacheGetRespectsMaxAge(t *testing.T) {
	cache := NewQueryCache()
	cache.Set("q1", []byte(`{"ok":true}`), []string{KindPost})

	if _, ok := cache.Get("q1", time.Minute); !ok {
		t.Fatalf("expected fresh entry to be returned")
	}
	if _, ok := cache.Get("q1", 0); ok {
		t.Fatalf("expected zero max age to reject every entry")
	}
	if _, ok := cache.Get("missing", time.Minute); ok {
		t.Fatalf("expected miss for unknown key")
	}
}

func TestQueryCacheInvalidateKind(t *testing.T) {
	cache := NewQueryCache()
	cache.Set("posts", []byte(`[]`), []string{KindPost})
	cache.Set("post-detail", []byte(`{}`), []string{KindPost})
	cache.Set("services", []byte(`[]`), []string{KindService})
	cache.Set("home", []byte(`{}`), []string{KindHero, KindService})

	dropped := cache.InvalidateKind(KindPost)
	if dropped != 2 {
		t.Fatalf("expected 2 dropped entries, got %d", dropped)
	}
	if _, ok := cache.Get("services", time.Minute); !ok {
		t.Fatalf("expected unrelated entry to survive")
	}
	if _, ok := cache.Get("post-detail", time.Minute); ok {
		t.Fatalf("expected tagged entry to be dropped")
	}

	// 多标签条目只要命中一个 kind 就会失效
	if dropped := cache.InvalidateKind(KindHero); dropped != 1 {
		t.Fatalf("expected multi-kind entry to be dropped, got %d", dropped)
	}
	if cache.Len() != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", cache.Len())
	}
}

func TestQueryCacheInvalidateAll(t *testing.T) {
	cache := NewQueryCache()
	cache.Set("a", []byte(`1`), nil)
	cache.Set("b", []byte(`2`), nil)

	cache.InvalidateAll()
	if cache.Len() != 0 {
		t.Fatalf("expected empty cache, got %d entries", cache.Len())
	}
}
