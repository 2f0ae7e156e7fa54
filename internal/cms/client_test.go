package cms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, cache *QueryCache, writeToken string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		ProjectID:  "testproj",
		Dataset:    "production",
		APIVersion: "2024-01-01",
		WriteToken: writeToken,
		BaseURL:    srv.URL,
		Cache:      cache,
	})
}

func TestFetchDecodesResultEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2024-01-01/data/query/production" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != `*[_type == "post"]` {
			t.Fatalf("unexpected query %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":[{"title":"Hello"}]}`))
	}, nil, "")

	var posts []struct {
		Title string `json:"title"`
	}
	if err := client.Fetch(context.Background(), `*[_type == "post"]`, nil, &posts); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Hello" {
		t.Fatalf("unexpected result: %+v", posts)
	}
}

func TestFetchEncodesParamsAsJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("$slug"); got != `"web-design"` {
			t.Fatalf("expected JSON-encoded slug param, got %q", got)
		}
		if got := r.URL.Query().Get("$limit"); got != `3` {
			t.Fatalf("expected numeric limit param, got %q", got)
		}
		w.Write([]byte(`{"result":null}`))
	}, nil, "")

	var out *struct{}
	err := client.Fetch(context.Background(), `*[slug.current == $slug][0...$limit]`, Params{"slug": "web-design", "limit": 3}, &out)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if out != nil {
		t.Fatalf("expected null result to leave pointer nil")
	}
}

func TestFetchServesRepeatCallsFromCache(t *testing.T) {
	hits := 0
	cache := NewQueryCache()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"result":{"title":"cached"}}`))
	}, cache, "")

	for i := 0; i < 3; i++ {
		var doc struct {
			Title string `json:"title"`
		}
		if err := client.Fetch(context.Background(), "*[_type == $t][0]", Params{"t": KindHero}, &doc, WithKinds(KindHero)); err != nil {
			t.Fatalf("fetch %d failed: %v", i, err)
		}
		if doc.Title != "cached" {
			t.Fatalf("unexpected title %q", doc.Title)
		}
	}
	if hits != 1 {
		t.Fatalf("expected a single upstream hit, got %d", hits)
	}

	// 失效后下一次请求回源
	cache.InvalidateKind(KindHero)
	var doc struct{}
	if err := client.Fetch(context.Background(), "*[_type == $t][0]", Params{"t": KindHero}, &doc, WithKinds(KindHero)); err != nil {
		t.Fatalf("fetch after invalidation failed: %v", err)
	}
	if hits != 2 {
		t.Fatalf("expected second upstream hit after invalidation, got %d", hits)
	}
}

func TestFetchWithNoCacheBypassesCache(t *testing.T) {
	hits := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"result":1}`))
	}, NewQueryCache(), "")

	for i := 0; i < 2; i++ {
		var n int
		if err := client.Fetch(context.Background(), "count(*)", nil, &n, WithNoCache()); err != nil {
			t.Fatalf("fetch failed: %v", err)
		}
	}
	if hits != 2 {
		t.Fatalf("expected cache bypass to hit upstream twice, got %d", hits)
	}
}

func TestFetchPropagatesUpstreamFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}, nil, "")

	var out any
	if err := client.Fetch(context.Background(), "*", nil, &out); err == nil {
		t.Fatalf("expected error from failing upstream")
	}
}

func TestCreateSubscriberRequiresWriteToken(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	}, nil, "")

	err := client.CreateSubscriber(context.Background(), NewsletterSubscriber{Email: "a@b.com"})
	if !errors.Is(err, ErrMissingWriteToken) {
		t.Fatalf("expected ErrMissingWriteToken, got %v", err)
	}
	if called {
		t.Fatalf("expected no request without a write token")
	}
	if client.CanWrite() {
		t.Fatalf("expected CanWrite to be false")
	}
}

func TestCreateSubscriberPostsMutation(t *testing.T) {
	var payload struct {
		Mutations []struct {
			Create NewsletterSubscriber `json:"create"`
		} `json:"mutations"`
	}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v2024-01-01/data/mutate/production" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret-token" {
			t.Fatalf("unexpected auth header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode mutation payload: %v", err)
		}
		w.Write([]byte(`{"transactionId":"tx1"}`))
	}, nil, "secret-token")

	sub := NewsletterSubscriber{
		Email:        "reader@example.com",
		Status:       "subscribed",
		SubscribedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := client.CreateSubscriber(context.Background(), sub); err != nil {
		t.Fatalf("create subscriber failed: %v", err)
	}
	if len(payload.Mutations) != 1 {
		t.Fatalf("expected 1 mutation, got %d", len(payload.Mutations))
	}
	created := payload.Mutations[0].Create
	if created.Type != KindNewsletter {
		t.Fatalf("expected _type %q, got %q", KindNewsletter, created.Type)
	}
	if created.ID == "" {
		t.Fatalf("expected generated document id")
	}
	if created.Email != "reader@example.com" {
		t.Fatalf("unexpected email %q", created.Email)
	}
}
