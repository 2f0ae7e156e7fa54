package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrMissingWriteToken indicates the content-store write credential is absent.
// Write paths must fail fast with this instead of attempting the call.
var ErrMissingWriteToken = errors.New("cms: write token is not configured")

// DefaultRevalidate is the cache window applied to every fetch unless the
// caller overrides it.
const DefaultRevalidate = 60 * time.Second

// Params is the query parameter map. Keys are unique; values are scalars or
// primitive arrays.
type Params map[string]any

// Config carries everything needed to talk to a content-store project.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	WriteToken string

	// BaseURL overrides the derived API host, mainly for tests.
	BaseURL string

	HTTPClient *http.Client
	Cache      *QueryCache
}

// Client executes structured queries against the external document store and
// deserializes results into caller-supplied shapes. It performs no runtime
// schema validation and no retries; errors propagate to the caller.
type Client struct {
	dataset    string
	apiVersion string
	writeToken string
	baseURL    string
	httpc      *http.Client
	cache      *QueryCache
}

// NewClient builds a Client. A nil cache disables read-through caching.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.api.sanity.io", cfg.ProjectID)
	}
	httpc := cfg.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		dataset:    cfg.Dataset,
		apiVersion: cfg.APIVersion,
		writeToken: cfg.WriteToken,
		baseURL:    strings.TrimRight(base, "/"),
		httpc:      httpc,
		cache:      cfg.Cache,
	}
}

type fetchOptions struct {
	revalidate time.Duration
	noCache    bool
	kinds      []string
}

// FetchOption adjusts caching behavior for a single fetch.
type FetchOption func(*fetchOptions)

// WithRevalidate overrides the default cache window for this call.
func WithRevalidate(d time.Duration) FetchOption {
	return func(o *fetchOptions) { o.revalidate = d }
}

// WithNoCache bypasses the cache entirely for this call.
func WithNoCache() FetchOption {
	return func(o *fetchOptions) { o.noCache = true }
}

// WithKinds tags the cached result with the document kinds the query touches,
// making it eligible for webhook-driven invalidation.
func WithKinds(kinds ...string) FetchOption {
	return func(o *fetchOptions) { o.kinds = kinds }
}

// Fetch runs a query with the given params and unmarshals the result into
// result, which must be a pointer. A store-side null result leaves a pointer
// target nil; absence is not an error.
func (c *Client) Fetch(ctx context.Context, query string, params Params, result any, opts ...FetchOption) error {
	o := fetchOptions{revalidate: DefaultRevalidate}
	for _, opt := range opts {
		opt(&o)
	}

	key := cacheKey(query, params)
	if c.cache != nil && !o.noCache {
		if raw, ok := c.cache.Get(key, o.revalidate); ok {
			return decodeResult(raw, result)
		}
	}

	raw, err := c.runQuery(ctx, query, params)
	if err != nil {
		return err
	}
	if c.cache != nil && !o.noCache {
		c.cache.Set(key, raw, o.kinds)
	}
	return decodeResult(raw, result)
}

// CanWrite reports whether the client holds a write credential.
func (c *Client) CanWrite() bool {
	return c.writeToken != ""
}

// CreateSubscriber writes a newsletter subscriber document to the content
// store. It fails fast with ErrMissingWriteToken when no write credential is
// configured.
func (c *Client) CreateSubscriber(ctx context.Context, sub NewsletterSubscriber) error {
	if !c.CanWrite() {
		return ErrMissingWriteToken
	}
	sub.Type = KindNewsletter
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}

	payload, err := json.Marshal(map[string]any{
		"mutations": []map[string]any{{"create": sub}},
	})
	if err != nil {
		return fmt.Errorf("cms: encode mutation: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v%s/data/mutate/%s", c.baseURL, c.apiVersion, c.dataset)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("cms: build mutation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.writeToken)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("cms: mutation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("cms: mutation failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return nil
}

func (c *Client) runQuery(ctx context.Context, query string, params Params) (json.RawMessage, error) {
	values := url.Values{}
	values.Set("query", query)
	for k, v := range params {
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("cms: encode param %q: %w", k, err)
		}
		values.Set("$"+k, string(encoded))
	}

	endpoint := fmt.Sprintf("%s/v%s/data/query/%s?%s", c.baseURL, c.apiVersion, c.dataset, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("cms: build query request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cms: query request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("cms: query failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("cms: decode query response: %w", err)
	}
	return envelope.Result, nil
}

func decodeResult(raw json.RawMessage, result any) error {
	if result == nil {
		return nil
	}
	if len(raw) == 0 {
		raw = json.RawMessage("null")
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("cms: decode result: %w", err)
	}
	return nil
}

// cacheKey canonicalizes query+params so equivalent calls share an entry.
func cacheKey(query string, params Params) string {
	if len(params) == 0 {
		return query
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(query)
	for _, k := range keys {
		encoded, _ := json.Marshal(params[k])
		b.WriteByte('|')
		b.WriteString(k)
		b.WriteByte('=')
		b.Write(encoded)
	}
	return b.String()
}
