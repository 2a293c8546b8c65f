package shopify

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

const graphqlAPIPath = "/api/2024-10/graphql.json"

const defaultTimeout = 10 * time.Second

var (
	ErrNoStoreDomain = errors.New("store domain is required")
	ErrNoAccessToken = errors.New("storefront access token is required")
)

type cacheMode int

const (
	// cacheable responses with tags are stored in the tag cache until
	// any of their tags is invalidated.
	cacheable cacheMode = iota
	// noCache bypasses the cache entirely, mandatory for mutations.
	noCache
)

type Config struct {
	StoreDomain      string
	AccessToken      string
	HiddenProductTag string
	Timeout          time.Duration
}

// Client is the single outbound-request path to the commerce backend:
// one HTTP POST per call to one configured GraphQL endpoint.
type Client struct {
	endpoint    string
	storeDomain string
	token       string
	hiddenTag   string
	httpClient  *http.Client
	cache       port.ResponseCache
}

func NewClient(cfg Config, cache port.ResponseCache) (*Client, error) {
	const op = "shopify.NewClient"

	if cfg.StoreDomain == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrNoStoreDomain)
	}
	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrNoAccessToken)
	}

	storeDomain := ensureScheme(cfg.StoreDomain)

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		endpoint:    storeDomain + graphqlAPIPath,
		storeDomain: storeDomain,
		token:       cfg.AccessToken,
		hiddenTag:   cfg.HiddenProductTag,
		httpClient:  &http.Client{Timeout: timeout},
		cache:       cache,
	}, nil
}

type request struct {
	query     string
	variables map[string]any
	tags      []string
	mode      cacheMode
	headers   http.Header
}

// fetch executes exactly one backend call, or none on a cache hit.
// The decoded data payload is unmarshaled into out without any domain
// reshaping. There is no automatic retry: retry policy belongs to the
// caller.
func (c *Client) fetch(ctx context.Context, r request, out any) error {
	const op = "shopify.Client.fetch"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	key := ""
	if r.mode == cacheable && len(r.tags) > 0 {
		key = cacheKey(r.query, r.variables)
		if data, ok := c.cache.Get(key); ok {
			return decodeData(data, r.query, out)
		}
	}

	data, err := c.post(ctx, r)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if key != "" {
		c.cache.Set(key, data, r.tags)
	}

	return decodeData(data, r.query, out)
}

func (c *Client) post(ctx context.Context, r request) (json.RawMessage, error) {
	payload := struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables,omitempty"`
	}{r.query, r.variables}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &domain.TransportError{Query: r.query, Err: err}
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.endpoint, bytes.NewReader(body),
	)
	if err != nil {
		return nil, &domain.TransportError{Query: r.query, Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Storefront-Access-Token", c.token)
	for name, values := range r.headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Query: r.query, Err: err}
	}
	defer resp.Body.Close()

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []respError     `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &domain.TransportError{Query: r.query, Err: err}
	}

	if err := classify(envelope.Errors, r.query); err != nil {
		return nil, err
	}

	return envelope.Data, nil
}

func decodeData(data json.RawMessage, query string, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &domain.TransportError{Query: query, Err: err}
	}
	return nil
}

// cacheKey digests the query document and its variables. Map keys are
// marshaled in sorted order, so equal calls share one key.
func cacheKey(query string, variables map[string]any) string {
	h := sha256.New()
	h.Write([]byte(query))
	if len(variables) != 0 {
		vs, _ := json.Marshal(variables)
		h.Write(vs)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ensureScheme defaults a bare store domain to https.
func ensureScheme(domain string) string {
	if strings.Contains(domain, "://") {
		return domain
	}
	return "https://" + domain
}
