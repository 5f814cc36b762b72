// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package crossref queries the CrossRef works API for bibliographic records.
package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/crossref-mcp/internal/cache"
	"github.com/pdiddy/crossref-mcp/internal/httputil"
	"github.com/pdiddy/crossref-mcp/pkg/types"
)

// Base URLs for the CrossRef API. Declared as vars so tests can
// substitute an httptest server.
var (
	worksSearchBase = "https://api.crossref.org/works"
	worksBase       = "https://api.crossref.org/works/"
)

const defaultTimeout = 30 * time.Second

// defaultUserAgent identifies this client when no override is configured.
const defaultUserAgent = "crossref-mcp/0.1"

// Client performs best-effort lookups against the CrossRef works API.
// Each lookup is a single HTTP GET unless retries are configured; an
// optional cache short-circuits repeat lookups.
type Client struct {
	httpClient *http.Client
	cfg        types.CrossrefConfig
	cache      *cache.Store
	logger     zerolog.Logger
}

// New creates a Client. store may be nil, which disables caching.
func New(cfg types.CrossrefConfig, store *cache.Store, logger zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		cfg:        cfg,
		cache:      store,
		logger:     logger,
	}
}

// SearchWork queries the works search endpoint with rows=1 and returns the
// first matching record. It returns (nil, nil) when the API responds
// successfully but has no candidates; errors cover network failure,
// non-2xx status, and malformed response bodies.
func (c *Client) SearchWork(ctx context.Context, query string) (*types.Work, error) {
	if c.cache != nil {
		if w, ok, err := c.cache.WorkByQuery(ctx, query); err != nil {
			c.logger.Warn().Err(err).Msg("query cache read failed")
		} else if ok {
			return w, nil
		}
	}

	params := url.Values{
		"query": {query},
		"rows":  {"1"},
	}
	if c.cfg.Mailto != "" {
		params.Set("mailto", c.cfg.Mailto)
	}

	var sr searchResponse
	if err := c.getJSON(ctx, worksSearchBase+"?"+params.Encode(), &sr); err != nil {
		return nil, err
	}
	if len(sr.Message.Items) == 0 {
		return nil, nil
	}

	w := &sr.Message.Items[0]
	c.cachePut(ctx, w, query)
	return w, nil
}

// WorkByDOI fetches a single record from the per-DOI endpoint. Unlike
// SearchWork, a missing record is an error (the endpoint answers 404).
func (c *Client) WorkByDOI(ctx context.Context, doi string) (*types.Work, error) {
	if c.cache != nil {
		if w, ok, err := c.cache.WorkByDOI(ctx, doi); err != nil {
			c.logger.Warn().Err(err).Msg("DOI cache read failed")
		} else if ok {
			return w, nil
		}
	}

	reqURL := worksBase + doi
	if c.cfg.Mailto != "" {
		reqURL += "?mailto=" + url.QueryEscape(c.cfg.Mailto)
	}

	var wr workResponse
	if err := c.getJSON(ctx, reqURL, &wr); err != nil {
		return nil, err
	}

	w := &wr.Message
	c.cachePut(ctx, w, "")
	return w, nil
}

// getJSON issues one GET with the identifying User-Agent and decodes the
// body into out.
func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent())

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, c.cfg.MaxRetries)
	if err != nil {
		return fmt.Errorf("CrossRef API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("CrossRef API returned HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing CrossRef response: %w", err)
	}
	return nil
}

func (c *Client) userAgent() string {
	ua := c.cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	if c.cfg.Mailto != "" {
		ua += " (mailto:" + c.cfg.Mailto + ")"
	}
	return ua
}

// cachePut stores a fetched record. Cache write failures are logged and
// otherwise ignored; the lookup already succeeded.
func (c *Client) cachePut(ctx context.Context, w *types.Work, query string) {
	if c.cache == nil || w.DOI == "" {
		return
	}
	if err := c.cache.PutWork(ctx, w); err != nil {
		c.logger.Warn().Err(err).Str("doi", w.DOI).Msg("cache write failed")
		return
	}
	if query != "" {
		if err := c.cache.PutQuery(ctx, query, w.DOI); err != nil {
			c.logger.Warn().Err(err).Str("query", query).Msg("cache write failed")
		}
	}
}

// CrossRef API JSON envelopes.
type searchResponse struct {
	Message struct {
		Items []types.Work `json:"items"`
	} `json:"message"`
}

type workResponse struct {
	Message types.Work `json:"message"`
}
