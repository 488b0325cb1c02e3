package outscraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client talks to the Outscraper API. It holds no mutable state beyond
// the resolved config and is safe for concurrent use.
type Client struct {
	cfg  *Config
	http *http.Client
	log  zerolog.Logger
}

// NewClient creates a client for the given config.
func NewClient(cfg *Config, log zerolog.Logger) *Client {
	cfg = cfg.WithDefaults()
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.timeout()},
		log:  log.With().Str("component", "outscraper").Logger(),
	}
}

// Config returns the resolved client config. Tool validators read the
// async thresholds and truncation cutoffs from here.
func (c *Client) Config() *Config {
	return c.cfg
}

// Run performs one extraction request. If the API defers the work, Run
// polls the job until it completes, fails, or the poll budget elapses.
func (c *Client) Run(ctx context.Context, path string, params url.Values) (*Outcome, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	env, err := c.get(ctx, c.endpoint(path), params)
	if err != nil {
		return nil, err
	}
	if env.deferred() {
		return c.poll(ctx, env)
	}

	records, err := decodeRecords(env.Data)
	if err != nil {
		return nil, err
	}
	return &Outcome{Status: StatusCompleted, Records: records}, nil
}

func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + path
}

// get issues a GET with the retry policy: network errors, timeouts, and
// 5xx responses are retried with exponential backoff; 4xx surfaces
// immediately as *RemoteError.
func (c *Client) get(ctx context.Context, rawURL string, params url.Values) (*envelope, error) {
	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			delay := c.cfg.retryDelay(attempt - 1)
			c.log.Warn().Err(lastErr).Int("attempt", attempt).Dur("backoff", delay).Msg("Retrying request")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		body, status, err := c.do(ctx, rawURL, params)
		if err == nil {
			var env envelope
			if err := json.Unmarshal(body, &env); err != nil {
				return nil, fmt.Errorf("outscraper: parsing response: %w", err)
			}
			return &env, nil
		}
		if status >= 400 && status < 500 {
			return nil, &RemoteError{StatusCode: status, Body: strings.TrimSpace(string(body))}
		}
		lastErr = err
	}
	return nil, &TransientError{Attempts: c.cfg.MaxAttempts, Err: lastErr}
}

func (c *Client) do(ctx context.Context, rawURL string, params url.Values) ([]byte, int, error) {
	reqURL := rawURL
	if len(params) > 0 {
		reqURL = rawURL + "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("creating request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-API-KEY", c.cfg.APIKey)
	req.Header.Set("client", "Outscraper MCP Server")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading response body: %w", err)
	}

	c.log.Debug().
		Str("request_id", requestID).
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("API request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return body, resp.StatusCode, fmt.Errorf("http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, resp.StatusCode, nil
}
