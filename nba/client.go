// Package nba is an HTTP client for the NBA Stats API (stats.nba.com).
//
// The client knows nothing about individual endpoints: it takes any value
// satisfying Request (a wire path plus a flat query-parameter map), executes
// the GET with retry and optional pacing, and hands the body to the
// endpoint's declared decoder. Endpoint definitions live in the endpoints
// package.
package nba

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net"
	"net/http"
	"net/url"
	"sync"
	"syscall"
	"time"

	"golang.org/x/time/rate"
)

// BaseURL is the fixed prefix every endpoint path is appended to.
const BaseURL = "https://stats.nba.com/stats"

// The upstream rejects requests that do not look like they came from a
// desktop browser, so every request carries this header set.
var defaultHeaders = map[string]string{
	"Accept":           "*/*",
	"Accept-Encoding":  "gzip, deflate, br",
	"Accept-Language":  "en-US,en;q=0.5",
	"Connection":       "keep-alive",
	"Referer":          "https://stats.nba.com/",
	"Origin":           "https://stats.nba.com",
	"Pragma":           "no-cache",
	"Cache-Control":    "no-cache",
	"User-Agent":       "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:109.0) Gecko/20100101 Firefox/113.0",
	"Sec-Ch-Ua":        `"Not.A/Brand";v="8", "Chromium";v="114", "Firefox";v="114"`,
	"Sec-Ch-Ua-Mobile": "?0",
	"Sec-Fetch-Dest":   "empty",
}

// Request describes one API call: a stable path segment and a pure function
// of the request's own fields producing its query parameters.
type Request interface {
	Path() string
	Params() map[string]string
}

// Endpoint pairs a Request with its declared response decoder.
type Endpoint[T any] interface {
	Request
	Decode(body []byte) (T, error)
}

// Client executes endpoint requests against the NBA Stats API.
//
// The underlying connection pool is created lazily under a mutex on first
// use, so concurrent first callers share one pool. A pool supplied via
// WithHTTPClient is never closed by Close.
type Client struct {
	baseURL    string
	timeout    time.Duration
	maxRetries int
	retryBase  time.Duration
	retryMax   time.Duration
	jitter     float64
	limiter    *rate.Limiter
	logger     *slog.Logger

	mu         sync.Mutex
	httpClient *http.Client
	ownsClient bool
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Default 30s.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithMaxRetries sets how many retries follow the first attempt. Default 2.
func WithMaxRetries(n int) Option {
	return func(c *Client) { c.maxRetries = n }
}

// WithRetryWait bounds the exponential backoff schedule. Defaults 1s..8s.
func WithRetryWait(base, max time.Duration) Option {
	return func(c *Client) {
		c.retryBase = base
		c.retryMax = max
	}
}

// WithJitter sets the random fraction added on top of each backoff wait.
// Zero disables jitter. Default 0.25.
func WithJitter(f float64) Option {
	return func(c *Client) { c.jitter = f }
}

// WithRequestsPerSecond paces all requests through a shared rate limiter.
// The upstream has no documented limit but throttles bursty callers.
func WithRequestsPerSecond(rps float64) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), 1) }
}

// WithHTTPClient supplies an externally-owned connection pool. Close will
// not touch it.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
		c.ownsClient = false
	}
}

// WithBaseURL overrides the upstream base URL. Intended for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithLogger sets the logger used for retry and throttling events.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New returns a Client with the given options applied over the defaults.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    BaseURL,
		timeout:    30 * time.Second,
		maxRetries: 2,
		retryBase:  time.Second,
		retryMax:   8 * time.Second,
		jitter:     0.25,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

func (c *Client) pool() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout: c.timeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
		c.ownsClient = true
	}
	return c.httpClient
}

// Close releases the connection pool if the client created it. A client
// handed an external pool leaves it alone. Calling a fetch method after
// Close lazily creates a fresh pool.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ownsClient && c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
		c.httpClient = nil
		c.ownsClient = false
	}
}

// Do executes one request with retry and returns the raw response body.
// Retries cover HTTP 429, HTTP 5xx and network-level timeouts/resets; every
// other failure propagates immediately. After exhausting retries the last
// underlying error is returned as-is.
func (c *Client) Do(ctx context.Context, req Request) ([]byte, error) {
	var lastErr error
	wait := c.retryBase
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			d := c.withJitter(wait)
			c.logger.Warn("retrying request",
				"path", req.Path(), "attempt", attempt, "wait", d, "err", lastErr)
			if err := sleep(ctx, d); err != nil {
				return nil, err
			}
			if wait *= 2; wait > c.retryMax {
				wait = c.retryMax
			}
		}
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		body, err := c.attempt(ctx, req)
		if err == nil {
			return body, nil
		}
		if !retryable(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (c *Client) attempt(ctx context.Context, req Request) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", c.baseURL, req.Path()), nil)
	if err != nil {
		return nil, err
	}
	query := url.Values{}
	for k, v := range req.Params() {
		query.Set(k, v)
	}
	httpReq.URL.RawQuery = query.Encode()
	for k, v := range defaultHeaders {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.pool().Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Setting Accept-Encoding by hand disables the transport's transparent
	// decompression, so unwrap gzip here.
	reader := io.Reader(resp.Body)
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		reader = gz
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		statusErr := &StatusError{
			Path:       req.Path(),
			StatusCode: resp.StatusCode,
			Body:       truncate(body, 200),
			RetryAfter: resp.Header.Get("Retry-After"),
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			// Observed for diagnosis only; the local backoff schedule
			// governs the actual wait.
			c.logger.Debug("throttled by upstream",
				"path", req.Path(), "retry_after", statusErr.RetryAfter)
		}
		return nil, statusErr
	}
	return body, nil
}

func (c *Client) withJitter(wait time.Duration) time.Duration {
	if c.jitter <= 0 {
		return wait
	}
	return wait + time.Duration(rand.Float64()*c.jitter*float64(wait))
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusTooManyRequests || statusErr.StatusCode >= 500
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Get fetches one endpoint and decodes its response. Decode failures are
// wrapped in a DecodeError carrying the endpoint path and are never retried.
func Get[T any](ctx context.Context, c *Client, ep Endpoint[T]) (T, error) {
	var zero T
	body, err := c.Do(ctx, ep)
	if err != nil {
		return zero, err
	}
	out, err := ep.Decode(body)
	if err != nil {
		return zero, &DecodeError{Path: ep.Path(), Err: err}
	}
	return out, nil
}
