package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/godilite/talentbridge-stats/internal/stats"
	"go.uber.org/zap"
)

const (
	SummaryPath = "/statistics-summary-proxy"
	ExportPath  = "/statistics-export-proxy"

	genericFailure = "request failed"
)

// FetchError is returned for any failed proxy call. Status is zero when no
// response arrived.
type FetchError struct {
	Status  int
	Message string
	Err     error
}

func (e *FetchError) Error() string { return e.Message }

func (e *FetchError) Unwrap() error { return e.Err }

type ClientOption func(*Client)

func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

func WithClientLogger(l *zap.Logger) ClientOption {
	return func(cl *Client) {
		if l != nil {
			cl.logger = l
		}
	}
}

// Client calls the statistics proxy the way the browser dashboard does.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger *zap.Logger
}

func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid proxy url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid proxy url %q: scheme and host are required", baseURL)
	}

	c := &Client{base: base, http: http.DefaultClient, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("dashboard.client")
	return c, nil
}

// FetchSnapshot loads the statistics for the range, or for all time when r
// is nil.
func (c *Client) FetchSnapshot(ctx context.Context, r *stats.DateRange) (*stats.Snapshot, error) {
	body, err := c.get(ctx, SummaryPath, "application/json", r)
	if err != nil {
		return nil, err
	}
	snap, err := stats.Decode(body)
	if err != nil {
		return nil, &FetchError{Status: http.StatusOK, Message: genericFailure, Err: err}
	}
	return snap, nil
}

// ExportReport returns the spreadsheet bytes without looking at them.
func (c *Client) ExportReport(ctx context.Context, r *stats.DateRange) ([]byte, error) {
	return c.get(ctx, ExportPath, "*/*", r)
}

// URL builds the proxy URL. The range is sent as fromDate/toDate.
func (c *Client) URL(path string, r *stats.DateRange) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if r != nil {
		q := url.Values{}
		q.Set("fromDate", r.StartDate())
		q.Set("toDate", r.EndDate())
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func (c *Client) get(ctx context.Context, path, accept string, r *stats.DateRange) ([]byte, error) {
	target := c.URL(path, r)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &FetchError{Message: genericFailure, Err: err}
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("proxy request failed", zap.String("url", target), zap.Error(err))
		return nil, &FetchError{Message: genericFailure, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Status: resp.StatusCode, Message: genericFailure, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ferr := &FetchError{Status: resp.StatusCode, Message: proxyMessage(body)}
		c.logger.Warn("proxy returned error status",
			zap.String("url", target),
			zap.Int("status", resp.StatusCode),
			zap.String("message", ferr.Message))
		return nil, ferr
	}
	return body, nil
}

func proxyMessage(body []byte) string {
	var eb struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &eb); err == nil {
		if m := strings.TrimSpace(eb.Error); m != "" {
			return m
		}
	}
	return genericFailure
}
