// Package upstream talks to the external reporting API. Every call is a single
// best-effort attempt: no retries, no caching, no timeout beyond the
// transport's own.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/godilite/talentbridge-stats/internal/stats"
	"go.uber.org/zap"
)

const (
	summaryPath = "/summary"
	exportPath  = "/export-excel"

	DefaultBaseURL = "https://virilan362-001-site1.rtempurl.com/api/Reports"
)

var ErrInvalidJSON = errors.New("upstream returned invalid JSON")

type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

type Option func(*Options)

func WithBaseURL(u string) Option {
	return func(o *Options) { o.BaseURL = u }
}

func WithHTTPClient(c *http.Client) Option {
	return func(o *Options) { o.HTTPClient = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Client calls the reporting API's summary and export endpoints.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger *zap.Logger
}

// New creates a Client. The base URL must be absolute.
func New(opts ...Option) (*Client, error) {
	options := &Options{
		BaseURL:    DefaultBaseURL,
		HTTPClient: http.DefaultClient,
		Logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(options)
	}

	base, err := url.Parse(strings.TrimRight(options.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid upstream base url %q: scheme and host are required", options.BaseURL)
	}
	if options.HTTPClient == nil {
		options.HTTPClient = http.DefaultClient
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}

	return &Client{
		base:   base,
		http:   options.HTTPClient,
		logger: options.Logger.Named("upstream"),
	}, nil
}

// FetchSummary returns the raw JSON body of the summary endpoint.
func (c *Client) FetchSummary(ctx context.Context, r *stats.DateRange) ([]byte, error) {
	body, err := c.get(ctx, "fetch summary", summaryPath, r)
	if err != nil {
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("fetch summary: %w", ErrInvalidJSON)
	}
	return body, nil
}

// ExportExcel returns the spreadsheet bytes of the export endpoint unparsed.
func (c *Client) ExportExcel(ctx context.Context, r *stats.DateRange) ([]byte, error) {
	return c.get(ctx, "export excel", exportPath, r)
}

// URL builds the upstream URL for path, renaming the range to the
// startDate/endDate parameters the reporting API expects.
func (c *Client) URL(path string, r *stats.DateRange) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if r != nil {
		q := url.Values{}
		q.Set("startDate", r.StartDate())
		q.Set("endDate", r.EndDate())
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func (c *Client) get(ctx context.Context, op, path string, r *stats.DateRange) ([]byte, error) {
	target := c.URL(path, r)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Cache-Control", "no-store")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("upstream request failed",
			zap.String("op", op),
			zap.String("url", target),
			zap.Error(err))
		return nil, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		uerr := newUpstreamError(op, resp.StatusCode, body)
		c.logger.Warn("upstream returned error status",
			zap.String("op", op),
			zap.String("url", target),
			zap.Int("status", resp.StatusCode),
			zap.String("message", uerr.Message))
		return nil, uerr
	}

	c.logger.Debug("upstream request completed",
		zap.String("op", op),
		zap.String("url", target),
		zap.Int("bytes", len(body)),
		zap.Duration("duration", time.Since(start)))

	return body, nil
}
