// Package shields requests badges from a shields.io compatible rendering service.
package shields

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/smartcontractkit/analyzer-badges/badge"
	"github.com/smartcontractkit/analyzer-badges/pkg/logger"
)

// DefaultBaseURL is the public shields.io service.
const DefaultBaseURL = "https://img.shields.io"

// ErrEmptyBadge is returned when the service answers successfully without a badge.
var ErrEmptyBadge = errors.New("rendering service returned an empty badge")

// maxBadgeSize bounds the response body read from the service.
const maxBadgeSize = 1 << 20

var _ badge.Client = &Client{}

// Config configures the [Client].
type Config struct {
	BaseURL     string        `mapstructure:"base_url" yaml:"base_url"`         // Defaults to DefaultBaseURL
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout"`           // Per attempt timeout, defaults to 10s
	MaxAttempts uint          `mapstructure:"max_attempts" yaml:"max_attempts"` // Defaults to 3
	RetryDelay  time.Duration `mapstructure:"retry_delay" yaml:"retry_delay"`   // Base backoff delay, defaults to 200ms
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 3
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = 200 * time.Millisecond
	}

	return c
}

// Client requests badges over HTTP.
type Client struct {
	cfg        Config
	httpClient *http.Client
	lggr       logger.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient overrides the http.Client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new Client.
func NewClient(cfg Config, lggr logger.Logger, opts ...Option) *Client {
	c := &Client{
		cfg:        cfg.withDefaults(),
		httpClient: http.DefaultClient,
		lggr:       lggr.Named("ShieldsClient"),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BadgeURL returns the URL the badge for props is requested from.
func (c *Client) BadgeURL(props badge.ClientProperties) (string, error) {
	base, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("invalid base url: %q is not absolute", c.cfg.BaseURL)
	}

	segment := fmt.Sprintf("%s-%s-%s.%s",
		escapeText(props.Label), escapeText(props.Status), escapeText(string(props.Color)), props.Format)

	u := strings.TrimRight(c.cfg.BaseURL, "/") + "/badge/" + url.PathEscape(segment)
	if props.Style != "" {
		u += "?" + url.Values{"style": []string{string(props.Style)}}.Encode()
	}

	return u, nil
}

// RequestBadge requests the badge described by props. Transport errors and 5xx responses are
// retried; 4xx responses fail immediately.
func (c *Client) RequestBadge(ctx context.Context, props badge.ClientProperties) (badge.Badge, error) {
	badgeURL, err := c.BadgeURL(props)
	if err != nil {
		return badge.Badge{}, err
	}

	return retry.DoWithData(
		func() (badge.Badge, error) {
			return c.fetch(ctx, badgeURL)
		},
		retry.Context(ctx),
		retry.Attempts(c.cfg.MaxAttempts),
		retry.Delay(c.cfg.RetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			c.lggr.Warnw("Badge request failed. Retrying...", "url", badgeURL, "attempt", attempt, "error", err)
		}),
	)
}

func (c *Client) fetch(ctx context.Context, badgeURL string) (badge.Badge, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, badgeURL, nil)
	if err != nil {
		return badge.Badge{}, retry.Unrecoverable(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return badge.Badge{}, fmt.Errorf("failed to request badge: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBadgeSize))
	if err != nil {
		return badge.Badge{}, fmt.Errorf("failed to read badge: %w", err)
	}

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return badge.Badge{}, fmt.Errorf("rendering service responded %s", resp.Status)
	case resp.StatusCode >= http.StatusBadRequest:
		return badge.Badge{}, retry.Unrecoverable(
			fmt.Errorf("rendering service rejected badge request: %s: %s", resp.Status, strings.TrimSpace(string(data))),
		)
	case len(data) == 0:
		return badge.Badge{}, retry.Unrecoverable(ErrEmptyBadge)
	}

	return badge.Badge{
		ContentType: resp.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// escapeText escapes the dash, underscore and space characters that carry meaning in a shields
// static badge path segment.
func escapeText(s string) string {
	return strings.NewReplacer("-", "--", "_", "__", " ", "_").Replace(s)
}
