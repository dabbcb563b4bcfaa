// Package toncenter is the request pipeline shared by the TON Center endpoint
// sets: it authenticates and sends one HTTP request, validates the response
// envelope and reshapes the result into camelCase keys.
package toncenter

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"toncenter-client/internal/httpclient"

	"go.uber.org/zap"
)

// Client sends requests to one gateway root. Everything it holds is fixed at
// construction, so a Client is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     *APIKey
	httpClient *http.Client
	logger     *zap.Logger
}

type Option func(*Client)

// WithAPIKey authenticates every request with key.
func WithAPIKey(key APIKey) Option {
	return func(c *Client) {
		c.apiKey = &key
	}
}

// WithHTTPClient replaces http.DefaultClient. Timeouts, proxies and pooling
// are configured there.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger enables debug logging of dispatched requests. Without it the
// client logs nothing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

func NewClient(network Network, opts ...Option) *Client {
	return NewClientWithURL(network.BaseURL(), opts...)
}

// NewClientWithURL targets a custom API root, e.g. a self-hosted gateway.
func NewClientWithURL(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request describes one call to an endpoint. Query values that were not set
// by the caller must be left out of the map.
type Request struct {
	Method   string
	Endpoint string
	Query    map[string]string
	Body     map[string]any
}

// Dispatch sends the request and decodes the response envelope. It does not
// look at ok, result or error; any failure here is a *TransportError.
func (c *Client) Dispatch(ctx context.Context, r Request) (*Envelope, error) {
	query := make(url.Values, len(r.Query)+1)
	for k, v := range r.Query {
		query.Set(k, v)
	}
	header := make(http.Header)
	if c.apiKey != nil {
		switch c.apiKey.Type {
		case APIKeyHeader:
			header.Set(apiKeyHeaderName, c.apiKey.Key)
		case APIKeyQuery:
			query.Set(apiKeyQueryName, c.apiKey.Key)
		}
	}

	method := r.Method
	if method == "" {
		method = http.MethodGet
	}
	var body interface{}
	if method != http.MethodGet {
		if r.Body != nil {
			body = r.Body
		} else {
			body = map[string]any{}
		}
	}

	endpoint := c.baseURL + "/" + strings.TrimLeft(r.Endpoint, "/")
	start := time.Now()
	var envelope Envelope
	status, err := httpclient.Do(ctx, c.httpClient, &httpclient.Request{
		Method: method,
		URL:    endpoint,
		Query:  query,
		Header: header,
		Body:   body,
	}, &envelope)
	c.logger.Debug("toncenter request",
		zap.String("method", method),
		zap.String("endpoint", r.Endpoint),
		zap.Int("status", status),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err),
	)
	if err != nil {
		return nil, &TransportError{Method: method, URL: endpoint, Err: err}
	}
	return &envelope, nil
}

// Call dispatches the request and normalizes the response with the policy.
func (c *Client) Call(ctx context.Context, r Request, p Policy) (any, error) {
	envelope, err := c.Dispatch(ctx, r)
	if err != nil {
		return nil, err
	}
	return Normalize(envelope, p)
}
