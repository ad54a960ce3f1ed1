package pokeapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the public PokeAPI root
	DefaultBaseURL = "https://pokeapi.co/"
	// DefaultAPIPrefix is the versioned path prefix
	DefaultAPIPrefix = "api/v2"
	// DefaultUserAgent is sent unless overridden
	DefaultUserAgent = "dexarr/dev"
	// DefaultTimeout bounds each request made by the default transport
	DefaultTimeout = 10 * time.Second
)

// Config is the immutable configuration of a Client.
type Config struct {
	BaseURL        *url.URL
	APIPrefix      string
	DefaultHeaders Headers
}

// Client represents a PokeAPI client. It holds no per-call state and is
// safe for concurrent use.
type Client struct {
	config    Config
	transport Transport
	logger    zerolog.Logger
}

// NewClient creates a new PokeAPI client
func NewClient(logger zerolog.Logger, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	base, err := url.Parse(o.baseURL)
	if err != nil || base.Opaque != "" || base.Host == "" || !base.IsAbs() {
		return nil, &InternalError{Reason: "invalid base url"}
	}

	headers := o.headers.Clone()
	if o.userAgent != "" {
		if _, ok := headers.Get("user-agent"); !ok {
			headers.Set("user-agent", o.userAgent)
		}
	}

	transport := o.transport
	if transport == nil {
		httpClient := o.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: o.timeout}
		}
		transport = NewHTTPTransport(httpClient)
	}

	return &Client{
		config: Config{
			BaseURL:        base,
			APIPrefix:      o.apiPrefix,
			DefaultHeaders: headers,
		},
		transport: transport,
		logger:    logger,
	}, nil
}

// Config returns a copy of the client configuration
func (c *Client) Config() Config {
	base := *c.config.BaseURL
	return Config{
		BaseURL:        &base,
		APIPrefix:      c.config.APIPrefix,
		DefaultHeaders: c.config.DefaultHeaders.Clone(),
	}
}

// FetchJSON performs a GET of path (relative to the API prefix) with the
// given query and decodes a 2xx body into v. Non-2xx responses are
// classified into *APIError; undecodable bodies yield *DeserializeError.
func (c *Client) FetchJSON(ctx context.Context, path string, query Query, v any) error {
	u, err := JoinURL(c.config.BaseURL, c.config.APIPrefix, path)
	if err != nil {
		return err
	}
	target := u.String()

	req := NewRequest(MethodGet, u)
	req.Headers = c.config.DefaultHeaders.Clone()
	for k, val := range query.All() {
		req.Query.Set(k, val)
	}

	start := time.Now()
	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		c.logger.Debug().Err(err).Str("url", target).Msg("PokeAPI request failed")
		if KindOf(err) == "" {
			err = &TransportError{Err: err}
		}
		return err
	}

	c.logger.Debug().
		Str("method", string(req.Method)).
		Str("url", target).
		Str("query", req.Query.Encode()).
		Int("status", resp.Status).
		Dur("elapsed", time.Since(start)).
		Msg("PokeAPI request")

	if !resp.IsSuccess() {
		return describeNotFound(Classify(resp.Status, target, resp), path)
	}

	if err := json.Unmarshal(resp.Body, v); err != nil {
		return &DeserializeError{URL: target, Err: err}
	}
	return nil
}
