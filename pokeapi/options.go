package pokeapi

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	apiPrefix  string
	headers    Headers
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	transport  Transport
}

func defaultOptions() *clientOptions {
	headers := NewHeaders()
	headers.Set("accept", "application/json")
	return &clientOptions{
		baseURL:   DefaultBaseURL,
		apiPrefix: DefaultAPIPrefix,
		headers:   headers,
		userAgent: DefaultUserAgent,
		timeout:   DefaultTimeout,
	}
}

// WithBaseURL overrides the API root (default https://pokeapi.co/).
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithAPIPrefix overrides the path segment between the base URL and
// resource paths (default api/v2). An empty prefix is allowed.
func WithAPIPrefix(prefix string) Option {
	return func(o *clientOptions) {
		o.apiPrefix = prefix
	}
}

// WithHeader adds or overrides a header sent on every request.
func WithHeader(key, value string) Option {
	return func(o *clientOptions) {
		o.headers.Set(key, value)
	}
}

// WithUserAgent sets the user-agent header.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithTimeout sets the HTTP client timeout. Ignored when WithHTTPClient or
// WithTransport is given.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient uses a custom http.Client for the default transport.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTransport replaces the network layer entirely, e.g. with a test
// double.
func WithTransport(transport Transport) Option {
	return func(o *clientOptions) {
		o.transport = transport
	}
}
