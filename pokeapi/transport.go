package pokeapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// Transport executes a single request. Implementations return whatever
// status the server sent, including non-2xx; only network-layer failures
// are errors, and those must be *TransportError.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc adapts an ordinary function to the Transport interface.
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

// Send calls f(ctx, req)
func (f TransportFunc) Send(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// HTTPTransport sends requests with a net/http client.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport creates a transport around client. A nil client means
// http.DefaultClient.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{client: client}
}

// Send performs the request
func (t *HTTPTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	u := *req.URL
	if req.Query.Len() > 0 {
		values := u.Query()
		for k, v := range req.Query.All() {
			values.Set(k, v)
		}
		u.RawQuery = values.Encode()
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), u.String(), body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	for k, v := range req.Headers.All() {
		httpReq.Header.Set(k, v)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	headers := NewHeaders()
	for name, values := range resp.Header {
		if len(values) > 0 {
			headers.Set(name, values[0])
		}
	}

	return &Response{
		Status:  resp.StatusCode,
		Headers: headers,
		Body:    data,
	}, nil
}
