package pokeapi

import (
	"errors"
	"fmt"
)

// Error is implemented by every error the client returns. The set of
// implementations is closed: InternalError, TransportError, APIError,
// DeserializeError and InvalidArgumentError.
type Error interface {
	error
	Kind() ErrorKind
	sealed()
}

// ErrorKind names one of the five error types.
type ErrorKind string

const (
	KindInternal        ErrorKind = "internal"
	KindTransport       ErrorKind = "transport"
	KindAPI             ErrorKind = "api"
	KindDeserialize     ErrorKind = "deserialize"
	KindInvalidArgument ErrorKind = "invalid_argument"
)

// InternalError indicates a bug in configuration or URL construction.
// It is never caused by caller input and is not retryable.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Reason
}

func (e *InternalError) Kind() ErrorKind { return KindInternal }
func (e *InternalError) sealed()         {}

// TransportError wraps a network-layer failure (DNS, refused connection,
// TLS, timeout, I/O).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Kind() ErrorKind { return KindTransport }
func (e *TransportError) sealed()         {}

// APIError is returned when the server answers with a non-2xx status.
type APIError struct {
	Status int
	URL    string
	Detail APIErrorKind
}

// Error implements the error interface
func (e *APIError) Error() string {
	switch k := e.Detail.(type) {
	case NotFound:
		return fmt.Sprintf("%s `%s` not found (status %d)", k.Resource, k.Identifier, e.Status)
	case RateLimited:
		if k.RetryAfter != nil {
			return fmt.Sprintf("rate limited (retry after %ds) (status %d)", *k.RetryAfter, e.Status)
		}
		return fmt.Sprintf("rate limited (status %d)", e.Status)
	default:
		return fmt.Sprintf("http error (status %d)", e.Status)
	}
}

func (e *APIError) Kind() ErrorKind { return KindAPI }
func (e *APIError) sealed()         {}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	_, ok := e.Detail.(NotFound)
	return ok
}

// IsRateLimited checks if the server asked us to slow down
func (e *APIError) IsRateLimited() bool {
	_, ok := e.Detail.(RateLimited)
	return ok
}

// APIErrorKind is the sub-kind carried by an APIError: NotFound,
// RateLimited or HTTPStatus.
type APIErrorKind interface {
	apiErrorKind()
}

// NotFound is a 404. Resource and Identifier are descriptive labels, not
// parsed from the body.
type NotFound struct {
	Resource   string
	Identifier string
}

// RateLimited is a 429. RetryAfter holds the retry-after header in seconds
// when present and parsable.
type RateLimited struct {
	RetryAfter *uint64
}

// HTTPStatus covers every other non-2xx status.
type HTTPStatus struct {
	BodySnippet *string
}

func (NotFound) apiErrorKind()    {}
func (RateLimited) apiErrorKind() {}
func (HTTPStatus) apiErrorKind()  {}

// DeserializeError means the server answered 2xx but the body did not
// match the expected shape.
type DeserializeError struct {
	URL string
	Err error
}

func (e *DeserializeError) Error() string {
	return fmt.Sprintf("failed to deserialize response from %s: %v", e.URL, e.Err)
}

func (e *DeserializeError) Unwrap() error { return e.Err }

func (e *DeserializeError) Kind() ErrorKind { return KindDeserialize }
func (e *DeserializeError) sealed()         {}

// InvalidArgumentError is a local validation failure. It is always
// returned before any network call is made.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument `%s`: %s", e.Field, e.Reason)
}

func (e *InvalidArgumentError) Kind() ErrorKind { return KindInvalidArgument }
func (e *InvalidArgumentError) sealed()         {}

// KindOf returns the kind of the first client error in err's chain, or ""
// if there is none.
func KindOf(err error) ErrorKind {
	var e Error
	if errors.As(err, &e) {
		return e.Kind()
	}
	return ""
}

// IsNotFound reports whether err is an APIError with a NotFound kind.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsNotFound()
}

// IsRateLimited reports whether err is an APIError with a RateLimited kind.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.IsRateLimited()
}

// IsRetryable reports whether a caller-side retry policy could reasonably
// try again. The client itself never retries.
func IsRetryable(err error) bool {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return !apiErr.IsNotFound()
	}
	return false
}
