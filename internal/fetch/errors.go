package fetch

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedStatus is returned when a page responds with a non-2xx
	// status. Use errors.As with *StatusError to get the code.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")

	// ErrInvalidProxyAddress is returned when the proxy address cannot be
	// parsed. Accepted forms are "host:port", "socks5://host:port",
	// "http://host:port" and "https://host:port".
	ErrInvalidProxyAddress = errors.New("invalid proxy address: expected [scheme://]host:port")

	// ErrBodyTooLarge is returned when a response body exceeds the
	// configured maximum size. Use errors.As with *BodySizeError to get
	// the limit.
	ErrBodyTooLarge = errors.New("response body too large")
)

// StatusError reports a response whose status was not 2xx.
type StatusError struct {
	// URL is the requested URL.
	URL string

	// StatusCode is the HTTP status of the response.
	StatusCode int
}

// Error implements error.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d for %s", ErrUnexpectedStatus, e.StatusCode, e.URL)
}

// Unwrap allows errors.Is(err, ErrUnexpectedStatus).
func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// BodySizeError reports a response body larger than the client accepts.
type BodySizeError struct {
	// URL is the requested URL.
	URL string

	// Limit is the maximum body size in bytes.
	Limit int64
}

// Error implements error.
func (e *BodySizeError) Error() string {
	return fmt.Sprintf("%s: more than %d bytes from %s", ErrBodyTooLarge, e.Limit, e.URL)
}

// Unwrap allows errors.Is(err, ErrBodyTooLarge).
func (e *BodySizeError) Unwrap() error {
	return ErrBodyTooLarge
}
