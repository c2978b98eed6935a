package domain

import "net/http"

// Exchange bundles the completed attempt of one HTTP request: any
// transport error, the raw response bytes, and the response metadata.
// It is produced once per call by the HTTP client and consumed exactly
// once by the adapter. The adapter does not own it and must not retain
// it past the callback.
type Exchange struct {
	// Request is the request that was attempted. May be nil for
	// exchanges constructed in tests.
	Request *http.Request

	// Response carries the response metadata (status line, headers).
	// Its body has already been drained into Body; nil when the call
	// failed before a response was received.
	Response *http.Response

	// Body is the raw response body. Empty when the response carried
	// no payload.
	Body []byte

	// Err is the transport-level error reported by the HTTP client,
	// nil when the call completed at the transport level (any status
	// code counts as completed).
	Err error
}

// NewExchange builds an exchange for a completed call.
func NewExchange(req *http.Request, resp *http.Response, body []byte) *Exchange {
	return &Exchange{Request: req, Response: resp, Body: body}
}

// FailedExchange builds an exchange for a call that failed at the
// transport level.
func FailedExchange(req *http.Request, err error) *Exchange {
	return &Exchange{Request: req, Err: err}
}

// StatusCode returns the HTTP status code, or 0 when no response was
// received.
func (e *Exchange) StatusCode() int {
	if e.Response == nil {
		return 0
	}
	return e.Response.StatusCode
}

// Header returns the response headers, or nil when no response was
// received.
func (e *Exchange) Header() http.Header {
	if e.Response == nil {
		return nil
	}
	return e.Response.Header
}
