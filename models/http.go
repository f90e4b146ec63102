package models

import (
	"net/http"
	"time"
)

// HTTPMethod is the verb of a [NetworkRequest].
type HTTPMethod string

// Supported request methods.
const (
	MethodGet     HTTPMethod = http.MethodGet
	MethodPost    HTTPMethod = http.MethodPost
	MethodPut     HTTPMethod = http.MethodPut
	MethodDelete  HTTPMethod = http.MethodDelete
	MethodPatch   HTTPMethod = http.MethodPatch
	MethodHead    HTTPMethod = http.MethodHead
	MethodOptions HTTPMethod = http.MethodOptions
)

// DefaultRequestTimeout applies when a request does not set its own.
const DefaultRequestTimeout = 30 * time.Second

// NetworkRequest describes one call made through the network capability.
type NetworkRequest struct {
	// URL is the absolute request URL including the query string.
	URL string

	// Method defaults to GET when empty.
	Method HTTPMethod

	// Headers are sent in addition to the client's default headers and
	// override them on conflict.
	Headers map[string]string

	// Body is the raw request payload, if any.
	Body []byte

	// Timeout bounds the whole call. Zero means [DefaultRequestTimeout].
	Timeout time.Duration
}
