package adapter

import (
	"fmt"
	"net/http"
)

// ErrorKind classifies a [NetworkError].
type ErrorKind uint8

// Network failure kinds.
const (
	KindUnknown ErrorKind = iota
	KindInvalidURL
	KindNoData
	KindInvalidResponse
	KindHTTP
	KindDecoding
	KindEncoding
	KindTimeout
	KindNoConnection
	KindServer
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid_url"
	case KindNoData:
		return "no_data"
	case KindInvalidResponse:
		return "invalid_response"
	case KindHTTP:
		return "http_error"
	case KindDecoding:
		return "decoding_error"
	case KindEncoding:
		return "encoding_error"
	case KindTimeout:
		return "timeout"
	case KindNoConnection:
		return "no_connection"
	case KindServer:
		return "server_error"
	default:
		return "unknown"
	}
}

// NetworkError is the only error type returned by [NetworkClient].
type NetworkError struct {
	Kind ErrorKind

	// StatusCode is set for KindHTTP and KindServer.
	StatusCode int

	// Message is a short human-readable detail, e.g. the offending URL or
	// the server's response body.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Sentinel errors for use with errors.Is. Kind sentinels match every error
// of that kind; status sentinels match KindHTTP errors with that status.
var (
	ErrInvalidURL      = &NetworkError{Kind: KindInvalidURL}
	ErrNoData          = &NetworkError{Kind: KindNoData}
	ErrInvalidResponse = &NetworkError{Kind: KindInvalidResponse}
	ErrHTTP            = &NetworkError{Kind: KindHTTP}
	ErrDecoding        = &NetworkError{Kind: KindDecoding}
	ErrEncoding        = &NetworkError{Kind: KindEncoding}
	ErrTimeout         = &NetworkError{Kind: KindTimeout}
	ErrNoConnection    = &NetworkError{Kind: KindNoConnection}
	ErrServer          = &NetworkError{Kind: KindServer}
	ErrUnknown         = &NetworkError{Kind: KindUnknown}

	ErrUnauthorized = &NetworkError{Kind: KindHTTP, StatusCode: http.StatusUnauthorized}
	ErrForbidden    = &NetworkError{Kind: KindHTTP, StatusCode: http.StatusForbidden}
	ErrNotFound     = &NetworkError{Kind: KindHTTP, StatusCode: http.StatusNotFound}
	ErrBadRequest   = &NetworkError{Kind: KindHTTP, StatusCode: http.StatusBadRequest}
)

func (e *NetworkError) Error() string {
	switch e.Kind {
	case KindInvalidURL:
		return "invalid URL: " + e.Message
	case KindNoData:
		return "no data received from server"
	case KindInvalidResponse:
		return "invalid response from server"
	case KindHTTP:
		return fmt.Sprintf("HTTP error with status code: %d", e.StatusCode)
	case KindDecoding:
		return "failed to decode response: " + e.Message
	case KindEncoding:
		return "failed to encode request: " + e.Message
	case KindTimeout:
		return "request timed out"
	case KindNoConnection:
		return "no internet connection"
	case KindServer:
		return "server error: " + e.Message
	default:
		return "unknown error: " + e.Message
	}
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is matches target when it is a *NetworkError of the same kind and, if the
// target carries a status code, the same status.
func (e *NetworkError) Is(target error) bool {
	t, ok := target.(*NetworkError)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.StatusCode == 0 || t.StatusCode == e.StatusCode
}
