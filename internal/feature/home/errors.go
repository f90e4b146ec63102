package home

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-app-template/internal/adapter"
)

// ErrorKind classifies a feed load failure.
type ErrorKind uint8

const (
	NetworkError ErrorKind = iota + 1
	DecodingError
	NoData
	Unauthorized
	ServerError
)

// Error is the load failure shown above the feed.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	switch e.Kind {
	case DecodingError:
		return fmt.Sprintf("Data parsing error: %s", e.Message)
	case NoData:
		return "No data available"
	case Unauthorized:
		return "You are not authorized to access this content"
	case ServerError:
		return "Server error occurred"
	default:
		return fmt.Sprintf("Network error: %s", e.Message)
	}
}

// ErrorFrom classifies an error returned by the home service.
func ErrorFrom(err error) *Error {
	var netErr *adapter.NetworkError
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return &Error{Kind: Unauthorized}
	case errors.Is(err, adapter.ErrNoData):
		return &Error{Kind: NoData}
	case errors.Is(err, adapter.ErrServer):
		return &Error{Kind: ServerError}
	case errors.Is(err, adapter.ErrDecoding) && errors.As(err, &netErr):
		return &Error{Kind: DecodingError, Message: netErr.Message}
	default:
		return &Error{Kind: NetworkError, Message: err.Error()}
	}
}
