package adapter

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError maps a completed response to nil (2xx) or a *NetworkError.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	switch {
	case status >= http.StatusInternalServerError:
		if body == "" {
			body = http.StatusText(status)
		}
		return &NetworkError{Kind: KindServer, StatusCode: status, Message: body}
	case status <= 0:
		return &NetworkError{Kind: KindInvalidResponse}
	default:
		return &NetworkError{Kind: KindHTTP, StatusCode: status, Message: body}
	}
}

// mapTransportError maps a failure that happened before a response was
// received.
func mapTransportError(ctx context.Context, err error) error {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &NetworkError{Kind: KindTimeout, Err: err}
	case errors.Is(err, context.Canceled) || ctx.Err() != nil:
		return &NetworkError{Kind: KindUnknown, Message: "request cancelled", Err: err}
	}

	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) && timeout.Timeout() {
		return &NetworkError{Kind: KindTimeout, Err: err}
	}

	var dnsErr *net.DNSError
	var opErr *net.OpError
	switch {
	case errors.As(err, &dnsErr),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.ENETUNREACH),
		errors.As(err, &opErr) && opErr.Op == "dial":
		return &NetworkError{Kind: KindNoConnection, Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && strings.Contains(urlErr.Err.Error(), "unsupported protocol scheme") {
		return &NetworkError{Kind: KindInvalidURL, Message: urlErr.URL, Err: err}
	}

	return &NetworkError{Kind: KindUnknown, Message: err.Error(), Err: err}
}
