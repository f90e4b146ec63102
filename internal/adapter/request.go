// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-app-template/models"
)

// RequestBuilder assembles a [models.NetworkRequest] step by step. The first
// error encountered is kept and returned by Build.
//
//	req, err := adapter.NewRequestBuilder(client.BaseURL()).
//	    Path("/user/profile").
//	    Method(models.MethodPut).
//	    AcceptJSON().
//	    JSONBody(edit).
//	    Build()
type RequestBuilder struct {
	baseURL string
	path    string
	method  models.HTTPMethod
	headers map[string]string
	query   url.Values
	body    []byte
	timeout time.Duration
	err     error
}

// NewRequestBuilder starts a GET request against baseURL.
func NewRequestBuilder(baseURL string) *RequestBuilder {
	return &RequestBuilder{
		baseURL: baseURL,
		method:  models.MethodGet,
		headers: make(map[string]string),
		query:   make(url.Values),
	}
}

// Path sets the path appended to the base URL.
func (b *RequestBuilder) Path(path string) *RequestBuilder {
	b.path = path
	return b
}

// Method sets the request method.
func (b *RequestBuilder) Method(method models.HTTPMethod) *RequestBuilder {
	b.method = method
	return b
}

// Header sets a request header.
func (b *RequestBuilder) Header(key, value string) *RequestBuilder {
	b.headers[key] = value
	return b
}

// BearerToken sets the Authorization header.
func (b *RequestBuilder) BearerToken(token string) *RequestBuilder {
	return b.Header("Authorization", "Bearer "+token)
}

// AcceptJSON asks for a JSON response.
func (b *RequestBuilder) AcceptJSON() *RequestBuilder {
	return b.Header("Accept", "application/json")
}

// Query adds a query parameter.
func (b *RequestBuilder) Query(key, value string) *RequestBuilder {
	b.query.Add(key, value)
	return b
}

// Body sets a raw request body.
func (b *RequestBuilder) Body(body []byte) *RequestBuilder {
	b.body = body
	return b
}

// JSONBody encodes v as the request body and sets the content type.
func (b *RequestBuilder) JSONBody(v any) *RequestBuilder {
	data, err := json.Marshal(v)
	if err != nil {
		if b.err == nil {
			b.err = &NetworkError{Kind: KindEncoding, Message: err.Error(), Err: err}
		}
		return b
	}
	b.body = data
	return b.Header("Content-Type", "application/json")
}

// Timeout overrides the default request timeout.
func (b *RequestBuilder) Timeout(d time.Duration) *RequestBuilder {
	b.timeout = d
	return b
}

// Build validates the URL and returns the request.
func (b *RequestBuilder) Build() (models.NetworkRequest, error) {
	if b.err != nil {
		return models.NetworkRequest{}, b.err
	}

	raw := strings.TrimRight(b.baseURL, "/")
	if b.path != "" {
		raw += "/" + strings.TrimLeft(b.path, "/")
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return models.NetworkRequest{}, &NetworkError{Kind: KindInvalidURL, Message: raw, Err: err}
	}
	if len(b.query) > 0 {
		q := u.Query()
		for key, values := range b.query {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	headers := make(map[string]string, len(b.headers))
	for k, v := range b.headers {
		headers[k] = v
	}

	timeout := b.timeout
	if timeout <= 0 {
		timeout = models.DefaultRequestTimeout
	}

	return models.NetworkRequest{
		URL:     u.String(),
		Method:  b.method,
		Headers: headers,
		Body:    b.body,
		Timeout: timeout,
	}, nil
}

// DecodeJSON decodes a response body produced by [NetworkClient.Do]. An
// empty body is [ErrNoData]; malformed JSON is a KindDecoding error.
func DecodeJSON[T any](body []byte) (T, error) {
	var out T
	if len(strings.TrimSpace(string(body))) == 0 {
		return out, &NetworkError{Kind: KindNoData}
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, &NetworkError{Kind: KindDecoding, Message: err.Error(), Err: err}
	}
	return out, nil
}

// normalizeBaseURL turns a configured address such as "localhost:8080" into
// a base URL with a scheme.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
