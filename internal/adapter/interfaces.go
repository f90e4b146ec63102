// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the network capability used by the client's
// services.
//
// The primary abstraction is [NetworkClient]: it executes a
// [models.NetworkRequest] and returns the raw response body. The package
// ships a resty-based implementation ([NewHTTPNetworkClient]) and a
// [RequestBuilder] for assembling requests.
//
// Every failure is reported as a *[NetworkError] whose [ErrorKind] tells
// callers what went wrong without looking at transport details. Sentinel
// values such as [ErrTimeout] or [ErrUnauthorized] work with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-app-template/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/network_client_mock.go -package=mock

// NetworkClient executes HTTP requests on behalf of the service layer.
// Implementations are safe for concurrent use.
type NetworkClient interface {
	// Do sends req and returns the response body of a 2xx response.
	// Any other outcome is returned as a *NetworkError. Do honors ctx
	// cancellation and the request timeout.
	Do(ctx context.Context, req models.NetworkRequest) ([]byte, error)

	// BaseURL returns the normalized server address requests are built
	// against.
	BaseURL() string

	// SetToken stores the bearer token attached to requests that do not
	// set their own Authorization header. An empty token disables it.
	SetToken(token string)

	// Token returns the bearer token currently stored, or an empty string.
	Token() string
}
