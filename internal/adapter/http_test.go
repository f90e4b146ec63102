// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-app-template/internal/config"
	"github.com/MKhiriev/go-app-template/internal/logger"
	"github.com/MKhiriev/go-app-template/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient creates an httpNetworkClient pointed at the test server.
func newTestClient(t *testing.T, serverURL string) *httpNetworkClient {
	t.Helper()
	adapterCfg := config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: time.Second,
		DefaultHeaders: map[string]string{"X-Client": "test"},
	}

	c, err := NewHTTPNetworkClient(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return c.(*httpNetworkClient)
}

func newRequest(t *testing.T, c NetworkClient, build func(*RequestBuilder) *RequestBuilder) models.NetworkRequest {
	t.Helper()
	req, err := build(NewRequestBuilder(c.BaseURL())).Build()
	require.NoError(t, err)
	return req
}

// ── Construction ─────────────────────────────────────────────────────────────

func TestNewHTTPNetworkClient_NormalizesAddress(t *testing.T) {
	c, err := NewHTTPNetworkClient(config.ClientAdapter{HTTPAddress: "localhost:8080/"}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.BaseURL())
}

func TestNewHTTPNetworkClient_EmptyAddress(t *testing.T) {
	_, err := NewHTTPNetworkClient(config.ClientAdapter{}, logger.Nop())

	require.Error(t, err)
}

// ── Do ───────────────────────────────────────────────────────────────────────

func TestDo_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("v"))
		assert.Equal(t, "test", r.Header.Get("X-Client"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, err := uuid.Parse(r.Header.Get(RequestIDHeader))
		assert.NoError(t, err)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"email":"a@b.com","password":"pw"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"T","two_factor_required":true}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	req := newRequest(t, c, func(b *RequestBuilder) *RequestBuilder {
		return b.Path("/auth/login").Method(models.MethodPost).Query("v", "1").
			JSONBody(models.LoginRequest{Email: "a@b.com", Password: "pw"})
	})

	body, err := c.Do(context.Background(), req)
	require.NoError(t, err)

	got, err := DecodeJSON[models.AuthResponse](body)
	require.NoError(t, err)
	assert.Equal(t, models.AuthResponse{Token: "T", TwoFactorRequired: true}, got)
}

func TestDo_AttachesStoredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("  session-token ")
	assert.Equal(t, "session-token", c.Token())

	_, err := c.Do(context.Background(), newRequest(t, c, func(b *RequestBuilder) *RequestBuilder {
		return b.Path("/user/profile")
	}))
	require.NoError(t, err)
}

func TestDo_ExplicitAuthorizationWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer explicit", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("stored")

	_, err := c.Do(context.Background(), newRequest(t, c, func(b *RequestBuilder) *RequestBuilder {
		return b.Path("/").BearerToken("explicit")
	}))
	require.NoError(t, err)
}

func TestDo_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind ErrorKind
		wantIs   error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantKind: KindHTTP, wantIs: ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, wantKind: KindHTTP, wantIs: ErrNotFound},
		{name: "bad request", status: http.StatusBadRequest, body: "bad", wantKind: KindHTTP, wantIs: ErrBadRequest},
		{name: "redirect without location", status: http.StatusNotModified, wantKind: KindHTTP, wantIs: ErrHTTP},
		{name: "internal", status: http.StatusInternalServerError, body: "boom", wantKind: KindServer, wantIs: ErrServer},
		{name: "bad gateway", status: http.StatusBadGateway, wantKind: KindServer, wantIs: ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := newTestClient(t, srv.URL)
			_, err := c.Do(context.Background(), newRequest(t, c, func(b *RequestBuilder) *RequestBuilder {
				return b.Path("/x")
			}))

			require.Error(t, err)
			var netErr *NetworkError
			require.True(t, errors.As(err, &netErr))
			assert.Equal(t, tt.wantKind, netErr.Kind)
			assert.Equal(t, tt.status, netErr.StatusCode)
			assert.ErrorIs(t, err, tt.wantIs)
		})
	}
}

func TestDo_ServerErrorCarriesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("maintenance\n"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.Do(context.Background(), newRequest(t, c, func(b *RequestBuilder) *RequestBuilder { return b }))

	require.Error(t, err)
	assert.Equal(t, "server error: maintenance", err.Error())
}

func TestDo_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := newTestClient(t, srv.URL)
	_, err := c.Do(context.Background(), newRequest(t, c, func(b *RequestBuilder) *RequestBuilder {
		return b.Path("/slow").Timeout(20 * time.Millisecond)
	}))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestDo_NoConnection(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	c := newTestClient(t, "http://"+addr)
	_, err = c.Do(context.Background(), newRequest(t, c, func(b *RequestBuilder) *RequestBuilder { return b }))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoConnection)
}

func TestDo_InvalidURL(t *testing.T) {
	c := newTestClient(t, "http://localhost:1")

	_, err := c.Do(context.Background(), models.NetworkRequest{URL: "not a url"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestDo_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Do(ctx, newRequest(t, c, func(b *RequestBuilder) *RequestBuilder { return b }))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknown)
	assert.ErrorIs(t, err, context.Canceled)
}
