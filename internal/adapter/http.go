package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-app-template/internal/config"
	"github.com/MKhiriev/go-app-template/internal/logger"
	"github.com/MKhiriev/go-app-template/internal/utils"
	"github.com/MKhiriev/go-app-template/models"
)

// RequestIDHeader carries a unique identifier of every outgoing request.
const RequestIDHeader = "X-Request-ID"

type httpNetworkClient struct {
	client  *utils.HTTPClient
	baseURL string
	timeout time.Duration
	headers map[string]string
	ids     *utils.UUIDGenerator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPNetworkClient constructs the resty-based [NetworkClient].
// It normalises the base URL from adapterCfg.HTTPAddress, applies the
// configured default headers to every request and uses
// adapterCfg.RequestTimeout for requests that do not set their own.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPNetworkClient(adapterCfg config.ClientAdapter, logger *logger.Logger) (NetworkClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(logger)
	client.SetBaseURL(baseURL)

	headers := map[string]string{"Accept": "application/json"}
	for k, v := range adapterCfg.DefaultHeaders {
		headers[k] = v
	}

	return &httpNetworkClient{
		client:  client,
		baseURL: baseURL,
		timeout: adapterCfg.RequestTimeout,
		headers: headers,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

func (h *httpNetworkClient) BaseURL() string {
	return h.baseURL
}

func (h *httpNetworkClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpNetworkClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpNetworkClient) Do(ctx context.Context, req models.NetworkRequest) ([]byte, error) {
	u, err := url.Parse(req.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &NetworkError{Kind: KindInvalidURL, Message: req.URL, Err: err}
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = h.timeout
	}
	if timeout <= 0 {
		timeout = models.DefaultRequestTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	method := req.Method
	if method == "" {
		method = models.MethodGet
	}

	requestID := h.ids.Generate()
	r := h.client.R().
		SetContext(ctx).
		SetHeaders(h.headers).
		SetHeader(RequestIDHeader, requestID)
	if token := h.Token(); token != "" && !hasHeader(req.Headers, "Authorization") {
		r.SetAuthToken(token)
	}
	r.SetHeaders(req.Headers)
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	log := h.logger.With().
		Str("func", "httpNetworkClient.Do").
		Str("request_id", requestID).
		Str("method", string(method)).
		Str("url", u.Redacted()).
		Logger()

	resp, err := r.Execute(string(method), u.String())
	if err != nil {
		mapped := mapTransportError(ctx, err)
		log.Warn().Err(err).Msg("request failed")
		return nil, mapped
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Int("status", resp.StatusCode()).Msg("request rejected")
		return nil, err
	}

	log.Debug().Int("status", resp.StatusCode()).Dur("took", resp.Time()).Msg("request done")
	return resp.Body(), nil
}

func hasHeader(headers map[string]string, key string) bool {
	key = http.CanonicalHeaderKey(key)
	for k := range headers {
		if http.CanonicalHeaderKey(k) == key {
			return true
		}
	}
	return false
}
