package utils

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-app-template/internal/logger"
	"github.com/go-resty/resty/v2"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient(logger.Nop())

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_NilLogger(t *testing.T) {
	client := NewHTTPClient(nil)

	if client.R() == nil {
		t.Fatal("expected non-nil request from embedded resty client")
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	// Create two clients and make sure they don't share the same underlying resty.Client
	client1 := NewHTTPClient(logger.Nop())
	client2 := NewHTTPClient(logger.Nop())

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}

func TestRestyLogger_WritesThroughLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLogger("test")
	log.Logger = log.Output(&buf)

	var l resty.Logger = restyLogger{log: log}
	l.Warnf("retrying %s", "request")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log entry, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "retrying request" {
		t.Errorf("unexpected message: %v", entry["message"])
	}
	if entry["component"] != "resty" {
		t.Errorf("unexpected component: %v", entry["component"])
	}
}
