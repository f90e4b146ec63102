// Package server runs the development API server.
//
// It owns the HTTP listener lifecycle: serving until the context is
// cancelled and then shutting down gracefully within the configured
// timeout.
package server
