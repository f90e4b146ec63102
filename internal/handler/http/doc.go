// Package http implements the development API server that backs the
// client's "http" auth mode.
//
// It exposes the sign-in, home feed and profile endpoints over chi and
// serves them from the offline mock services. Request tracing, access
// logging and bearer-token authentication are handled here before requests
// reach the service layer.
package http
