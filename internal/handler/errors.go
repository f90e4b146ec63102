// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when the server
	// config carries no listen address.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoServicesProvided is returned by NewHandlers when there is no
	// service layer to serve.
	errNoServicesProvided = errors.New("no services provided")
)
