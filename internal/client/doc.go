// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client hosts the interactive client process.
//
// It restores the saved session, builds the application store and runs the
// terminal front end next to a worker that keeps the saved session and the
// network client's bearer token in step with the store.
package client
