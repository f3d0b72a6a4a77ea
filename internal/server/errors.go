// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer without an HTTP handler
	// or listen address.
	errNoServersAreCreated = errors.New("no servers are created")

	// errStoppedUnexpectedly reports a listener that failed before any
	// shutdown was requested, e.g. because the address is taken.
	errStoppedUnexpectedly = errors.New("HTTP server stopped unexpectedly")
)
