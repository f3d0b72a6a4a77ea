// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Request decoding errors.
var (
	ErrInvalidJSON       = errors.New("invalid JSON was passed")
	ErrInvalidGzip       = errors.New("invalid gzip data")
	ErrInvalidID         = errors.New("id must be a positive integer")
	ErrInvalidQueryParam = errors.New("invalid query parameter")

	// ErrForeignCredentials is returned when a user tries to change the
	// credentials of another user.
	ErrForeignCredentials = errors.New("credentials of another user cannot be changed")
)
