// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrRecordNotFound is returned by record lookups when no row matches the
// requested identifier. It is kept here so that both the storage layer and
// its consumers can match it without importing each other.
var ErrRecordNotFound = errors.New("record not found")
