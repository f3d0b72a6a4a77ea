// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators gatekeeps every write of drivers, cars, orders,
// dispatchers and users.
//
// Core concepts:
//   - Format rules: package-level compiled patterns and date helpers
//     (ValidDate, ValidAge, ValidPeriod, ValidLicense, ...).
//   - Entity validators: ValidateDriver, ValidateCar, ValidateOrder and
//     ValidateDispatcher run their checks in a fixed order and stop at the
//     first violation.
//   - Update mergers: MergeDriver, MergeCar, MergeOrder, MergeDispatcher and
//     MergeUser fill the unset fields of a partial update from the stored
//     record and re-validate the result.
//
// Referential checks read related records through a RecordLookup passed in
// by the caller; the package holds no connection of its own. Every failure
// is a *ValidationError whose Kind can be matched with errors.Is.
package validators

import (
	"context"

	"github.com/MKhiriev/fleet-dispatch/models"
)

// Validator defines a generic validation interface for entity records.
type Validator interface {
	// Validate checks the provided record and returns the first violated rule.
	Validate(context.Context, any) error
}

// RecordLookup fetches stored records by identifier.
// A missing record must be reported as models.ErrRecordNotFound so that it
// can be told apart from connectivity or query failures.
type RecordLookup interface {
	DriverByID(ctx context.Context, id int64) (models.Driver, error)
	CarByID(ctx context.Context, id int64) (models.Car, error)
	OrderByID(ctx context.Context, id int64) (models.Order, error)
	DispatcherByID(ctx context.Context, id int64) (models.Dispatcher, error)
	UserByID(ctx context.Context, id int64) (models.User, error)
}

// Hasher turns a plaintext password into a storable digest.
type Hasher interface {
	Hash(password string) (string, error)
}
