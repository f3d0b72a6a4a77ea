package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fleet-dispatch/models"
)

// EntityValidator implements the Validator interface for the four dispatch
// entities. Car and order checks read related records through lookup.
type EntityValidator struct {
	lookup RecordLookup
}

// NewEntityValidator constructs an EntityValidator and returns it as the
// Validator interface.
func NewEntityValidator(lookup RecordLookup) Validator {
	return &EntityValidator{lookup: lookup}
}

// Validate dispatches to the validator of obj's dynamic type. Both value and
// pointer forms are accepted:
//   - models.Driver / *models.Driver
//   - models.Car / *models.Car
//   - models.Order / *models.Order
//   - models.Dispatcher / *models.Dispatcher
//
// Returns ErrUnsupportedType for anything else, including nil pointers.
func (v *EntityValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.Driver:
		return ValidateDriver(value)
	case *models.Driver:
		if value == nil {
			break
		}
		return ValidateDriver(*value)
	case models.Car:
		return ValidateCar(ctx, value, v.lookup)
	case *models.Car:
		if value == nil {
			break
		}
		return ValidateCar(ctx, *value, v.lookup)
	case models.Order:
		return ValidateOrder(ctx, value, v.lookup)
	case *models.Order:
		if value == nil {
			break
		}
		return ValidateOrder(ctx, *value, v.lookup)
	case models.Dispatcher:
		return ValidateDispatcher(value)
	case *models.Dispatcher:
		if value == nil {
			break
		}
		return ValidateDispatcher(*value)
	}

	return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
}
