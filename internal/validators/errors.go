package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/fleet-dispatch/models"
)

// Kind classifies a validation failure. Kind implements error, so a caller
// can test a failure's class with errors.Is(err, validators.RangeError).
type Kind string

func (k Kind) Error() string {
	return string(k)
}

const (
	// FormatError marks a field that fails a pattern or calendar check.
	FormatError Kind = "format error"
	// RangeError marks a negative or out-of-bound numeric field.
	RangeError Kind = "range error"
	// ReferentialError marks a missing referenced record or an ownership mismatch.
	ReferentialError Kind = "referential error"
	// NotFoundError marks an update whose target record does not exist.
	NotFoundError Kind = "not found error"
	// EmptyFieldError marks a required text field left empty.
	EmptyFieldError Kind = "empty field error"
)

// ValidationError describes exactly which rule a record violated.
// Reason is meant to be shown to the end user as is.
type ValidationError struct {
	Kind   Kind   `json:"kind"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Is reports whether target is the Kind of e.
func (e *ValidationError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// AsValidationError extracts a *ValidationError from err's chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func newError(kind Kind, field, reason string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Reason: reason}
}

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrLookupFailed wraps storage failures other than "not found".
	// It is not a validation failure and must not be shown as one.
	ErrLookupFailed = errors.New("record lookup failed")
)

// Person fields shared by drivers and dispatchers.
var (
	ErrInvalidLogin   = newError(FormatError, "login", "login must contain only latin symbols, digits or _")
	ErrEmptyLogin     = newError(EmptyFieldError, "login", "login must not be empty")
	ErrEmptyPassword  = newError(EmptyFieldError, "password", "password must not be empty")
	ErrInvalidName    = newError(FormatError, "name", "name must consist only of latin characters")
	ErrInvalidSurname = newError(FormatError, "surname", "surname must consist only of latin characters")
	ErrInvalidAddress = newError(FormatError, "address", "address must consist only of latin characters, digits and . , /")
	ErrInvalidCity    = newError(FormatError, "city", "city must consist only of latin characters")
)

// Driver.
var (
	ErrNegativeExperience    = newError(RangeError, "experience", "experience cannot be negative")
	ErrInvalidBirthday       = newError(FormatError, "birthday", "birthday must satisfy format YYYY-MM-DD")
	ErrBirthdayNotInCalendar = newError(FormatError, "birthday", "birthday is not a valid calendar date")
	ErrUnderage              = newError(RangeError, "birthday", "age must be >= 18 years")
)

// Car.
var (
	ErrCarOwnerNotFound     = newError(ReferentialError, "driver_id", "there is no driver to own this car")
	ErrInvalidLicense       = newError(FormatError, "license", "invalid car license")
	ErrNegativeMileageBuy   = newError(RangeError, "mileage_buy", "invalid car mileage")
	ErrNegativeLoadCapacity = newError(RangeError, "load_capacity", "invalid car load capacity")
)

// Order.
var (
	ErrOrderDriverNotFound = newError(ReferentialError, "driver_id", "driver doesn't exist")
	ErrOrderCarNotFound    = newError(ReferentialError, "car_id", "car doesn't exist")
	ErrCarNotOwnedByDriver = newError(ReferentialError, "car_id", "driver doesn't obtain the car")
	ErrLoadExceedsCapacity = newError(RangeError, "load", "load exceeds capacity")
	ErrInvalidDateFormat   = newError(FormatError, "date", "date does not satisfy pattern YYYY-MM-DD")
	ErrInvalidDate         = newError(FormatError, "date", "invalid date was provided")
	ErrNegativeMileage     = newError(RangeError, "mileage", "mileage cannot be negative")
	ErrNegativeCost        = newError(RangeError, "cost", "cost cannot be negative")
	ErrNegativeLoad        = newError(RangeError, "load", "load cannot be negative")
)

// Period and update targets.
var (
	ErrInvalidPeriodFormat = newError(FormatError, "date", "date must be provided in format YYYY-MM-DD")

	ErrDriverNotFound     = newError(NotFoundError, "id", "no driver found by provided id")
	ErrCarNotFound        = newError(NotFoundError, "id", "no car found by provided id")
	ErrOrderNotFound      = newError(NotFoundError, "id", "no order found by provided id")
	ErrDispatcherNotFound = newError(NotFoundError, "id", "no dispatcher found by provided id")
	ErrUserNotFound       = newError(NotFoundError, "id", "no user found by provided id")
)

// lookupError translates a storage lookup error: "not found" becomes the
// given validation failure, anything else is wrapped with ErrLookupFailed.
func lookupError(err error, missing *ValidationError) error {
	if errors.Is(err, models.ErrRecordNotFound) {
		return missing
	}
	return fmt.Errorf("%w: %w", ErrLookupFailed, err)
}
