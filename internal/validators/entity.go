package validators

import (
	"context"

	"github.com/MKhiriev/fleet-dispatch/models"
)

// ValidateDriver checks a driver record and returns the first violated rule.
// The age check runs only after the birthday has passed both the format and
// the calendar checks.
func ValidateDriver(driver models.Driver) error {
	if !ValidLogin(driver.Login) {
		return ErrInvalidLogin
	}
	if driver.PassHash == "" {
		return ErrEmptyPassword
	}
	if !ValidName(driver.Name) {
		return ErrInvalidName
	}
	if !ValidName(driver.Surname) {
		return ErrInvalidSurname
	}
	if driver.Experience < 0 {
		return ErrNegativeExperience
	}
	if !ValidAddress(driver.Address) {
		return ErrInvalidAddress
	}
	if !ValidCity(driver.City) {
		return ErrInvalidCity
	}
	if !ValidDateFormat(driver.Birthday) {
		return ErrInvalidBirthday
	}
	if !ValidDate(driver.Birthday) {
		return ErrBirthdayNotInCalendar
	}
	if !ValidAge(driver.Birthday) {
		return ErrUnderage
	}

	return nil
}

// ValidateCar checks that the owning driver exists, then the plate and the
// numeric bounds. A missing owner is reported before a malformed plate.
func ValidateCar(ctx context.Context, car models.Car, lookup RecordLookup) error {
	if _, err := lookup.DriverByID(ctx, car.DriverID); err != nil {
		return lookupError(err, ErrCarOwnerNotFound)
	}
	if !ValidLicense(car.License) {
		return ErrInvalidLicense
	}
	if car.MileageBuy < 0 {
		return ErrNegativeMileageBuy
	}
	if car.LoadCapacity < 0 {
		return ErrNegativeLoadCapacity
	}

	return nil
}

// ValidateOrder checks the referenced driver and car, their ownership link
// and the car capacity before the order's own fields.
func ValidateOrder(ctx context.Context, order models.Order, lookup RecordLookup) error {
	driver, err := lookup.DriverByID(ctx, order.DriverID)
	if err != nil {
		return lookupError(err, ErrOrderDriverNotFound)
	}

	car, err := lookup.CarByID(ctx, order.CarID)
	if err != nil {
		return lookupError(err, ErrOrderCarNotFound)
	}

	if car.DriverID != driver.ID {
		return ErrCarNotOwnedByDriver
	}
	if car.LoadCapacity < order.Load {
		return ErrLoadExceedsCapacity
	}
	if !ValidDateFormat(order.Date) {
		return ErrInvalidDateFormat
	}
	if !ValidDate(order.Date) {
		return ErrInvalidDate
	}
	if order.Mileage < 0 {
		return ErrNegativeMileage
	}
	if order.Cost < 0 {
		return ErrNegativeCost
	}
	if order.Load < 0 {
		return ErrNegativeLoad
	}

	return nil
}

// ValidateDispatcher checks a dispatcher record and returns the first
// violated rule. Unlike drivers, a dispatcher login only has to be non-empty.
func ValidateDispatcher(dispatcher models.Dispatcher) error {
	if dispatcher.Login == "" {
		return ErrEmptyLogin
	}
	if dispatcher.PassHash == "" {
		return ErrEmptyPassword
	}
	if !ValidName(dispatcher.Name) {
		return ErrInvalidName
	}
	if !ValidName(dispatcher.Surname) {
		return ErrInvalidSurname
	}
	if !ValidAddress(dispatcher.Address) {
		return ErrInvalidAddress
	}
	if !ValidCity(dispatcher.City) {
		return ErrInvalidCity
	}

	return nil
}
