package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fleet-dispatch/models"
)

// CredentialPlaceholder replaces login and password hash of a driver or a
// dispatcher while a profile update is validated. Profile writes never store
// these two columns, credentials are changed through MergeUser only.
const CredentialPlaceholder = "TEMP"

// Partial updates use the zero value of a field as "not set": an empty
// string or a zero number is taken from the stored record. A field therefore
// cannot be cleared to zero through a merge.

// MergeDriver fills the unset fields of partial from the driver stored under
// id and validates the result.
func MergeDriver(ctx context.Context, partial models.Driver, id int64, lookup RecordLookup) (models.Driver, error) {
	stored, err := lookup.DriverByID(ctx, id)
	if err != nil {
		return models.Driver{}, lookupError(err, ErrDriverNotFound)
	}

	merged := partial
	merged.ID = id
	merged.Login = CredentialPlaceholder
	merged.PassHash = CredentialPlaceholder
	merged.Password = ""

	merged.Name = pickString(partial.Name, stored.Name)
	merged.Surname = pickString(partial.Surname, stored.Surname)
	merged.Experience = pickInt(partial.Experience, stored.Experience)
	merged.Address = pickString(partial.Address, stored.Address)
	merged.City = pickString(partial.City, stored.City)
	merged.Birthday = pickString(partial.Birthday, stored.Birthday)
	if len(partial.Categories) == 0 {
		merged.Categories = stored.Categories
	}

	if err = ValidateDriver(merged); err != nil {
		return models.Driver{}, err
	}

	return merged, nil
}

// MergeCar fills the unset fields of partial from the car stored under id
// and validates the result, including the owner lookup.
func MergeCar(ctx context.Context, partial models.Car, id int64, lookup RecordLookup) (models.Car, error) {
	stored, err := lookup.CarByID(ctx, id)
	if err != nil {
		return models.Car{}, lookupError(err, ErrCarNotFound)
	}

	merged := models.Car{
		ID:           id,
		License:      pickString(partial.License, stored.License),
		Brand:        pickString(partial.Brand, stored.Brand),
		DriverID:     pickID(partial.DriverID, stored.DriverID),
		LoadCapacity: pickFloat(partial.LoadCapacity, stored.LoadCapacity),
		MileageBuy:   pickFloat(partial.MileageBuy, stored.MileageBuy),
	}

	if err = ValidateCar(ctx, merged, lookup); err != nil {
		return models.Car{}, err
	}

	return merged, nil
}

// MergeOrder fills the unset fields of partial from the order stored under
// id and validates the result against the referenced driver and car.
func MergeOrder(ctx context.Context, partial models.Order, id int64, lookup RecordLookup) (models.Order, error) {
	stored, err := lookup.OrderByID(ctx, id)
	if err != nil {
		return models.Order{}, lookupError(err, ErrOrderNotFound)
	}

	merged := models.Order{
		ID:       id,
		DriverID: pickID(partial.DriverID, stored.DriverID),
		CarID:    pickID(partial.CarID, stored.CarID),
		Date:     pickString(partial.Date, stored.Date),
		Mileage:  pickFloat(partial.Mileage, stored.Mileage),
		Load:     pickFloat(partial.Load, stored.Load),
		Cost:     pickFloat(partial.Cost, stored.Cost),
	}

	if err = ValidateOrder(ctx, merged, lookup); err != nil {
		return models.Order{}, err
	}

	return merged, nil
}

// MergeDispatcher fills the unset fields of partial from the dispatcher
// stored under id and validates the result.
func MergeDispatcher(ctx context.Context, partial models.Dispatcher, id int64, lookup RecordLookup) (models.Dispatcher, error) {
	stored, err := lookup.DispatcherByID(ctx, id)
	if err != nil {
		return models.Dispatcher{}, lookupError(err, ErrDispatcherNotFound)
	}

	merged := models.Dispatcher{
		ID:       id,
		Login:    CredentialPlaceholder,
		PassHash: CredentialPlaceholder,
		Name:     pickString(partial.Name, stored.Name),
		Surname:  pickString(partial.Surname, stored.Surname),
		Address:  pickString(partial.Address, stored.Address),
		City:     pickString(partial.City, stored.City),
	}

	if err = ValidateDispatcher(merged); err != nil {
		return models.Dispatcher{}, err
	}

	return merged, nil
}

// MergeUser fills login and role from the stored user when they are unset.
// A supplied plaintext password is hashed with hasher, otherwise the stored
// digest is kept. The plaintext never leaves this function.
func MergeUser(ctx context.Context, partial models.User, id int64, lookup RecordLookup, hasher Hasher) (models.User, error) {
	stored, err := lookup.UserByID(ctx, id)
	if err != nil {
		return models.User{}, lookupError(err, ErrUserNotFound)
	}

	merged := models.User{
		ID:       id,
		Login:    pickString(partial.Login, stored.Login),
		PassHash: stored.PassHash,
		Role:     stored.Role,
	}

	if partial.Password != "" {
		merged.PassHash, err = hasher.Hash(partial.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("hash user password: %w", err)
		}
	}

	return merged, nil
}

func pickString(value, stored string) string {
	if value == "" {
		return stored
	}
	return value
}

func pickInt(value, stored int) int {
	if value == 0 {
		return stored
	}
	return value
}

func pickID(value, stored int64) int64 {
	if value == 0 {
		return stored
	}
	return value
}

func pickFloat(value, stored float64) float64 {
	if value == 0 {
		return stored
	}
	return value
}
