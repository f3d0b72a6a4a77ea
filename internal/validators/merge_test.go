package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/fleet-dispatch/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHasher struct {
	err error
}

func (h stubHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}

func TestMergeDriver(t *testing.T) {
	pinToday(t, "2026-10-17")
	ctx := context.Background()

	t.Run("only city supplied", func(t *testing.T) {
		lookup := fleet()
		stored := lookup.drivers[1]

		merged, err := MergeDriver(ctx, models.Driver{City: "Kazan"}, 1, lookup)
		require.NoError(t, err)

		assert.Equal(t, int64(1), merged.ID)
		assert.Equal(t, "Kazan", merged.City)
		assert.Equal(t, stored.Name, merged.Name)
		assert.Equal(t, stored.Surname, merged.Surname)
		assert.Equal(t, stored.Experience, merged.Experience)
		assert.Equal(t, stored.Address, merged.Address)
		assert.Equal(t, stored.Birthday, merged.Birthday)
		assert.Equal(t, stored.Categories, merged.Categories)
	})

	t.Run("credentials replaced by placeholder", func(t *testing.T) {
		merged, err := MergeDriver(ctx, models.Driver{Login: "bad login!", Password: "secret"}, 1, fleet())
		require.NoError(t, err)
		assert.Equal(t, CredentialPlaceholder, merged.Login)
		assert.Equal(t, CredentialPlaceholder, merged.PassHash)
		assert.Empty(t, merged.Password)
	})

	t.Run("supplied categories win", func(t *testing.T) {
		merged, err := MergeDriver(ctx, models.Driver{Categories: []string{"E"}}, 1, fleet())
		require.NoError(t, err)
		assert.Equal(t, []string{"E"}, merged.Categories)
	})

	t.Run("merged record is validated", func(t *testing.T) {
		_, err := MergeDriver(ctx, models.Driver{Birthday: "2015-01-01"}, 1, fleet())
		require.ErrorIs(t, err, ErrUnderage)
	})

	t.Run("zero experience keeps stored value", func(t *testing.T) {
		merged, err := MergeDriver(ctx, models.Driver{Experience: 0}, 1, fleet())
		require.NoError(t, err)
		assert.Equal(t, 7, merged.Experience)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := MergeDriver(ctx, models.Driver{City: "Kazan"}, 77, fleet())
		require.ErrorIs(t, err, ErrDriverNotFound)
		assert.ErrorIs(t, err, NotFoundError)
		assert.Equal(t, "no driver found by provided id", err.Error())
	})

	t.Run("storage failure", func(t *testing.T) {
		lookup := fleet()
		lookup.failWith = errors.New("disk I/O error")
		_, err := MergeDriver(ctx, models.Driver{}, 1, lookup)
		require.ErrorIs(t, err, ErrLookupFailed)
	})
}

func TestMergeCar(t *testing.T) {
	ctx := context.Background()

	t.Run("owner change", func(t *testing.T) {
		merged, err := MergeCar(ctx, models.Car{DriverID: 2}, 5, fleet())
		require.NoError(t, err)
		assert.Equal(t, models.Car{ID: 5, License: "1234AB-5", Brand: "Volvo", DriverID: 2, LoadCapacity: 1000, MileageBuy: 12000}, merged)
	})

	t.Run("new owner must exist", func(t *testing.T) {
		_, err := MergeCar(ctx, models.Car{DriverID: 50}, 5, fleet())
		require.ErrorIs(t, err, ErrCarOwnerNotFound)
	})

	t.Run("bad plate", func(t *testing.T) {
		_, err := MergeCar(ctx, models.Car{License: "1234AB-9"}, 5, fleet())
		require.ErrorIs(t, err, ErrInvalidLicense)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := MergeCar(ctx, models.Car{}, 9, fleet())
		require.ErrorIs(t, err, ErrCarNotFound)
	})
}

func TestMergeOrder(t *testing.T) {
	ctx := context.Background()

	lookup := fleet()
	lookup.orders[10] = models.Order{ID: 10, DriverID: 1, CarID: 5, Date: "2026-03-01", Mileage: 120, Load: 500, Cost: 4200}

	t.Run("cost only", func(t *testing.T) {
		merged, err := MergeOrder(ctx, models.Order{Cost: 5000}, 10, lookup)
		require.NoError(t, err)
		assert.Equal(t, models.Order{ID: 10, DriverID: 1, CarID: 5, Date: "2026-03-01", Mileage: 120, Load: 500, Cost: 5000}, merged)
	})

	t.Run("load over capacity", func(t *testing.T) {
		_, err := MergeOrder(ctx, models.Order{Load: 1001}, 10, lookup)
		require.ErrorIs(t, err, ErrLoadExceedsCapacity)
	})

	t.Run("switch to a car of another driver", func(t *testing.T) {
		_, err := MergeOrder(ctx, models.Order{CarID: 6}, 10, lookup)
		require.ErrorIs(t, err, ErrCarNotOwnedByDriver)
	})

	t.Run("switch driver and car together", func(t *testing.T) {
		merged, err := MergeOrder(ctx, models.Order{DriverID: 2, CarID: 6}, 10, lookup)
		require.NoError(t, err)
		assert.Equal(t, int64(2), merged.DriverID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := MergeOrder(ctx, models.Order{}, 11, lookup)
		require.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestMergeDispatcher(t *testing.T) {
	ctx := context.Background()

	lookup := fleet()
	lookup.dispatchers[3] = validDispatcher()

	t.Run("surname only", func(t *testing.T) {
		merged, err := MergeDispatcher(ctx, models.Dispatcher{Surname: "Brown"}, 3, lookup)
		require.NoError(t, err)
		assert.Equal(t, "Brown", merged.Surname)
		assert.Equal(t, "Anna", merged.Name)
		assert.Equal(t, "Tverskaya 7", merged.Address)
		assert.Equal(t, CredentialPlaceholder, merged.Login)
		assert.Equal(t, CredentialPlaceholder, merged.PassHash)
	})

	t.Run("invalid city", func(t *testing.T) {
		_, err := MergeDispatcher(ctx, models.Dispatcher{City: "St. Louis"}, 3, lookup)
		require.ErrorIs(t, err, ErrInvalidCity)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := MergeDispatcher(ctx, models.Dispatcher{}, 4, lookup)
		require.ErrorIs(t, err, ErrDispatcherNotFound)
	})
}

func TestMergeUser(t *testing.T) {
	ctx := context.Background()

	lookup := fleet()
	lookup.users[1] = models.User{ID: 1, Login: "driver_one", PassHash: "old-digest", Role: models.RoleDriver}

	t.Run("new password is hashed", func(t *testing.T) {
		merged, err := MergeUser(ctx, models.User{Password: "n3w"}, 1, lookup, stubHasher{})
		require.NoError(t, err)
		assert.Equal(t, "driver_one", merged.Login)
		assert.Equal(t, "hashed:n3w", merged.PassHash)
		assert.Empty(t, merged.Password)
		assert.Equal(t, models.RoleDriver, merged.Role)
	})

	t.Run("empty password keeps stored digest", func(t *testing.T) {
		merged, err := MergeUser(ctx, models.User{Login: "renamed"}, 1, lookup, stubHasher{})
		require.NoError(t, err)
		assert.Equal(t, "renamed", merged.Login)
		assert.Equal(t, "old-digest", merged.PassHash)
	})

	t.Run("hasher failure", func(t *testing.T) {
		boom := errors.New("entropy exhausted")
		_, err := MergeUser(ctx, models.User{Password: "x"}, 1, lookup, stubHasher{err: boom})
		require.ErrorIs(t, err, boom)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := MergeUser(ctx, models.User{}, 2, lookup, stubHasher{})
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
