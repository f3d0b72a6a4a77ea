package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/fleet-dispatch/models"
)

// Column lists shared by the SELECT builders and the row scanners. Their
// order must match the Scan calls in the repositories.
var (
	userColumns = []string{"id", "login", "pass_hash", "role"}

	driverColumns = []string{
		"d.id", "u.login", "u.pass_hash", "d.name", "d.surname",
		"d.experience", "d.address", "d.city", "d.birthday", "d.categories",
	}

	dispatcherColumns = []string{
		"p.id", "u.login", "u.pass_hash", "p.name", "p.surname", "p.address", "p.city",
	}

	carColumns = []string{"id", "license", "brand", "driver_id", "load_capacity", "mileage_buy"}

	orderColumns = []string{"id", "driver_id", "car_id", "date", "mileage", "load", "cost"}
)

// ── users ─────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert("users").
		Columns("login", "pass_hash", "role").
		Values(user.Login, user.PassHash, user.Role).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
}

func buildUpdateUserCredentialsQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Update("users").
		Set("login", user.Login).
		Set("pass_hash", user.PassHash).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
}

// ── drivers ───────────────────────────────────────────────────────────────────

func buildInsertDriverQuery(b sq.StatementBuilderType, driver models.Driver) (string, []any, error) {
	return b.Insert("drivers").
		Columns("id", "name", "surname", "experience", "address", "city", "birthday", "categories").
		Values(driver.ID, driver.Name, driver.Surname, driver.Experience, driver.Address,
			driver.City, driver.Birthday, driver.CategoryString()).
		ToSql()
}

func buildSelectDriverQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(driverColumns...).
		From("drivers d").
		Join("users u ON u.id = d.id").
		Where(sq.Eq{"d.id": id}).
		ToSql()
}

// buildUpdateDriverProfileQuery never touches login and password hash;
// those live in users and change through buildUpdateUserCredentialsQuery.
func buildUpdateDriverProfileQuery(b sq.StatementBuilderType, driver models.Driver) (string, []any, error) {
	return b.Update("drivers").
		SetMap(map[string]any{
			"name":       driver.Name,
			"surname":    driver.Surname,
			"experience": driver.Experience,
			"address":    driver.Address,
			"city":       driver.City,
			"birthday":   driver.Birthday,
			"categories": driver.CategoryString(),
		}).
		Where(sq.Eq{"id": driver.ID}).
		ToSql()
}

// ── dispatchers ───────────────────────────────────────────────────────────────

func buildInsertDispatcherQuery(b sq.StatementBuilderType, dispatcher models.Dispatcher) (string, []any, error) {
	return b.Insert("dispatchers").
		Columns("id", "name", "surname", "address", "city").
		Values(dispatcher.ID, dispatcher.Name, dispatcher.Surname, dispatcher.Address, dispatcher.City).
		ToSql()
}

func buildSelectDispatcherQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(dispatcherColumns...).
		From("dispatchers p").
		Join("users u ON u.id = p.id").
		Where(sq.Eq{"p.id": id}).
		ToSql()
}

func buildUpdateDispatcherProfileQuery(b sq.StatementBuilderType, dispatcher models.Dispatcher) (string, []any, error) {
	return b.Update("dispatchers").
		SetMap(map[string]any{
			"name":    dispatcher.Name,
			"surname": dispatcher.Surname,
			"address": dispatcher.Address,
			"city":    dispatcher.City,
		}).
		Where(sq.Eq{"id": dispatcher.ID}).
		ToSql()
}

// ── cars ──────────────────────────────────────────────────────────────────────

func buildInsertCarQuery(b sq.StatementBuilderType, car models.Car) (string, []any, error) {
	return b.Insert("cars").
		Columns("license", "brand", "driver_id", "load_capacity", "mileage_buy").
		Values(car.License, car.Brand, car.DriverID, car.LoadCapacity, car.MileageBuy).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectCarQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(carColumns...).
		From("cars").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpdateCarQuery(b sq.StatementBuilderType, car models.Car) (string, []any, error) {
	return b.Update("cars").
		SetMap(map[string]any{
			"license":       car.License,
			"brand":         car.Brand,
			"driver_id":     car.DriverID,
			"load_capacity": car.LoadCapacity,
			"mileage_buy":   car.MileageBuy,
		}).
		Where(sq.Eq{"id": car.ID}).
		ToSql()
}

// ── orders ────────────────────────────────────────────────────────────────────

func buildInsertOrderQuery(b sq.StatementBuilderType, order models.Order) (string, []any, error) {
	return b.Insert("orders").
		Columns("driver_id", "car_id", "date", "mileage", "load", "cost").
		Values(order.DriverID, order.CarID, order.Date, order.Mileage, order.Load, order.Cost).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectOrderQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpdateOrderQuery(b sq.StatementBuilderType, order models.Order) (string, []any, error) {
	return b.Update("orders").
		SetMap(map[string]any{
			"driver_id": order.DriverID,
			"car_id":    order.CarID,
			"date":      order.Date,
			"mileage":   order.Mileage,
			"load":      order.Load,
			"cost":      order.Cost,
		}).
		Where(sq.Eq{"id": order.ID}).
		ToSql()
}

// buildListOrdersQuery filters by driver when filter.DriverID is set and by
// an inclusive date range for each non-empty bound. Dates are stored as
// YYYY-MM-DD text, so lexical order is calendar order.
func buildListOrdersQuery(b sq.StatementBuilderType, filter models.OrderFilter) (string, []any, error) {
	query := b.Select(orderColumns...).From("orders")

	if filter.DriverID != 0 {
		query = query.Where(sq.Eq{"driver_id": filter.DriverID})
	}
	if filter.From != "" {
		query = query.Where(sq.GtOrEq{"date": filter.From})
	}
	if filter.To != "" {
		query = query.Where(sq.LtOrEq{"date": filter.To})
	}

	return query.OrderBy("date", "id").ToSql()
}
