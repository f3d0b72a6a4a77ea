package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/fleet-dispatch/internal/logger"
	"github.com/MKhiriev/fleet-dispatch/models"
)

type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOrderRepository constructs an [OrderRepository] backed by db.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertOrderQuery(r.db.builder, order)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error building insert query")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.queryRow(ctx, query, args, &order.ID); err != nil {
		log.Err(err).
			Str("func", "*orderRepository.CreateOrder").
			Int64("driver_id", order.DriverID).
			Int64("car_id", order.CarID).
			Msg("error inserting order")
		return models.Order{}, r.db.constraintError(err, ErrExecutingStatement)
	}

	return order, nil
}

func (r *orderRepository) OrderByID(ctx context.Context, id int64) (models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOrderQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.OrderByID").Msg("error building select query")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var order models.Order
	err = r.db.queryRow(ctx, query, args, orderDest(&order)...)
	switch {
	case errors.Is(err, ErrRecordNotFound):
		return models.Order{}, ErrRecordNotFound
	case err != nil:
		log.Err(err).Str("func", "*orderRepository.OrderByID").Int64("order_id", id).Msg("error selecting order")
		return models.Order{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return order, nil
}

func (r *orderRepository) UpdateOrder(ctx context.Context, order models.Order) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateOrderQuery(r.db.builder, order)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.UpdateOrder").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.execOne(ctx, query, args)
	switch {
	case errors.Is(err, ErrRecordNotFound):
		return ErrRecordNotFound
	case err != nil:
		log.Err(err).Str("func", "*orderRepository.UpdateOrder").Int64("order_id", order.ID).Msg("error updating order")
		return r.db.constraintError(err, ErrExecutingStatement)
	}

	return nil
}

// ListOrders returns an empty, non-nil slice when nothing matches.
func (r *orderRepository) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListOrdersQuery(r.db.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.ListOrders").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var orders []models.Order
	err = r.db.withRetry(ctx, func() error {
		orders = make([]models.Order, 0)

		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var order models.Order
			if err = rows.Scan(orderDest(&order)...); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			orders = append(orders, order)
		}

		if err = rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*orderRepository.ListOrders").
			Int64("driver_id", filter.DriverID).
			Str("from", filter.From).
			Str("to", filter.To).
			Msg("error listing orders")
		return nil, err
	}

	return orders, nil
}

// orderDest lists the scan targets in orderColumns order.
func orderDest(order *models.Order) []any {
	return []any{
		&order.ID, &order.DriverID, &order.CarID, &order.Date,
		&order.Mileage, &order.Load, &order.Cost,
	}
}
