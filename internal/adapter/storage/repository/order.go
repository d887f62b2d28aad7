package repository

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/payoutledger/internal/core/domain"
)

const upsertOrderSuffix = "ON CONFLICT (order_id) DO UPDATE SET" +
	" customer_name = excluded.customer_name," +
	" pickup_address = excluded.pickup_address," +
	" delivery_address = excluded.delivery_address," +
	" amount = excluded.amount," +
	" status = excluded.status," +
	" platform = excluded.platform," +
	" team_id = excluded.team_id" +
	" RETURNING created_at, completed_at"

// UpsertOrder inserts the order or replaces the fields of an existing one with
// the same order id. The original creation time is kept.
func (r *Repository) UpsertOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.Insert("orders").
		Columns("order_id", "customer_name", "pickup_address", "delivery_address",
			"amount", "status", "platform", "team_id", "created_at").
		Values(order.OrderID, order.CustomerName, order.PickupAddress, order.DeliveryAddress,
			order.Amount, string(order.Status), order.Platform, order.TeamID, r.timeValue(order.CreatedAt)).
		Suffix(upsertOrderSuffix)

	query, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	var createdAt, completedAt nullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &completedAt)
	if err != nil {
		return nil, storeError("upsert order", err)
	}

	saved := *order
	saved.CreatedAt = createdAt.Time
	saved.CompletedAt = nil
	if completedAt.Valid {
		saved.CompletedAt = &completedAt.Time
	}
	return &saved, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select("order_id", "customer_name", "pickup_address", "delivery_address",
			"amount", "status", "platform", "team_id", "created_at", "completed_at").
		From("orders").
		Where(sq.Eq{"order_id": orderID})

	query, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}
	var createdAt, completedAt nullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&order.OrderID,
		&order.CustomerName,
		&order.PickupAddress,
		&order.DeliveryAddress,
		&order.Amount,
		&order.Status,
		&order.Platform,
		&order.TeamID,
		&createdAt,
		&completedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDataNotFound
		}
		return nil, storeError("read order", err)
	}

	order.CreatedAt = createdAt.Time
	if completedAt.Valid {
		order.CompletedAt = &completedAt.Time
	}
	return &order, nil
}
