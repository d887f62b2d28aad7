package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/payoutledger/internal/core/domain"
)

// AppendRevenueSplit always inserts a new revenue row.
func (r *Repository) AppendRevenueSplit(ctx context.Context, split *domain.RevenueSplit) error {
	statement := r.db.QueryBuilder.Insert("revenue").
		Columns("order_id", "total_amount", "owner_share", "team_share", "system_share", "date").
		Values(split.OrderID, split.Total, split.Owner, split.Team, split.System,
			split.Date.UTC().Format(time.DateOnly))

	query, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return storeError("append revenue", err)
	}
	return nil
}

func (r *Repository) HasRevenueSplit(ctx context.Context, orderID string) (bool, error) {
	statement := r.db.QueryBuilder.
		Select("1").
		From("revenue").
		Where(sq.Eq{"order_id": orderID}).
		Limit(1)

	query, args, err := statement.ToSql()
	if err != nil {
		return false, err
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, storeError("check revenue", err)
	}
	return true, nil
}
