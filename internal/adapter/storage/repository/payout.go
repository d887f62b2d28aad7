package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/payoutledger/internal/core/domain"
	"github.com/govalues/decimal"
)

// CreatePayouts records the owner, team and system payouts of a split in one transaction.
func (r *Repository) CreatePayouts(ctx context.Context, split *domain.RevenueSplit,
	accounts domain.PayoutAccounts) ([]*domain.Payout, error) {
	if err := accounts.Validate(); err != nil {
		return nil, err
	}

	createdAt := time.Now().UTC()
	payouts := []*domain.Payout{
		newPayout(split.OrderID, domain.RecipientOwner, accounts.Owner, split.Owner, createdAt),
		newPayout(split.OrderID, domain.RecipientTeam, accounts.Team, split.Team, createdAt),
		newPayout(split.OrderID, domain.RecipientSystem, accounts.System, split.System, createdAt),
	}

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		for _, p := range payouts {
			statement := r.db.QueryBuilder.Insert("payouts").
				Columns("order_id", "recipient_type", "recipient_account", "amount", "status", "created_at").
				Values(p.OrderID, string(p.RecipientType), p.RecipientAccount, p.Amount,
					string(p.Status), r.timeValue(p.CreatedAt)).
				Suffix("RETURNING id")

			query, args, err := statement.ToSql()
			if err != nil {
				return err
			}
			if err := tx.QueryRowContext(ctx, query, args...).Scan(&p.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, storeError("create payouts", err)
	}

	return payouts, nil
}

func newPayout(orderID string, recipient domain.RecipientType, account string,
	amount decimal.Decimal, createdAt time.Time) *domain.Payout {
	return &domain.Payout{
		OrderID:          orderID,
		RecipientType:    recipient,
		RecipientAccount: account,
		Amount:           amount,
		Status:           domain.PayoutStatusPending,
		CreatedAt:        createdAt,
	}
}

func (r *Repository) ListPendingPayouts(ctx context.Context) ([]*domain.Payout, error) {
	statement := r.db.QueryBuilder.
		Select("id", "order_id", "recipient_type", "recipient_account", "amount", "status", "created_at").
		From("payouts").
		Where(sq.Eq{"status": string(domain.PayoutStatusPending)}).
		OrderBy("id")

	query, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError("list pending payouts", err)
	}
	defer rows.Close()

	list := make([]*domain.Payout, 0)
	for rows.Next() {
		p := domain.Payout{}
		var createdAt nullTime
		err := rows.Scan(
			&p.ID,
			&p.OrderID,
			&p.RecipientType,
			&p.RecipientAccount,
			&p.Amount,
			&p.Status,
			&createdAt,
		)
		if err != nil {
			return nil, storeError("scan payout", err)
		}
		p.CreatedAt = createdAt.Time
		list = append(list, &p)
	}

	err = rows.Err()
	if err != nil {
		return nil, storeError("list pending payouts", err)
	}

	return list, nil
}

func (r *Repository) ListPendingTransfers(ctx context.Context) ([]domain.PendingTransfer, error) {
	statement := r.db.QueryBuilder.
		Select("recipient_account", "amount").
		From("payouts").
		Where(sq.Eq{"status": string(domain.PayoutStatusPending)}).
		OrderBy("id")

	query, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError("list pending transfers", err)
	}
	defer rows.Close()

	list := make([]domain.PendingTransfer, 0)
	for rows.Next() {
		t := domain.PendingTransfer{}
		if err := rows.Scan(&t.Account, &t.Amount); err != nil {
			return nil, storeError("scan transfer", err)
		}
		list = append(list, t)
	}

	err = rows.Err()
	if err != nil {
		return nil, storeError("list pending transfers", err)
	}

	return list, nil
}
