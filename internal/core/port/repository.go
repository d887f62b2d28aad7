package port

import (
	"context"

	"github.com/MikeRez0/payoutledger/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Order
	UpsertOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID string) (*domain.Order, error)

	// Revenue
	AppendRevenueSplit(ctx context.Context, split *domain.RevenueSplit) error
	HasRevenueSplit(ctx context.Context, orderID string) (bool, error)

	// Payout
	CreatePayouts(ctx context.Context, split *domain.RevenueSplit,
		accounts domain.PayoutAccounts) ([]*domain.Payout, error)
	ListPendingPayouts(ctx context.Context) ([]*domain.Payout, error)
	ListPendingTransfers(ctx context.Context) ([]domain.PendingTransfer, error)
}
