package port

import (
	"context"

	"github.com/MikeRez0/payoutledger/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	HandleIntake(ctx context.Context, payload *domain.IntakePayload) (*domain.IntakeResult, error)

	ListPendingPayouts(ctx context.Context) ([]*domain.Payout, error)
	ExportPendingBatch(ctx context.Context) (*domain.SettlementBatch, error)
}
