package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MikeRez0/payoutledger/internal/core/domain"
	"github.com/MikeRez0/payoutledger/internal/core/port"
	"github.com/MikeRez0/payoutledger/internal/core/utils"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// Settings hold the payout policy the pipeline runs with.
type Settings struct {
	Accounts domain.PayoutAccounts
	Ratios   domain.SplitRatios
	// Deduplicate skips revenue and payout creation for an order that already has a revenue row.
	Deduplicate bool
}

type Service struct {
	repo     port.Repository
	notifier port.Notifier
	settings Settings
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(repo port.Repository, notifier port.Notifier, settings Settings,
	logger *zap.Logger) (*Service, error) {
	if err := settings.Accounts.Validate(); err != nil {
		return nil, err
	}
	if err := utils.ValidateRatios(settings.Ratios); err != nil {
		return nil, err
	}

	return &Service{
		repo:     repo,
		notifier: notifier,
		settings: settings,
		logger:   logger,
		now:      time.Now,
	}, nil
}

func (s *Service) HandleIntake(ctx context.Context, payload *domain.IntakePayload) (*domain.IntakeResult, error) {
	order, err := orderFromPayload(payload)
	if err != nil {
		return nil, err
	}
	order.CreatedAt = s.now().UTC()

	saved, err := s.repo.UpsertOrder(ctx, order)
	if err != nil {
		s.logger.Error("Save order", zap.String("order", order.OrderID), zap.Error(err))
		return nil, fmt.Errorf("%w: save order %s: %w", domain.ErrPersistence, order.OrderID, err)
	}

	split, err := utils.SplitRevenue(saved.Amount, s.settings.Ratios)
	if err != nil {
		s.logger.Error("Split revenue", zap.String("order", saved.OrderID), zap.Error(err))
		return nil, err
	}
	split.OrderID = saved.OrderID
	split.Date = s.now().UTC()

	s.recordSettlement(ctx, &split)

	s.dispatchTask(saved)

	if err := s.notifier.Notify(ctx, intakeMessage(saved, &split, s.settings.Ratios)); err != nil {
		s.logger.Warn("Notify order intake", zap.String("order", saved.OrderID), zap.Error(err))
	}

	return &domain.IntakeResult{OrderID: saved.OrderID, Split: split}, nil
}

// recordSettlement persists the revenue row and the payouts. Failures are logged
// and do not undo the order write.
func (s *Service) recordSettlement(ctx context.Context, split *domain.RevenueSplit) {
	if s.settings.Deduplicate {
		exists, err := s.repo.HasRevenueSplit(ctx, split.OrderID)
		if err != nil {
			s.logger.Error("Check revenue", zap.String("order", split.OrderID), zap.Error(err))
			return
		}
		if exists {
			s.logger.Info("Revenue already recorded, skipping payouts", zap.String("order", split.OrderID))
			return
		}
	}

	if err := s.repo.AppendRevenueSplit(ctx, split); err != nil {
		s.logger.Error("Save revenue", zap.String("order", split.OrderID), zap.Error(err))
	}

	if _, err := s.repo.CreatePayouts(ctx, split, s.settings.Accounts); err != nil {
		s.logger.Error("Create payouts", zap.String("order", split.OrderID), zap.Error(err))
	}
}

// dispatchTask is where orders will be routed to their team's resources.
// For now it only records the intent.
func (s *Service) dispatchTask(order *domain.Order) {
	s.logger.Info("Dispatching task",
		zap.String("order", order.OrderID),
		zap.String("team", order.TeamID))
}

func (s *Service) ListPendingPayouts(ctx context.Context) ([]*domain.Payout, error) {
	list, err := s.repo.ListPendingPayouts(ctx)
	if err != nil {
		s.logger.Error("List pending payouts", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) ExportPendingBatch(ctx context.Context) (*domain.SettlementBatch, error) {
	transfers, err := s.repo.ListPendingTransfers(ctx)
	if err != nil {
		s.logger.Error("List pending transfers", zap.Error(err))
		return nil, err
	}
	if len(transfers) == 0 {
		return nil, domain.ErrNothingToExport
	}

	batch := &domain.SettlementBatch{
		ID:          uuid.NewString(),
		GeneratedAt: s.now().UTC(),
		Rows:        make([]domain.SettlementRow, 0, len(transfers)),
	}
	for _, t := range transfers {
		batch.Rows = append(batch.Rows, domain.NewSettlementRow(t))
	}

	s.logger.Info("Settlement batch generated",
		zap.String("batch", batch.ID), zap.Int("rows", len(batch.Rows)))

	return batch, nil
}

func orderFromPayload(p *domain.IntakePayload) (*domain.Order, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: empty payload", domain.ErrValidation)
	}

	var missing []string
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"order_id", p.OrderID},
		{"customer_name", p.CustomerName},
		{"amount", p.Amount},
		{"team_id", p.TeamID},
	} {
		if f.value == nil {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required fields: %s",
			domain.ErrValidation, strings.Join(missing, ", "))
	}

	amount, err := parseAmount(*p.Amount)
	if err != nil {
		return nil, err
	}

	return &domain.Order{
		OrderID:         *p.OrderID,
		CustomerName:    *p.CustomerName,
		PickupAddress:   valueOr(p.PickupAddress, ""),
		DeliveryAddress: valueOr(p.DeliveryAddress, ""),
		Amount:          amount,
		Status:          domain.OrderStatus(valueOr(p.Status, string(domain.OrderStatusReceived))),
		Platform:        valueOr(p.Platform, domain.DefaultPlatform),
		TeamID:          *p.TeamID,
	}, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	amount, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: invalid amount %q: %w", domain.ErrValidation, s, err)
	}
	if !exactDecimal(s) {
		return decimal.Decimal{}, fmt.Errorf("%w: amount %q exceeds %d significant digits",
			domain.ErrValidation, s, decimal.MaxPrec)
	}
	if amount.IsNeg() {
		return decimal.Decimal{}, fmt.Errorf("%w: negative amount %s", domain.ErrValidation, amount)
	}
	return amount, nil
}

// exactDecimal reports whether a plain decimal literal fits the decimal type
// without rounding. Leading zeros and trailing fractional zeros do not count.
func exactDecimal(s string) bool {
	if strings.ContainsAny(s, "eE") {
		return true
	}
	whole, frac, _ := strings.Cut(strings.TrimLeft(s, "+-"), ".")
	frac = strings.TrimRight(frac, "0")
	digits := strings.TrimLeft(whole+frac, "0")
	return len(frac) <= decimal.MaxScale && len(digits) <= decimal.MaxPrec
}

func valueOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}
