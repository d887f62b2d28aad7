package utils

import (
	"fmt"

	"github.com/MikeRez0/payoutledger/internal/core/domain"
	"github.com/govalues/decimal"
)

// ValidateRatios checks that every ratio is within [0, 1] and that they sum to exactly one.
func ValidateRatios(r domain.SplitRatios) error {
	for _, ratio := range []decimal.Decimal{r.Owner, r.Team, r.System} {
		if ratio.IsNeg() || ratio.Cmp(decimal.One) > 0 {
			return fmt.Errorf("%w: ratio %s out of range", domain.ErrConfiguration, ratio)
		}
	}

	sum, err := r.Owner.Add(r.Team)
	if err == nil {
		sum, err = sum.Add(r.System)
	}
	if err != nil {
		return fmt.Errorf("%w: ratio sum: %w", domain.ErrConfiguration, err)
	}
	if sum.Cmp(decimal.One) != 0 {
		return fmt.Errorf("%w: ratios sum to %s, expected 1", domain.ErrConfiguration, sum)
	}
	return nil
}

// SplitRevenue divides amount into owner, team and system shares.
// The system share takes the remainder so the three shares always add up to the total.
func SplitRevenue(amount decimal.Decimal, ratios domain.SplitRatios) (domain.RevenueSplit, error) {
	if err := ValidateRatios(ratios); err != nil {
		return domain.RevenueSplit{}, err
	}

	owner, err := amount.Mul(ratios.Owner)
	if err != nil {
		return domain.RevenueSplit{}, fmt.Errorf("math error:%w", err)
	}
	team, err := amount.Mul(ratios.Team)
	if err != nil {
		return domain.RevenueSplit{}, fmt.Errorf("math error:%w", err)
	}
	system, err := amount.Sub(owner)
	if err == nil {
		system, err = system.Sub(team)
	}
	if err != nil {
		return domain.RevenueSplit{}, fmt.Errorf("math error:%w", err)
	}

	return domain.RevenueSplit{
		Total:  amount,
		Owner:  owner,
		Team:   team,
		System: system,
	}, nil
}
