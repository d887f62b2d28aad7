package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type RevenueSplit struct {
	OrderID string
	Total   decimal.Decimal
	Owner   decimal.Decimal
	Team    decimal.Decimal
	System  decimal.Decimal
	Date    time.Time
}

// SplitRatios are the shares of the gross amount for each recipient.
// They must sum to exactly one.
type SplitRatios struct {
	Owner  decimal.Decimal
	Team   decimal.Decimal
	System decimal.Decimal
}

var DefaultSplitRatios = SplitRatios{
	Owner:  decimal.MustParse("0.70"),
	Team:   decimal.MustParse("0.20"),
	System: decimal.MustParse("0.10"),
}
