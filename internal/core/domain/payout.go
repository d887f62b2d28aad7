package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/govalues/decimal"
)

type RecipientType string

const (
	RecipientOwner  RecipientType = "owner"
	RecipientTeam   RecipientType = "team"
	RecipientSystem RecipientType = "system"
)

type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "pending"
	PayoutStatusProcessed PayoutStatus = "processed"
)

type Payout struct {
	ID               int64
	OrderID          string
	RecipientType    RecipientType
	RecipientAccount string
	Amount           decimal.Decimal
	Status           PayoutStatus
	CreatedAt        time.Time
}

// PayoutAccounts are the bank accounts receiving each share.
type PayoutAccounts struct {
	Owner  string
	Team   string
	System string
}

func (a PayoutAccounts) Validate() error {
	var missing []string
	if a.Owner == "" {
		missing = append(missing, "owner")
	}
	if a.Team == "" {
		missing = append(missing, "team")
	}
	if a.System == "" {
		missing = append(missing, "system")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: payout accounts not configured: %s",
			ErrConfiguration, strings.Join(missing, ", "))
	}
	return nil
}

// PendingTransfer is the account/amount pair of a pending payout.
type PendingTransfer struct {
	Account string
	Amount  decimal.Decimal
}
