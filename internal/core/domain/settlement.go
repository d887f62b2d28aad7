package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// Post office batch transfer format.
const (
	SettlementRoutingCode   = "700"
	SettlementRecipientName = "收款人"
)

var SettlementHeader = []string{"郵局代號", "帳號", "金額", "姓名", "ID"}

type SettlementRow struct {
	RoutingCode   string
	Account       string
	Amount        decimal.Decimal
	RecipientName string
	RecipientID   string
}

// NewSettlementRow builds a row for a pending transfer. The amount is truncated
// to whole units.
func NewSettlementRow(t PendingTransfer) SettlementRow {
	return SettlementRow{
		RoutingCode:   SettlementRoutingCode,
		Account:       t.Account,
		Amount:        t.Amount.Trunc(0),
		RecipientName: SettlementRecipientName,
	}
}

func (r SettlementRow) Record() []string {
	return []string{r.RoutingCode, r.Account, r.Amount.String(), r.RecipientName, r.RecipientID}
}

type SettlementBatch struct {
	ID          string
	GeneratedAt time.Time
	Rows        []SettlementRow
}
