package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusReceived OrderStatus = "received"
)

const DefaultPlatform = "unknown"

type Order struct {
	OrderID         string
	CustomerName    string
	PickupAddress   string
	DeliveryAddress string
	Amount          decimal.Decimal
	Status          OrderStatus
	Platform        string
	TeamID          string
	CreatedAt       time.Time
	CompletedAt     *time.Time
}

// IntakePayload is an order as delivered by the webhook caller. A nil field was
// absent from the request.
type IntakePayload struct {
	OrderID         *string
	CustomerName    *string
	Amount          *string
	TeamID          *string
	PickupAddress   *string
	DeliveryAddress *string
	Status          *string
	Platform        *string
}

type IntakeResult struct {
	OrderID string
	Split   RevenueSplit
}
