package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MikeRez0/payoutledger/internal/core/domain"
	"github.com/MikeRez0/payoutledger/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const statusSuccess = "success"

type WebhookHandler struct {
	Handler
	service port.Service
}

func NewWebhookHandler(service port.Service, logger *zap.Logger) (*WebhookHandler, error) {
	return &WebhookHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type RevenueSplitResp struct {
	Owner  jsonDecimal `json:"owner" swaggertype:"number"`
	Team   jsonDecimal `json:"team" swaggertype:"number"`
	System jsonDecimal `json:"system" swaggertype:"number"`
	Total  jsonDecimal `json:"total" swaggertype:"number"`
}

type WebhookResp struct {
	Status       string           `json:"status"`
	OrderID      string           `json:"order_id"`
	RevenueSplit RevenueSplitResp `json:"revenue_split"`
}

// ReceiveOrder godoc
//
//	@Summary	Accept an order event
//	@Tags		webhook
//	@Accept		json
//	@Produce	json
//	@Param		order	body		object	true	"order_id, customer_name, amount, team_id and optional pickup_address, delivery_address, status, platform"
//	@Success	201		{object}	WebhookResp
//	@Failure	400		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/webhook [post]
func (wh *WebhookHandler) ReceiveOrder(ctx *gin.Context) {
	var body map[string]json.RawMessage
	if err := ctx.ShouldBindJSON(&body); err != nil {
		wh.handleValidationError(ctx, fmt.Errorf("%w: invalid data format: %w", domain.ErrBadRequest, err))
		return
	}

	payload, err := payloadFromBody(body)
	if err != nil {
		wh.handleValidationError(ctx, err)
		return
	}

	result, err := wh.service.HandleIntake(ctx.Request.Context(), payload)
	if err != nil {
		wh.handleError(ctx, err, "Failed to save order")
		return
	}

	wh.handleSuccessWithStatus(ctx, WebhookResp{
		Status:  statusSuccess,
		OrderID: result.OrderID,
		RevenueSplit: RevenueSplitResp{
			Owner:  jsonDecimal(result.Split.Owner),
			Team:   jsonDecimal(result.Split.Team),
			System: jsonDecimal(result.Split.System),
			Total:  jsonDecimal(result.Split.Total),
		},
	}, http.StatusCreated)
}

func payloadFromBody(body map[string]json.RawMessage) (*domain.IntakePayload, error) {
	payload := &domain.IntakePayload{}
	fields := []struct {
		name string
		dst  **string
	}{
		{"order_id", &payload.OrderID},
		{"customer_name", &payload.CustomerName},
		{"amount", &payload.Amount},
		{"team_id", &payload.TeamID},
		{"pickup_address", &payload.PickupAddress},
		{"delivery_address", &payload.DeliveryAddress},
		{"status", &payload.Status},
		{"platform", &payload.Platform},
	}
	for _, f := range fields {
		raw, ok := body[f.name]
		if !ok {
			continue
		}
		value, err := scalarField(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid data format in %s: %w", domain.ErrValidation, f.name, err)
		}
		*f.dst = value
	}
	return payload, nil
}

// scalarField reads a JSON string or number as text. Null is treated as absent.
func scalarField(raw json.RawMessage) (*string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	switch c := raw[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return &s, nil
	case c == '-' || (c >= '0' && c <= '9'):
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		s := n.String()
		return &s, nil
	}
	return nil, fmt.Errorf("expected string or number, got %s", raw)
}
