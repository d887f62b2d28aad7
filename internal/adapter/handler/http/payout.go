package http

import (
	"bytes"
	"encoding/csv"
	"errors"
	"net/http"
	"time"

	"github.com/MikeRez0/payoutledger/internal/core/domain"
	"github.com/MikeRez0/payoutledger/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	payoutFileName    = "payouts_batch.csv"
	batchIDHeader     = "X-Batch-ID"
	nothingToGenerate = "No pending payouts to generate."
)

type PayoutHandler struct {
	Handler
	service port.Service
}

func NewPayoutHandler(service port.Service, logger *zap.Logger) (*PayoutHandler, error) {
	return &PayoutHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type PayoutResp struct {
	ID               int64       `json:"id"`
	OrderID          string      `json:"order_id"`
	RecipientType    string      `json:"recipient_type"`
	RecipientAccount string      `json:"recipient_account"`
	Amount           jsonDecimal `json:"amount" swaggertype:"number"`
	Status           string      `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
}

// ListPayouts godoc
//
//	@Summary	List pending payouts
//	@Tags		payouts
//	@Produce	json
//	@Success	200	{array}		PayoutResp
//	@Failure	500	{object}	ErrorResponse
//	@Router		/list_payouts [get]
func (ph *PayoutHandler) ListPayouts(ctx *gin.Context) {
	list, err := ph.service.ListPendingPayouts(ctx.Request.Context())
	if err != nil {
		ph.handleError(ctx, err, "Failed to fetch payouts")
		return
	}

	result := make([]PayoutResp, 0, len(list))
	for _, p := range list {
		result = append(result, PayoutResp{
			ID:               p.ID,
			OrderID:          p.OrderID,
			RecipientType:    string(p.RecipientType),
			RecipientAccount: p.RecipientAccount,
			Amount:           jsonDecimal(p.Amount),
			Status:           string(p.Status),
			CreatedAt:        p.CreatedAt,
		})
	}

	ph.handleSuccess(ctx, result)
}

// GeneratePayoutFile godoc
//
//	@Summary	Download pending payouts as a post office batch file
//	@Tags		payouts
//	@Produce	text/csv
//	@Success	200	{file}		file
//	@Failure	404	{string}	string
//	@Failure	500	{object}	ErrorResponse
//	@Router		/generate_payout_file [get]
func (ph *PayoutHandler) GeneratePayoutFile(ctx *gin.Context) {
	batch, err := ph.service.ExportPendingBatch(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNothingToExport) {
			ctx.String(http.StatusNotFound, nothingToGenerate)
			return
		}
		ph.handleError(ctx, err, "Failed to generate payout file")
		return
	}

	data, err := renderSettlement(batch)
	if err != nil {
		ph.handleError(ctx, err, "Failed to generate payout file")
		return
	}

	ph.logger.Info("Payout file generated",
		zap.String("batch", batch.ID), zap.Int("rows", len(batch.Rows)))

	ctx.Header("Content-Disposition", "attachment;filename="+payoutFileName)
	ctx.Header(batchIDHeader, batch.ID)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

func renderSettlement(batch *domain.SettlementBatch) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	w.UseCRLF = true

	if err := w.Write(domain.SettlementHeader); err != nil {
		return nil, err
	}
	for _, row := range batch.Rows {
		if err := w.Write(row.Record()); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
