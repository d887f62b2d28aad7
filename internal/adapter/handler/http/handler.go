package http

import (
	"errors"
	"net/http"

	"github.com/MikeRez0/payoutledger/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

var errorStatusMap = []struct {
	err    error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrBadRequest, http.StatusBadRequest},
	{domain.ErrNothingToExport, http.StatusNotFound},
	{domain.ErrDataNotFound, http.StatusNotFound},
	{domain.ErrPersistence, http.StatusInternalServerError},
	{domain.ErrStore, http.StatusInternalServerError},
	{domain.ErrInternal, http.StatusInternalServerError},
}

func statusOf(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

type jsonDecimal decimal.Decimal

func (j jsonDecimal) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(j).String()), nil
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends a 400 response carrying the reason
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	h.logger.Info("rejected request", zap.Error(err))
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

// handleError sends an error response. Server side failures are logged and
// reported with the generic message instead of the error text.
func (h *Handler) handleError(ctx *gin.Context, err error, message string) {
	statusCode := statusOf(err)
	if statusCode >= http.StatusInternalServerError {
		h.logger.Error("error processing request", zap.Error(err))
		ctx.JSON(statusCode, ErrorResponse{Error: message})
		return
	}
	if statusCode == http.StatusBadRequest {
		h.handleValidationError(ctx, err)
		return
	}
	ctx.JSON(statusCode, ErrorResponse{Error: err.Error()})
}

func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
