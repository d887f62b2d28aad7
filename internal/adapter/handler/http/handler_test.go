package http_test

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MikeRez0/payoutledger/internal/adapter/config"
	handler "github.com/MikeRez0/payoutledger/internal/adapter/handler/http"
	"github.com/MikeRez0/payoutledger/internal/core/domain"
	"github.com/MikeRez0/payoutledger/internal/core/port/mock"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, svc *mock.MockService) *handler.Router {
	t.Helper()
	log := zap.NewNop()

	wh, err := handler.NewWebhookHandler(svc, log)
	require.NoError(t, err)
	ph, err := handler.NewPayoutHandler(svc, log)
	require.NoError(t, err)
	r, err := handler.NewRouter(&config.App{Mode: config.AppModeDevelop}, wh, ph, log)
	require.NoError(t, err)
	return r
}

func strPtr(s string) *string { return &s }

func TestWebhookHandler_ReceiveOrder(t *testing.T) {
	split := domain.RevenueSplit{
		OrderID: "O1",
		Total:   decimal.MustParse("100"),
		Owner:   decimal.MustParse("70.00"),
		Team:    decimal.MustParse("20.00"),
		System:  decimal.MustParse("10.00"),
	}

	tests := []struct {
		name        string
		body        string
		wantPayload *domain.IntakePayload
		serviceErr  error
		wantStatus  int
		wantBody    string
	}{
		{
			name: "created",
			body: `{"order_id":"O1","customer_name":"Alice","amount":100,"team_id":"T1"}`,
			wantPayload: &domain.IntakePayload{
				OrderID: strPtr("O1"), CustomerName: strPtr("Alice"),
				Amount: strPtr("100"), TeamID: strPtr("T1"),
			},
			wantStatus: http.StatusCreated,
			wantBody: `{"status":"success","order_id":"O1",` +
				`"revenue_split":{"owner":70.00,"team":20.00,"system":10.00,"total":100}}`,
		},
		{
			name: "numeric id and optional fields",
			body: `{"order_id":17,"customer_name":"Alice","amount":"100","team_id":"T1",` +
				`"platform":"ubereats","status":null,"pickup_address":"A st."}`,
			wantPayload: &domain.IntakePayload{
				OrderID: strPtr("17"), CustomerName: strPtr("Alice"),
				Amount: strPtr("100"), TeamID: strPtr("T1"),
				Platform: strPtr("ubereats"), PickupAddress: strPtr("A st."),
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "missing fields",
			body: `{"order_id":"O1","customer_name":"Alice","team_id":"T1"}`,
			wantPayload: &domain.IntakePayload{
				OrderID: strPtr("O1"), CustomerName: strPtr("Alice"), TeamID: strPtr("T1"),
			},
			serviceErr: fmt.Errorf("%w: missing required fields: amount", domain.ErrValidation),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"validation error: missing required fields: amount"}`,
		},
		{
			name:       "persistence failure",
			body:       `{"order_id":"O1","customer_name":"Alice","amount":100,"team_id":"T1"}`,
			serviceErr: fmt.Errorf("%w: save order O1: disk full", domain.ErrPersistence),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to save order"}`,
		},
		{name: "malformed json", body: `{"order_id":`, wantStatus: http.StatusBadRequest},
		{name: "not an object", body: `[1,2]`, wantStatus: http.StatusBadRequest},
		{
			name:       "object amount",
			body:       `{"order_id":"O1","customer_name":"Alice","amount":{"v":1},"team_id":"T1"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "boolean team",
			body:       `{"order_id":"O1","customer_name":"Alice","amount":1,"team_id":true}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mock.NewMockService(ctrl)

			called := tt.wantPayload != nil || tt.serviceErr != nil
			if called {
				payload := gomock.Any()
				if tt.wantPayload != nil {
					payload = gomock.Eq(tt.wantPayload)
				}
				if tt.serviceErr != nil {
					svc.EXPECT().HandleIntake(gomock.Any(), payload).Return(nil, tt.serviceErr)
				} else {
					svc.EXPECT().HandleIntake(gomock.Any(), payload).
						Return(&domain.IntakeResult{OrderID: "O1", Split: split}, nil)
				}
			}

			r := newTestRouter(t, svc)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
			if w.Code == http.StatusBadRequest {
				assert.Contains(t, w.Body.String(), `"error"`)
			}
		})
	}
}

func TestPayoutHandler_ListPayouts(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("pending payouts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().ListPendingPayouts(gomock.Any()).Return([]*domain.Payout{
			{
				ID: 1, OrderID: "O1", RecipientType: domain.RecipientOwner, RecipientAccount: "9991",
				Amount: decimal.MustParse("70.00"), Status: domain.PayoutStatusPending, CreatedAt: created,
			},
		}, nil)

		w := httptest.NewRecorder()
		newTestRouter(t, svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/list_payouts", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"order_id":"O1","recipient_type":"owner","recipient_account":"9991",`+
			`"amount":70.00,"status":"pending","created_at":"2025-03-01T10:00:00Z"}]`, w.Body.String())
	})

	t.Run("empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().ListPendingPayouts(gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		newTestRouter(t, svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/list_payouts", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().ListPendingPayouts(gomock.Any()).Return(nil, domain.ErrStore)

		w := httptest.NewRecorder()
		newTestRouter(t, svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/list_payouts", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Failed to fetch payouts"}`, w.Body.String())
	})
}

func TestPayoutHandler_GeneratePayoutFile(t *testing.T) {
	t.Run("batch file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().ExportPendingBatch(gomock.Any()).Return(&domain.SettlementBatch{
			ID: "batch-1",
			Rows: []domain.SettlementRow{
				domain.NewSettlementRow(domain.PendingTransfer{Account: "9991", Amount: decimal.MustParse("70.99")}),
				domain.NewSettlementRow(domain.PendingTransfer{Account: "9992", Amount: decimal.MustParse("20")}),
			},
		}, nil)

		w := httptest.NewRecorder()
		newTestRouter(t, svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/generate_payout_file", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv"))
		assert.Equal(t, "attachment;filename=payouts_batch.csv", w.Header().Get("Content-Disposition"))
		assert.Equal(t, "batch-1", w.Header().Get("X-Batch-ID"))

		records, err := csv.NewReader(w.Body).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"郵局代號", "帳號", "金額", "姓名", "ID"},
			{"700", "9991", "70", "收款人", ""},
			{"700", "9992", "20", "收款人", ""},
		}, records)
	})

	t.Run("nothing pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().ExportPendingBatch(gomock.Any()).Return(nil, domain.ErrNothingToExport)

		w := httptest.NewRecorder()
		newTestRouter(t, svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/generate_payout_file", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No pending payouts to generate.", w.Body.String())
	})

	t.Run("failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().ExportPendingBatch(gomock.Any()).Return(nil, errors.New("connection reset"))

		w := httptest.NewRecorder()
		newTestRouter(t, svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/generate_payout_file", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Failed to generate payout file"}`, w.Body.String())
	})
}

func TestRouter_ServeStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newTestRouter(t, mock.NewMockService(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Serve(ctx, "127.0.0.1:0") }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

type requestKey struct{}

func TestHandlers_UseRequestContext(t *testing.T) {
	checkCtx := func(c context.Context) {
		_, isGin := c.(*gin.Context)
		assert.False(t, isGin, "handler passed the gin context to the service")
		assert.Equal(t, "r-1", c.Value(requestKey{}))
	}

	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	svc.EXPECT().HandleIntake(gomock.Any(), gomock.Any()).
		DoAndReturn(func(c context.Context, _ *domain.IntakePayload) (*domain.IntakeResult, error) {
			checkCtx(c)
			return &domain.IntakeResult{OrderID: "O1"}, nil
		})
	svc.EXPECT().ListPendingPayouts(gomock.Any()).
		DoAndReturn(func(c context.Context) ([]*domain.Payout, error) {
			checkCtx(c)
			return nil, nil
		})
	svc.EXPECT().ExportPendingBatch(gomock.Any()).
		DoAndReturn(func(c context.Context) (*domain.SettlementBatch, error) {
			checkCtx(c)
			return nil, domain.ErrNothingToExport
		})

	r := newTestRouter(t, svc)
	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodPost, "/webhook",
			strings.NewReader(`{"order_id":"O1","customer_name":"Alice","amount":1,"team_id":"T1"}`)),
		httptest.NewRequest(http.MethodGet, "/list_payouts", nil),
		httptest.NewRequest(http.MethodGet, "/generate_payout_file", nil),
	} {
		req = req.WithContext(context.WithValue(req.Context(), requestKey{}, "r-1"))
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
}
