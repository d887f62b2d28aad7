package e2etest

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MikeRez0/payoutledger/internal/adapter/config"
	handler "github.com/MikeRez0/payoutledger/internal/adapter/handler/http"
	"github.com/MikeRez0/payoutledger/internal/adapter/storage/repository"
	"github.com/MikeRez0/payoutledger/internal/core/domain"
	"github.com/MikeRez0/payoutledger/internal/core/port/mock"
	"github.com/MikeRez0/payoutledger/internal/core/service"
	"github.com/MikeRez0/payoutledger/internal/e2etest/testdb"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const aliceOrder = `{"order_id":"O1","customer_name":"Alice","amount":100,"team_id":"T1"}`

type pipeline struct {
	repo     *repository.Repository
	router   *handler.Router
	notifier *mock.MockNotifier
}

func newPipeline(t *testing.T, deduplicate bool) *pipeline {
	t.Helper()
	log := zaptest.NewLogger(t)

	dbtest, err := testdb.NewTestDBInstance()
	require.NoError(t, err)
	t.Cleanup(dbtest.Down)

	repo, err := repository.NewRepository(dbtest.DB)
	require.NoError(t, err)

	notifier := mock.NewMockNotifier(gomock.NewController(t))

	svc, err := service.NewService(repo, notifier, service.Settings{
		Accounts:    domain.PayoutAccounts{Owner: "9991", Team: "9992", System: "9993"},
		Ratios:      domain.DefaultSplitRatios,
		Deduplicate: deduplicate,
	}, log)
	require.NoError(t, err)

	wh, err := handler.NewWebhookHandler(svc, log)
	require.NoError(t, err)
	ph, err := handler.NewPayoutHandler(svc, log)
	require.NoError(t, err)
	router, err := handler.NewRouter(&config.App{Mode: config.AppModeDevelop}, wh, ph, log)
	require.NoError(t, err)

	return &pipeline{repo: repo, router: router, notifier: notifier}
}

func (p *pipeline) do(method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	p.router.ServeHTTP(w, req)
	return w
}

type payoutRow struct {
	OrderID          string          `json:"order_id"`
	RecipientType    string          `json:"recipient_type"`
	RecipientAccount string          `json:"recipient_account"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
}

func (p *pipeline) pendingPayouts(t *testing.T) []payoutRow {
	t.Helper()
	w := p.do(http.MethodGet, "/list_payouts", "")
	require.Equal(t, http.StatusOK, w.Code)

	var rows []payoutRow
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	return rows
}

func TestPipeline_IntakeToPayouts(t *testing.T) {
	p := newPipeline(t, false)
	p.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	w := p.do(http.MethodPost, "/webhook", aliceOrder)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"status":"success","order_id":"O1",`+
		`"revenue_split":{"owner":70,"team":20,"system":10,"total":100}}`, w.Body.String())

	order, err := p.repo.ReadOrder(context.Background(), "O1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusReceived, order.Status)
	assert.Equal(t, domain.DefaultPlatform, order.Platform)

	rows := p.pendingPayouts(t)
	require.Len(t, rows, 3)
	sum := decimal.Zero
	for i, want := range []struct {
		recipient string
		account   string
		amount    string
	}{
		{"owner", "9991", "70"},
		{"team", "9992", "20"},
		{"system", "9993", "10"},
	} {
		assert.Equal(t, "O1", rows[i].OrderID)
		assert.Equal(t, want.recipient, rows[i].RecipientType)
		assert.Equal(t, want.account, rows[i].RecipientAccount)
		assert.True(t, rows[i].Amount.Cmp(decimal.MustParse(want.amount)) == 0, "amount %s", rows[i].Amount)
		assert.Equal(t, "pending", rows[i].Status)
		sum, err = sum.Add(rows[i].Amount)
		require.NoError(t, err)
	}
	assert.True(t, sum.Cmp(decimal.Hundred) == 0)

	w = p.do(http.MethodGet, "/generate_payout_file", "")
	require.Equal(t, http.StatusOK, w.Code)
	records, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"郵局代號", "帳號", "金額", "姓名", "ID"},
		{"700", "9991", "70", "收款人", ""},
		{"700", "9992", "20", "收款人", ""},
		{"700", "9993", "10", "收款人", ""},
	}, records)

	// export is read only
	assert.Len(t, p.pendingPayouts(t), 3)
}

func TestPipeline_MissingAmount(t *testing.T) {
	p := newPipeline(t, false)

	w := p.do(http.MethodPost, "/webhook", `{"order_id":"O1","customer_name":"Alice","team_id":"T1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "amount")

	_, err := p.repo.ReadOrder(context.Background(), "O1")
	assert.Equal(t, domain.ErrDataNotFound, err)
	assert.Empty(t, p.pendingPayouts(t))

	w = p.do(http.MethodGet, "/generate_payout_file", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No pending payouts to generate.", w.Body.String())
}

func TestPipeline_NotificationFailureIsIgnored(t *testing.T) {
	p := newPipeline(t, false)
	p.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(domain.ErrNotification)

	w := p.do(http.MethodPost, "/webhook", aliceOrder)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, p.pendingPayouts(t), 3)
}

func TestPipeline_Replay(t *testing.T) {
	tests := []struct {
		name        string
		deduplicate bool
		wantPayouts int
	}{
		{name: "every delivery records payouts", deduplicate: false, wantPayouts: 6},
		{name: "deduplicated", deduplicate: true, wantPayouts: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPipeline(t, tt.deduplicate)
			p.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(2)

			assert.Equal(t, http.StatusCreated, p.do(http.MethodPost, "/webhook", aliceOrder).Code)
			replay := `{"order_id":"O1","customer_name":"Alice B.","amount":100,"team_id":"T1","platform":"foodpanda"}`
			assert.Equal(t, http.StatusCreated, p.do(http.MethodPost, "/webhook", replay).Code)

			order, err := p.repo.ReadOrder(context.Background(), "O1")
			require.NoError(t, err)
			assert.Equal(t, "Alice B.", order.CustomerName)
			assert.Equal(t, "foodpanda", order.Platform)

			assert.Len(t, p.pendingPayouts(t), tt.wantPayouts)
		})
	}
}

func TestPipeline_BackToBackRequests(t *testing.T) {
	p := newPipeline(t, false)
	p.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	for i := 1; i <= 5; i++ {
		body := fmt.Sprintf(`{"order_id":"O%d","customer_name":"Alice","amount":100,"team_id":"T1"}`, i)
		require.Equal(t, http.StatusCreated, p.do(http.MethodPost, "/webhook", body).Code)
		require.Equal(t, http.StatusOK, p.do(http.MethodGet, "/generate_payout_file", "").Code)
		require.Len(t, p.pendingPayouts(t), 3*i)
	}
}
