package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/MikeRez0/payoutledger/internal/adapter/config"
	"github.com/MikeRez0/payoutledger/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAccounts(t *testing.T) {
	t.Setenv("BANK_CTBC_ACCOUNT", "9991")
	t.Setenv("BANK_POST_ACCOUNT", "9992")
	t.Setenv("SYSTEM_PAYOUT_ACCOUNT", "9993")
}

func TestNewConfig_Defaults(t *testing.T) {
	setAccounts(t)

	conf, err := config.NewConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "orders.db", conf.Database.DSN)
	assert.Equal(t, "0.0.0.0:5001", conf.HTTP.HostString)
	assert.Equal(t, config.AppModeDevelop, conf.App.Mode)
	assert.Equal(t, "https://api.telegram.org", conf.Notifier.APIURL)
	assert.Equal(t, 2, conf.Notifier.Workers)
	assert.Equal(t, 10*time.Second, conf.Notifier.Timeout)
	assert.False(t, conf.Notifier.Configured())
	assert.False(t, conf.Payout.Deduplicate)

	ratios, err := conf.Payout.Ratios()
	require.NoError(t, err)
	assert.True(t, ratios.Owner.Cmp(decimal.MustParse("0.7")) == 0)
	assert.True(t, ratios.Team.Cmp(decimal.MustParse("0.2")) == 0)
	assert.True(t, ratios.System.Cmp(decimal.MustParse("0.1")) == 0)

	assert.NoError(t, conf.Validate())
}

func TestNewConfig_EnvOverridesFlags(t *testing.T) {
	setAccounts(t)
	t.Setenv("RUN_ADDRESS", ":8080")
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "-100")
	t.Setenv("PAYOUT_DEDUPLICATE", "true")

	conf, err := config.NewConfig([]string{"-a", ":9000", "-d", "postgres://localhost/ledger", "-m", "PROD"})
	require.NoError(t, err)

	assert.Equal(t, ":8080", conf.HTTP.HostString)
	assert.Equal(t, "postgres://localhost/ledger", conf.Database.DSN)
	assert.Equal(t, config.AppModeProduction, conf.App.Mode)
	assert.True(t, conf.Notifier.Configured())
	assert.True(t, conf.Payout.Deduplicate)
	assert.Equal(t, domain.PayoutAccounts{Owner: "9991", Team: "9992", System: "9993"}, conf.Payout.Accounts())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing system account", env: map[string]string{"SYSTEM_PAYOUT_ACCOUNT": ""}},
		{name: "ratios do not sum to one", env: map[string]string{"REVENUE_OWNER_RATIO": "0.8"}},
		{name: "ratio not a number", env: map[string]string{"REVENUE_TEAM_RATIO": "abc"}},
		{name: "no notifier workers", env: map[string]string{"NOTIFY_WORKERS": "0"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			setAccounts(t)
			for k, v := range test.env {
				t.Setenv(k, v)
			}

			conf, err := config.NewConfig(nil)
			require.NoError(t, err)

			err = conf.Validate()
			assert.True(t, errors.Is(err, domain.ErrConfiguration), "got %v", err)
		})
	}
}
