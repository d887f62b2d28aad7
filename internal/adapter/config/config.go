package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"time"

	"github.com/MikeRez0/payoutledger/internal/core/domain"
	"github.com/MikeRez0/payoutledger/internal/core/utils"
	"github.com/caarlos0/env/v6"
	"github.com/govalues/decimal"
	"github.com/joho/godotenv"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Notifier *Notifier
	Payout   *Payout
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Notifier struct {
	BotToken   string        `env:"TELEGRAM_BOT_TOKEN"`
	ChatID     string        `env:"TELEGRAM_CHAT_ID"`
	APIURL     string        `env:"TELEGRAM_API_URL" envDefault:"https://api.telegram.org"`
	Workers    int           `env:"NOTIFY_WORKERS" envDefault:"2"`
	QueueSize  int           `env:"NOTIFY_QUEUE_SIZE" envDefault:"64"`
	RatePerSec float64       `env:"NOTIFY_RATE" envDefault:"1"`
	Timeout    time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"10s"`
}

// Configured reports whether Telegram credentials are present.
func (n *Notifier) Configured() bool {
	return n.BotToken != "" && n.ChatID != ""
}

type Payout struct {
	OwnerAccount  string `env:"BANK_CTBC_ACCOUNT"`
	TeamAccount   string `env:"BANK_POST_ACCOUNT"`
	SystemAccount string `env:"SYSTEM_PAYOUT_ACCOUNT"`
	Deduplicate   bool   `env:"PAYOUT_DEDUPLICATE"`

	OwnerRatio  string `env:"REVENUE_OWNER_RATIO" envDefault:"0.70"`
	TeamRatio   string `env:"REVENUE_TEAM_RATIO" envDefault:"0.20"`
	SystemRatio string `env:"REVENUE_SYSTEM_RATIO" envDefault:"0.10"`
}

func (p *Payout) Accounts() domain.PayoutAccounts {
	return domain.PayoutAccounts{
		Owner:  p.OwnerAccount,
		Team:   p.TeamAccount,
		System: p.SystemAccount,
	}
}

func (p *Payout) Ratios() (domain.SplitRatios, error) {
	var r domain.SplitRatios
	for _, f := range []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{"owner", p.OwnerRatio, &r.Owner},
		{"team", p.TeamRatio, &r.Team},
		{"system", p.SystemRatio, &r.System},
	} {
		d, err := decimal.Parse(f.value)
		if err != nil {
			return domain.SplitRatios{}, fmt.Errorf("%w: %s ratio %q: %w", domain.ErrConfiguration, f.name, f.value, err)
		}
		*f.dst = d
	}
	return r, nil
}

// NewConfig reads the process flags and environment. A .env file in the working
// directory is loaded first when present.
func NewConfig(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	var db Database
	var http HTTP
	var notifier Notifier
	var payout Payout
	var app App

	fset := flag.NewFlagSet("ledger", flag.ContinueOnError)
	fset.StringVar(&db.DSN, "d", "orders.db", "Database string (postgres URL or SQLite path)")
	fset.StringVar(&http.HostString, "a", `0.0.0.0:5001`, "HTTP server endpoint")
	fset.StringVar(&app.LogLevel, "l", `info`, "Log level")
	fset.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	err = env.Parse(&notifier)
	if err != nil {
		return nil, fmt.Errorf("error parsing notifier config: %w", err)
	}
	err = env.Parse(&payout)
	if err != nil {
		return nil, fmt.Errorf("error parsing payout config: %w", err)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Notifier: &notifier,
		Payout:   &payout,
		App:      &app,
	}

	return &config, nil
}

// Validate fails on settings the ledger cannot run without.
func (c *Config) Validate() error {
	if err := c.Payout.Accounts().Validate(); err != nil {
		return err
	}
	ratios, err := c.Payout.Ratios()
	if err != nil {
		return err
	}
	if err := utils.ValidateRatios(ratios); err != nil {
		return err
	}
	if c.Notifier.Workers < 1 || c.Notifier.QueueSize < 1 {
		return fmt.Errorf("%w: notifier needs at least one worker and queue slot", domain.ErrConfiguration)
	}
	return nil
}
