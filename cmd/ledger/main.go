package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MikeRez0/payoutledger/internal/adapter/client/telegram"
	"github.com/MikeRez0/payoutledger/internal/adapter/config"
	"github.com/MikeRez0/payoutledger/internal/adapter/handler/http"
	"github.com/MikeRez0/payoutledger/internal/adapter/logger"
	"github.com/MikeRez0/payoutledger/internal/adapter/storage"
	"github.com/MikeRez0/payoutledger/internal/adapter/storage/repository"
	"github.com/MikeRez0/payoutledger/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig(os.Args[1:])
	if err != nil {
		fmt.Printf("config error: %s\n", err)
		os.Exit(1)
	}
	if err := conf.Validate(); err != nil {
		fmt.Printf("config error: %s\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("error creating log: %s\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	if err := run(conf, log); err != nil {
		log.Error("server stopped with error", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(conf *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("database close error", zap.Error(err))
		}
	}()
	if err := db.RunMigrations(); err != nil {
		return fmt.Errorf("database migration error: %w", err)
	}
	log.Info("Database ready", zap.String("dialect", string(db.Dialect)))

	repo, err := repository.NewRepository(db)
	if err != nil {
		return fmt.Errorf("repository creating error: %w", err)
	}

	notifier, err := telegram.NewClient(conf.Notifier, log.Named("Notifier"))
	if err != nil {
		return fmt.Errorf("notifier creating error: %w", err)
	}
	if !conf.Notifier.Configured() {
		log.Warn("Telegram credentials are not set, notifications are disabled")
	}
	go notifier.Run(ctx, conf.Notifier.Workers)

	ratios, err := conf.Payout.Ratios()
	if err != nil {
		return err
	}
	svc, err := service.NewService(repo, notifier, service.Settings{
		Accounts:    conf.Payout.Accounts(),
		Ratios:      ratios,
		Deduplicate: conf.Payout.Deduplicate,
	}, log.Named("Service"))
	if err != nil {
		return fmt.Errorf("service creating error: %w", err)
	}

	webhookHandler, err := http.NewWebhookHandler(svc, log.Named("Webhook handler"))
	if err != nil {
		return fmt.Errorf("webhook handler creating error: %w", err)
	}
	payoutHandler, err := http.NewPayoutHandler(svc, log.Named("Payout handler"))
	if err != nil {
		return fmt.Errorf("payout handler creating error: %w", err)
	}

	r, err := http.NewRouter(conf.App, webhookHandler, payoutHandler, log.Named("Router"))
	if err != nil {
		return fmt.Errorf("router creating error: %w", err)
	}

	return r.Serve(ctx, conf.HTTP.HostString)
}
