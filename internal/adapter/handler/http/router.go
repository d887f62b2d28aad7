package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MikeRez0/payoutledger/internal/adapter/config"
	"github.com/MikeRez0/payoutledger/internal/adapter/logger"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/MikeRez0/payoutledger/docs"
)

const shutdownTimeout = 10 * time.Second

type Router struct {
	*gin.Engine
	logger *zap.Logger
}

func NewRouter(
	conf *config.App,
	webhookHandler *WebhookHandler,
	payoutHandler *PayoutHandler,
	log *zap.Logger) (*Router, error) {

	if conf.Mode == config.AppModeProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), logger.RequestLogger(log))

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/webhook", webhookHandler.ReceiveOrder)
	router.GET("/list_payouts", payoutHandler.ListPayouts)
	router.GET("/generate_payout_file", payoutHandler.GeneratePayoutFile)

	return &Router{Engine: router, logger: log}, nil
}

// Serve starts the HTTP server and shuts it down once ctx is done
func (r *Router) Serve(ctx context.Context, listenAddr string) error {
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           r.Engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("Listening", zap.String("address", listenAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
