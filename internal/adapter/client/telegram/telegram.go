package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/MikeRez0/payoutledger/internal/adapter/config"
	"github.com/MikeRez0/payoutledger/internal/core/domain"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultMaxAttempts = 3
	defaultRetryDelay  = 3 * time.Second
	parseModeMarkdown  = "Markdown"
)

// Client delivers chat messages through the Telegram Bot API. Messages are
// queued by Notify and sent by the workers started with Run.
type Client struct {
	logger  *zap.Logger
	http    *resty.Client
	limiter *rate.Limiter
	queue   chan string

	token  string
	chatID string

	maxAttempts int
	retryDelay  time.Duration
}

func NewClient(cfg *config.Notifier, log *zap.Logger) (*Client, error) {
	if cfg.QueueSize < 1 {
		return nil, fmt.Errorf("%w: notifier queue size must be positive", domain.ErrConfiguration)
	}

	limit := rate.Inf
	if cfg.RatePerSec > 0 {
		limit = rate.Limit(cfg.RatePerSec)
	}

	return &Client{
		logger:      log,
		http:        resty.New().SetBaseURL(cfg.APIURL).SetTimeout(cfg.Timeout),
		limiter:     rate.NewLimiter(limit, 1),
		queue:       make(chan string, cfg.QueueSize),
		token:       cfg.BotToken,
		chatID:      cfg.ChatID,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
	}, nil
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
	Parameters  struct {
		RetryAfter int `json:"retry_after"`
	} `json:"parameters"`
}

type errSendRequest struct {
	Status     int
	RetryAfter time.Duration
}

func (e *errSendRequest) Error() string {
	if e.Status == http.StatusTooManyRequests {
		return fmt.Sprintf("Too Many Requests. Retry-After: %s", e.RetryAfter)
	}
	return fmt.Sprintf("telegram responded with status %d", e.Status)
}

func (c *Client) configured() bool {
	return c.token != "" && c.chatID != ""
}

// Notify queues the message without waiting for delivery.
func (c *Client) Notify(ctx context.Context, message string) error {
	if !c.configured() {
		return fmt.Errorf("%w: telegram credentials are not configured", domain.ErrNotification)
	}

	select {
	case c.queue <- message:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", domain.ErrNotification, ctx.Err())
	default:
		return fmt.Errorf("%w: message queue is full", domain.ErrNotification)
	}
}

// Run sends queued messages with the given number of workers until ctx is done.
func (c *Client) Run(ctx context.Context, workers int) {
	wg := sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case message := <-c.queue:
					if err := c.deliver(ctx, message); err != nil {
						c.logger.Error("Failed to send notification", zap.Error(err))
					}
				case <-ctx.Done():
					c.logger.Debug("Finished worker")
					return
				}
			}
		}()
	}

	wg.Wait()
}

// deliver sends one message, retrying rate limited and server side failures.
func (c *Client) deliver(ctx context.Context, message string) error {
	var err error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = c.send(ctx, message)
		if err == nil {
			return nil
		}

		var reqErr *errSendRequest
		if !errors.As(err, &reqErr) {
			return err
		}
		wait := c.retryDelay
		switch {
		case reqErr.Status == http.StatusTooManyRequests:
			if reqErr.RetryAfter > 0 {
				wait = reqErr.RetryAfter
			}
		case reqErr.Status >= http.StatusInternalServerError:
		default:
			return err
		}
		if attempt == c.maxAttempts {
			break
		}

		c.logger.Debug("Pause before retry",
			zap.Int("attempt", attempt), zap.Duration("retryAfter", wait))
		t := time.NewTimer(wait)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			return fmt.Errorf("%w: %w", domain.ErrNotification, ctx.Err())
		}
	}
	return err
}

func (c *Client) send(ctx context.Context, message string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrNotification, err)
	}

	var result apiResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(sendMessageRequest{ChatID: c.chatID, Text: message, ParseMode: parseModeMarkdown}).
		SetResult(&result).
		SetError(&result).
		Post("/bot" + c.token + "/sendMessage")
	if err != nil {
		// the request URL carries the bot token
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("%w: send message: %w", domain.ErrNotification, err)
	}

	if resp.StatusCode() != http.StatusOK {
		reqErr := &errSendRequest{Status: resp.StatusCode()}
		if resp.StatusCode() == http.StatusTooManyRequests {
			reqErr.RetryAfter = retryAfter(resp.Header().Get("Retry-After"), result.Parameters.RetryAfter)
		}
		c.logger.Warn("unexpected status for sendMessage",
			zap.Int("status", resp.StatusCode()), zap.String("description", result.Description))
		return fmt.Errorf("%w: %w", domain.ErrNotification, reqErr)
	}

	c.logger.Debug("Notification sent")
	return nil
}

func retryAfter(header string, param int) time.Duration {
	if param > 0 {
		return time.Duration(param) * time.Second
	}
	if sec, err := strconv.Atoi(header); err == nil && sec > 0 {
		return time.Duration(sec) * time.Second
	}
	return 0
}
