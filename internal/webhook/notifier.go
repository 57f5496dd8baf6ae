package webhook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-collection-launch/internal/adapter"
	"github.com/feral-file/ff-collection-launch/internal/config"
	"github.com/feral-file/ff-collection-launch/internal/domain"
	"github.com/feral-file/ff-collection-launch/internal/logger"
	"github.com/feral-file/ff-collection-launch/internal/messaging"
)

const (
	userAgent       = "FF-Collection-Webhook/1.0"
	maxResponseBody = 4 * 1024
)

// Notifier delivers committed collection events to the configured webhook clients.
// A failed delivery is logged and does not hold back the event journal.
type Notifier struct {
	clients       []config.WebhookClientConfig
	httpClient    adapter.HTTPClient
	json          adapter.JSON
	clock         adapter.Clock
	maxRetries    uint64
	retryInterval time.Duration
	pool          pond.ResultPool[DeliveryResult]
}

// NewNotifier creates a webhook notifier
func NewNotifier(cfg config.WebhookConfig, httpClient adapter.HTTPClient, json adapter.JSON, clock adapter.Clock) (*Notifier, error) {
	for i, c := range cfg.Clients {
		if c.URL == "" {
			return nil, fmt.Errorf("webhook client %d: url is required", i)
		}
		if c.Secret == "" {
			return nil, fmt.Errorf("webhook client %d: secret is required", i)
		}
	}

	retryInterval := cfg.RetryInterval
	if retryInterval <= 0 {
		retryInterval = 5 * time.Second
	}

	return &Notifier{
		clients:       cfg.Clients,
		httpClient:    httpClient,
		json:          json,
		clock:         clock,
		maxRetries:    cfg.MaxRetries,
		retryInterval: retryInterval,
		pool:          pond.NewResultPool[DeliveryResult](max(len(cfg.Clients), 1)),
	}, nil
}

var _ messaging.Publisher = (*Notifier)(nil)

// PublishEvent delivers the event to every client subscribed to its type
func (n *Notifier) PublishEvent(ctx context.Context, event *domain.Event) error {
	whEvent := NewWebhookEvent(event)
	payload, err := n.json.Marshal(whEvent)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	var subscribed []config.WebhookClientConfig
	for _, client := range n.clients {
		if matches(client.EventTypes, whEvent.EventType) {
			subscribed = append(subscribed, client)
		}
	}
	if len(subscribed) == 0 {
		return nil
	}

	group := n.pool.NewGroup()
	for _, client := range subscribed {
		group.Submit(func() DeliveryResult {
			return n.deliver(ctx, client, whEvent, payload)
		})
	}

	results, err := group.Wait()
	if err != nil {
		return err
	}

	delivered := 0
	for _, r := range results {
		if r.Success {
			delivered++
		}
	}
	logger.DebugCtx(ctx, "Webhook notification completed",
		zap.String("eventID", whEvent.EventID),
		zap.String("eventType", whEvent.EventType),
		zap.Int("clients", len(results)),
		zap.Int("delivered", delivered))

	return ctx.Err()
}

// deliver sends one event to one client, retrying transient failures
func (n *Notifier) deliver(ctx context.Context, client config.WebhookClientConfig, event WebhookEvent, payload []byte) DeliveryResult {
	var result DeliveryResult

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = n.retryInterval
	b.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(b, n.maxRetries), ctx)

	err := backoff.RetryNotify(func() error {
		result.Attempts++
		return n.post(ctx, client, event, payload, &result)
	}, policy, func(err error, wait time.Duration) {
		logger.WarnCtx(ctx, "Retrying webhook delivery",
			zap.String("clientID", client.ID),
			zap.String("eventID", event.EventID),
			zap.Duration("wait", wait),
			zap.Error(err))
	})
	if err != nil {
		result.Error = err.Error()
		logger.ErrorCtx(ctx, errors.New("webhook delivery failed"),
			zap.Error(err),
			zap.String("clientID", client.ID),
			zap.String("eventID", event.EventID),
			zap.Int("attempts", result.Attempts))
		return result
	}

	result.Success = true
	logger.InfoCtx(ctx, "Webhook delivered",
		zap.String("clientID", client.ID),
		zap.String("eventID", event.EventID),
		zap.Int("statusCode", result.StatusCode))
	return result
}

func (n *Notifier) post(ctx context.Context, client config.WebhookClientConfig, event WebhookEvent, payload []byte, result *DeliveryResult) error {
	timestamp := n.clock.Now().Unix()
	headers := map[string]string{
		"Content-Type":         "application/json",
		"X-Webhook-Signature":  Sign(client.Secret, timestamp, event.EventID, payload),
		"X-Webhook-Event-ID":   event.EventID,
		"X-Webhook-Event-Type": event.EventType,
		"X-Webhook-Timestamp":  strconv.FormatInt(timestamp, 10),
		"User-Agent":           userAgent,
	}

	resp, err := n.httpClient.PostWithHeaders(ctx, client.URL, headers, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.WarnCtx(ctx, "failed to close response body", zap.Error(err), zap.String("url", client.URL))
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		body = nil
	}
	result.StatusCode = resp.StatusCode
	result.Body = string(body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	err = fmt.Errorf("HTTP %d", resp.StatusCode)
	// 4xx other than 429 is not retried
	if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
		return backoff.Permanent(err)
	}
	return err
}

// Close waits for in-flight deliveries
func (n *Notifier) Close() {
	n.pool.StopAndWait()
}
