package webhook

import (
	"strings"
	"time"

	"github.com/feral-file/ff-collection-launch/internal/domain"
)

// EventTypeWildcard is a special filter that matches all event types
const EventTypeWildcard = "*"

// WebhookEvent represents a webhook event to be delivered to clients
type WebhookEvent struct {
	// EventID is the journal id of the collection event, clients deduplicate on it
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	Timestamp  time.Time       `json:"timestamp"`
	Collection string          `json:"collection"`
	Actor      string          `json:"actor"`
	TokenID    *domain.TokenID `json:"token_id,omitempty"`
	Data       any             `json:"data"`
}

// NewWebhookEvent converts a committed collection event
func NewWebhookEvent(event *domain.Event) WebhookEvent {
	return WebhookEvent{
		EventID:    event.ID,
		EventType:  string(event.Type),
		Timestamp:  event.Timestamp,
		Collection: strings.ToLower(event.Collection.Hex()),
		Actor:      strings.ToLower(event.Actor.Hex()),
		TokenID:    event.TokenID,
		Data:       event.Data,
	}
}

// DeliveryResult represents the result of a webhook delivery attempt
type DeliveryResult struct {
	// Success indicates whether the delivery was successful
	Success bool
	// StatusCode is the HTTP status code returned by the webhook endpoint
	StatusCode int
	// Body is the response body (limited to 4KB)
	Body string
	// Attempts is the number of requests sent
	Attempts int
	// Error contains error details if delivery failed
	Error string
}

// matches reports whether a client filter accepts an event type
func matches(filter []string, eventType string) bool {
	for _, t := range filter {
		if t == EventTypeWildcard || t == eventType {
			return true
		}
	}
	return false
}
