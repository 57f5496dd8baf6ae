package messaging

import (
	"context"
	"errors"

	"github.com/feral-file/ff-collection-launch/internal/domain"
)

// Publisher defines the interface for publishing committed collection events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a collection event
	PublishEvent(ctx context.Context, event *domain.Event) error
	// Close closes the connection
	Close()
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

// NewNopPublisher creates a publisher that drops every event
func NewNopPublisher() Publisher {
	return NopPublisher{}
}

func (NopPublisher) PublishEvent(context.Context, *domain.Event) error {
	return nil
}

func (NopPublisher) Close() {}

// MultiPublisher publishes every event to each of its publishers
type MultiPublisher struct {
	publishers []Publisher
}

// NewMultiPublisher fans events out to publishers in order
func NewMultiPublisher(publishers ...Publisher) Publisher {
	if len(publishers) == 1 {
		return publishers[0]
	}
	return &MultiPublisher{publishers: publishers}
}

// PublishEvent publishes to every publisher and joins their errors
func (m *MultiPublisher) PublishEvent(ctx context.Context, event *domain.Event) error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.PublishEvent(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiPublisher) Close() {
	for _, p := range m.publishers {
		p.Close()
	}
}
