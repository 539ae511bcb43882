package rabbitmq

import (
	"context"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"
	"github.com/RiqueAlvess/imobteste/internal/core/port"
)

// noopPublisher stands in when no broker is configured; writes proceed
// without emitting events.
type noopPublisher struct{}

func NewNoopPublisher() port.EventPublisherPort {
	return &noopPublisher{}
}

func (n *noopPublisher) PublishLeadRegistered(ctx context.Context, client *domain.Client) error {
	return nil
}

func (n *noopPublisher) PublishBulkAction(ctx context.Context, action string, affected int64) error {
	return nil
}

func (n *noopPublisher) Close() error {
	return nil
}
