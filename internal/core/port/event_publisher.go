package port

import (
	"context"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"
)

// EventPublisherPort notifies the outside world about CRM activity.
// Publishing failures are logged and swallowed by callers; events are
// best-effort and never block a write.
type EventPublisherPort interface {
	PublishLeadRegistered(ctx context.Context, client *domain.Client) error
	PublishBulkAction(ctx context.Context, action string, affected int64) error
	Close() error
}
