package port

import (
	"context"
	"time"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"
)

type ClientStoragePort interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, clientID int64) error
	GetByID(ctx context.Context, clientID int64) (*domain.Client, error)
	List(ctx context.Context, limit, offset int) ([]domain.Client, int, error)

	BulkUpdateStatus(ctx context.Context, ids []int64, status domain.ClientStatus) (int64, error)
	// BulkTouchLastContact sets last_contact_at to the given instant for
	// every selected client.
	BulkTouchLastContact(ctx context.Context, ids []int64, at time.Time) (int64, error)
}
