package port

import (
	"context"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"

	"github.com/google/uuid"
)

type OwnerStoragePort interface {
	Create(ctx context.Context, o *domain.Owner) (*domain.Owner, error)
	Update(ctx context.Context, o *domain.Owner) (*domain.Owner, error)
	// Delete cascades to the owner's properties (and from there to their
	// prices and photos) at the database level.
	Delete(ctx context.Context, ownerID uuid.UUID) error
	GetByID(ctx context.Context, ownerID uuid.UUID) (*domain.Owner, error)
	// List includes the per-owner property count.
	List(ctx context.Context, limit, offset int) ([]domain.Owner, int, error)
}

type AmenityStoragePort interface {
	Create(ctx context.Context, a *domain.Amenity) (*domain.Amenity, error)
	Update(ctx context.Context, a *domain.Amenity) (*domain.Amenity, error)
	Delete(ctx context.Context, amenityID int64) error
	List(ctx context.Context) ([]domain.Amenity, error)
}
