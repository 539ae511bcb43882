package usecases_port

import (
	"context"
	"time"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"

	"github.com/google/uuid"
)

type PropertyAdminUseCase interface {
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) (*domain.Property, error)
	Delete(ctx context.Context, propertyID int64) error
	Get(ctx context.Context, propertyID int64) (*domain.Property, error)
	List(ctx context.Context, limit, offset int) ([]domain.Property, int, error)
	BulkSetStatus(ctx context.Context, ids []int64, status domain.PropertyStatus) (int64, error)

	SavePrice(ctx context.Context, price *domain.Price) (*domain.Price, error)
	DeletePrice(ctx context.Context, priceID int64) error
	SavePhoto(ctx context.Context, photo *domain.Photo) (*domain.Photo, error)
	DeletePhoto(ctx context.Context, photoID int64) error
}

type OwnerAdminUseCase interface {
	Create(ctx context.Context, o *domain.Owner) (*domain.Owner, error)
	Update(ctx context.Context, o *domain.Owner) (*domain.Owner, error)
	Delete(ctx context.Context, ownerID uuid.UUID) error
	Get(ctx context.Context, ownerID uuid.UUID) (*domain.Owner, error)
	List(ctx context.Context, limit, offset int) ([]domain.Owner, int, error)
}

type ClientAdminUseCase interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, clientID int64) error
	Get(ctx context.Context, clientID int64) (*domain.Client, error)
	List(ctx context.Context, limit, offset int) ([]domain.Client, int, error)
	BulkSetStatus(ctx context.Context, ids []int64, status domain.ClientStatus) (int64, error)
	BulkTouchContact(ctx context.Context, ids []int64, at time.Time) (int64, error)
}

type AmenityAdminUseCase interface {
	Create(ctx context.Context, a *domain.Amenity) (*domain.Amenity, error)
	Update(ctx context.Context, a *domain.Amenity) (*domain.Amenity, error)
	Delete(ctx context.Context, amenityID int64) error
	List(ctx context.Context) ([]domain.Amenity, error)
}
