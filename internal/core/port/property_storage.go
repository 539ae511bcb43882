package port

import (
	"context"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"
)

// PropertyStoragePort is the persistence contract for properties and their
// owned rows (prices, photos, amenity links).
type PropertyStoragePort interface {
	// FindWithFilters searches active properties. The page number is
	// clamped against the filtered total, never rejected.
	FindWithFilters(ctx context.Context, filters domain.SearchFilters, page int) (*domain.PaginatedProperties, error)

	// GetFeatured returns the most recently created active properties with
	// prices and photos preloaded.
	GetFeatured(ctx context.Context, limit int) ([]domain.Property, error)

	// GetDistinctCities lists cities that have at least one active property.
	GetDistinctCities(ctx context.Context) ([]string, error)

	// GetActiveDetails loads one active property with all relations, or
	// domain.ErrNotFound.
	GetActiveDetails(ctx context.Context, propertyID int64) (*domain.Property, error)

	// GetSimilar returns active properties sharing type and city with the
	// given one, excluding it, capped at limit.
	GetSimilar(ctx context.Context, ref *domain.Property, limit int) ([]domain.Property, error)

	// Admin side.
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	Update(ctx context.Context, p *domain.Property) (*domain.Property, error)
	Delete(ctx context.Context, propertyID int64) error
	GetByID(ctx context.Context, propertyID int64) (*domain.Property, error)
	List(ctx context.Context, limit, offset int) ([]domain.Property, int, error)
	BulkUpdateStatus(ctx context.Context, ids []int64, status domain.PropertyStatus) (int64, error)

	// SavePrice upserts the price row for (property, purpose).
	SavePrice(ctx context.Context, price *domain.Price) (*domain.Price, error)
	DeletePrice(ctx context.Context, priceID int64) error

	// SavePhoto stores a photo; when it is marked as cover, the cover flag
	// of every sibling photo is cleared in the same transaction.
	SavePhoto(ctx context.Context, photo *domain.Photo) (*domain.Photo, error)
	DeletePhoto(ctx context.Context, photoID int64) error
}
