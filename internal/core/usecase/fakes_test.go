package usecase

import (
	"context"
	"time"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"
)

// fakePropertyStorage implements port.PropertyStoragePort via function
// fields; methods a test does not set must not be called.
type fakePropertyStorage struct {
	findWithFiltersFn   func(ctx context.Context, filters domain.SearchFilters, page int) (*domain.PaginatedProperties, error)
	getFeaturedFn       func(ctx context.Context, limit int) ([]domain.Property, error)
	getDistinctCitiesFn func(ctx context.Context) ([]string, error)
	getActiveDetailsFn  func(ctx context.Context, propertyID int64) (*domain.Property, error)
	getSimilarFn        func(ctx context.Context, ref *domain.Property, limit int) ([]domain.Property, error)
}

func (f *fakePropertyStorage) FindWithFilters(ctx context.Context, filters domain.SearchFilters, page int) (*domain.PaginatedProperties, error) {
	return f.findWithFiltersFn(ctx, filters, page)
}

func (f *fakePropertyStorage) GetFeatured(ctx context.Context, limit int) ([]domain.Property, error) {
	return f.getFeaturedFn(ctx, limit)
}

func (f *fakePropertyStorage) GetDistinctCities(ctx context.Context) ([]string, error) {
	return f.getDistinctCitiesFn(ctx)
}

func (f *fakePropertyStorage) GetActiveDetails(ctx context.Context, propertyID int64) (*domain.Property, error) {
	return f.getActiveDetailsFn(ctx, propertyID)
}

func (f *fakePropertyStorage) GetSimilar(ctx context.Context, ref *domain.Property, limit int) ([]domain.Property, error) {
	return f.getSimilarFn(ctx, ref, limit)
}

func (f *fakePropertyStorage) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	panic("unexpected Create call")
}

func (f *fakePropertyStorage) Update(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	panic("unexpected Update call")
}

func (f *fakePropertyStorage) Delete(ctx context.Context, propertyID int64) error {
	panic("unexpected Delete call")
}

func (f *fakePropertyStorage) GetByID(ctx context.Context, propertyID int64) (*domain.Property, error) {
	panic("unexpected GetByID call")
}

func (f *fakePropertyStorage) List(ctx context.Context, limit, offset int) ([]domain.Property, int, error) {
	panic("unexpected List call")
}

func (f *fakePropertyStorage) BulkUpdateStatus(ctx context.Context, ids []int64, status domain.PropertyStatus) (int64, error) {
	panic("unexpected BulkUpdateStatus call")
}

func (f *fakePropertyStorage) SavePrice(ctx context.Context, price *domain.Price) (*domain.Price, error) {
	panic("unexpected SavePrice call")
}

func (f *fakePropertyStorage) DeletePrice(ctx context.Context, priceID int64) error {
	panic("unexpected DeletePrice call")
}

func (f *fakePropertyStorage) SavePhoto(ctx context.Context, photo *domain.Photo) (*domain.Photo, error) {
	panic("unexpected SavePhoto call")
}

func (f *fakePropertyStorage) DeletePhoto(ctx context.Context, photoID int64) error {
	panic("unexpected DeletePhoto call")
}

type fakeClientStorage struct {
	createFn func(ctx context.Context, c *domain.Client) (*domain.Client, error)
}

func (f *fakeClientStorage) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	return f.createFn(ctx, c)
}

func (f *fakeClientStorage) Update(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	panic("unexpected Update call")
}

func (f *fakeClientStorage) Delete(ctx context.Context, clientID int64) error {
	panic("unexpected Delete call")
}

func (f *fakeClientStorage) GetByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	panic("unexpected GetByID call")
}

func (f *fakeClientStorage) List(ctx context.Context, limit, offset int) ([]domain.Client, int, error) {
	panic("unexpected List call")
}

func (f *fakeClientStorage) BulkUpdateStatus(ctx context.Context, ids []int64, status domain.ClientStatus) (int64, error) {
	panic("unexpected BulkUpdateStatus call")
}

func (f *fakeClientStorage) BulkTouchLastContact(ctx context.Context, ids []int64, at time.Time) (int64, error) {
	panic("unexpected BulkTouchLastContact call")
}

// fakePublisher records published leads and can be told to fail.
type fakePublisher struct {
	published []*domain.Client
	err       error
}

func (f *fakePublisher) PublishLeadRegistered(ctx context.Context, client *domain.Client) error {
	f.published = append(f.published, client)
	return f.err
}

func (f *fakePublisher) PublishBulkAction(ctx context.Context, action string, affected int64) error {
	return f.err
}

func (f *fakePublisher) Close() error { return nil }
