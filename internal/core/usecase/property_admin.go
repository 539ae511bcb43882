package usecase

import (
	"context"
	"strings"

	"github.com/RiqueAlvess/imobteste/internal/contextkeys"
	"github.com/RiqueAlvess/imobteste/internal/core/domain"
	"github.com/RiqueAlvess/imobteste/internal/core/port"
)

// PropertyAdminUseCase backs the back-office property surface: CRUD, the
// price and photo sub-forms and the bulk status actions.
type PropertyAdminUseCase struct {
	storage   port.PropertyStoragePort
	publisher port.EventPublisherPort
}

func NewPropertyAdminUseCase(storage port.PropertyStoragePort, publisher port.EventPublisherPort) *PropertyAdminUseCase {
	return &PropertyAdminUseCase{storage: storage, publisher: publisher}
}

func (uc *PropertyAdminUseCase) validate(p *domain.Property) error {
	if strings.TrimSpace(p.Title) == "" {
		return domain.ErrInvalidInput
	}
	if _, known := domain.PropertyTypeLabels[p.Type]; !known {
		return domain.ErrInvalidInput
	}
	if p.Status == "" {
		p.Status = domain.StatusActive
	}
	if p.Furnishing == "" {
		p.Furnishing = domain.FurnishingEmpty
	}
	return nil
}

func (uc *PropertyAdminUseCase) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "PropertyAdmin.Create"})
	if err := uc.validate(p); err != nil {
		return nil, err
	}
	created, err := uc.storage.Create(ctx, p)
	if err != nil {
		logger.Error("Failed to create property", err, nil)
		return nil, err
	}
	logger.Info("Property created", port.Fields{"property_id": created.ID})
	return created, nil
}

func (uc *PropertyAdminUseCase) Update(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "PropertyAdmin.Update",
		"property_id": p.ID,
	})
	if err := uc.validate(p); err != nil {
		return nil, err
	}
	updated, err := uc.storage.Update(ctx, p)
	if err != nil {
		logger.Error("Failed to update property", err, nil)
		return nil, err
	}
	logger.Info("Property updated", nil)
	return updated, nil
}

func (uc *PropertyAdminUseCase) Delete(ctx context.Context, propertyID int64) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "PropertyAdmin.Delete",
		"property_id": propertyID,
	})
	if err := uc.storage.Delete(ctx, propertyID); err != nil {
		logger.Error("Failed to delete property", err, nil)
		return err
	}
	logger.Info("Property deleted", nil)
	return nil
}

func (uc *PropertyAdminUseCase) Get(ctx context.Context, propertyID int64) (*domain.Property, error) {
	return uc.storage.GetByID(ctx, propertyID)
}

func (uc *PropertyAdminUseCase) List(ctx context.Context, limit, offset int) ([]domain.Property, int, error) {
	return uc.storage.List(ctx, limit, offset)
}

func (uc *PropertyAdminUseCase) BulkSetStatus(ctx context.Context, ids []int64, status domain.PropertyStatus) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "PropertyAdmin.BulkSetStatus",
		"status":   status,
		"selected": len(ids),
	})
	if _, known := domain.PropertyStatusLabels[status]; !known {
		return 0, domain.ErrInvalidInput
	}
	affected, err := uc.storage.BulkUpdateStatus(ctx, ids, status)
	if err != nil {
		logger.Error("Bulk status update failed", err, nil)
		return 0, err
	}
	if err := uc.publisher.PublishBulkAction(ctx, "properties_status_"+string(status), affected); err != nil {
		logger.Warn("Failed to publish bulk action event", port.Fields{"error": err.Error()})
	}
	logger.Info("Bulk status update finished", port.Fields{"affected": affected})
	return affected, nil
}

func (uc *PropertyAdminUseCase) SavePrice(ctx context.Context, price *domain.Price) (*domain.Price, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "PropertyAdmin.SavePrice",
		"property_id": price.PropertyID,
		"purpose":     price.Purpose,
	})
	if _, known := domain.PurposeLabels[price.Purpose]; !known {
		return nil, domain.ErrInvalidInput
	}
	saved, err := uc.storage.SavePrice(ctx, price)
	if err != nil {
		logger.Error("Failed to save price", err, nil)
		return nil, err
	}
	logger.Info("Price saved", port.Fields{"price_id": saved.ID})
	return saved, nil
}

func (uc *PropertyAdminUseCase) DeletePrice(ctx context.Context, priceID int64) error {
	return uc.storage.DeletePrice(ctx, priceID)
}

func (uc *PropertyAdminUseCase) SavePhoto(ctx context.Context, photo *domain.Photo) (*domain.Photo, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "PropertyAdmin.SavePhoto",
		"property_id": photo.PropertyID,
		"is_cover":    photo.IsCover,
	})
	if strings.TrimSpace(photo.ImagePath) == "" {
		return nil, domain.ErrInvalidInput
	}
	saved, err := uc.storage.SavePhoto(ctx, photo)
	if err != nil {
		logger.Error("Failed to save photo", err, nil)
		return nil, err
	}
	logger.Info("Photo saved", port.Fields{"photo_id": saved.ID})
	return saved, nil
}

func (uc *PropertyAdminUseCase) DeletePhoto(ctx context.Context, photoID int64) error {
	return uc.storage.DeletePhoto(ctx, photoID)
}
