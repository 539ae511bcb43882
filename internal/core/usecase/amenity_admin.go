package usecase

import (
	"context"
	"strings"

	"github.com/RiqueAlvess/imobteste/internal/contextkeys"
	"github.com/RiqueAlvess/imobteste/internal/core/domain"
	"github.com/RiqueAlvess/imobteste/internal/core/port"
)

type AmenityAdminUseCase struct {
	storage port.AmenityStoragePort
}

func NewAmenityAdminUseCase(storage port.AmenityStoragePort) *AmenityAdminUseCase {
	return &AmenityAdminUseCase{storage: storage}
}

func (uc *AmenityAdminUseCase) Create(ctx context.Context, a *domain.Amenity) (*domain.Amenity, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "AmenityAdmin.Create"})
	if strings.TrimSpace(a.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	created, err := uc.storage.Create(ctx, a)
	if err != nil {
		logger.Error("Failed to create amenity", err, nil)
		return nil, err
	}
	return created, nil
}

func (uc *AmenityAdminUseCase) Update(ctx context.Context, a *domain.Amenity) (*domain.Amenity, error) {
	if strings.TrimSpace(a.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.storage.Update(ctx, a)
}

func (uc *AmenityAdminUseCase) Delete(ctx context.Context, amenityID int64) error {
	return uc.storage.Delete(ctx, amenityID)
}

func (uc *AmenityAdminUseCase) List(ctx context.Context) ([]domain.Amenity, error) {
	return uc.storage.List(ctx)
}
