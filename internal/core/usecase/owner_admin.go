package usecase

import (
	"context"
	"strings"

	"github.com/RiqueAlvess/imobteste/internal/contextkeys"
	"github.com/RiqueAlvess/imobteste/internal/core/domain"
	"github.com/RiqueAlvess/imobteste/internal/core/port"

	"github.com/google/uuid"
)

type OwnerAdminUseCase struct {
	storage port.OwnerStoragePort
}

func NewOwnerAdminUseCase(storage port.OwnerStoragePort) *OwnerAdminUseCase {
	return &OwnerAdminUseCase{storage: storage}
}

func validateOwner(o *domain.Owner) error {
	if len(strings.TrimSpace(o.FullName)) < 3 {
		return domain.ErrInvalidInput
	}
	if !strings.Contains(o.Email, "@") {
		return domain.ErrInvalidInput
	}
	return nil
}

func (uc *OwnerAdminUseCase) Create(ctx context.Context, o *domain.Owner) (*domain.Owner, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "OwnerAdmin.Create"})
	if err := validateOwner(o); err != nil {
		return nil, err
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	created, err := uc.storage.Create(ctx, o)
	if err != nil {
		logger.Error("Failed to create owner", err, nil)
		return nil, err
	}
	logger.Info("Owner created", port.Fields{"owner_id": created.ID.String()})
	return created, nil
}

func (uc *OwnerAdminUseCase) Update(ctx context.Context, o *domain.Owner) (*domain.Owner, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "OwnerAdmin.Update",
		"owner_id": o.ID.String(),
	})
	if err := validateOwner(o); err != nil {
		return nil, err
	}
	updated, err := uc.storage.Update(ctx, o)
	if err != nil {
		logger.Error("Failed to update owner", err, nil)
		return nil, err
	}
	return updated, nil
}

// Delete removes the owner; the database cascades to every property the
// owner has, and from there to prices and photos.
func (uc *OwnerAdminUseCase) Delete(ctx context.Context, ownerID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "OwnerAdmin.Delete",
		"owner_id": ownerID.String(),
	})
	if err := uc.storage.Delete(ctx, ownerID); err != nil {
		logger.Error("Failed to delete owner", err, nil)
		return err
	}
	logger.Info("Owner deleted (properties cascaded)", nil)
	return nil
}

func (uc *OwnerAdminUseCase) Get(ctx context.Context, ownerID uuid.UUID) (*domain.Owner, error) {
	return uc.storage.GetByID(ctx, ownerID)
}

func (uc *OwnerAdminUseCase) List(ctx context.Context, limit, offset int) ([]domain.Owner, int, error) {
	return uc.storage.List(ctx, limit, offset)
}
