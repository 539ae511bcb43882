package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/RiqueAlvess/imobteste/internal/contextkeys"
	"github.com/RiqueAlvess/imobteste/internal/core/domain"
	"github.com/RiqueAlvess/imobteste/internal/core/port"
)

type ClientAdminUseCase struct {
	storage   port.ClientStoragePort
	publisher port.EventPublisherPort
}

func NewClientAdminUseCase(storage port.ClientStoragePort, publisher port.EventPublisherPort) *ClientAdminUseCase {
	return &ClientAdminUseCase{storage: storage, publisher: publisher}
}

func validateClient(c *domain.Client) error {
	if len(strings.TrimSpace(c.FullName)) < 3 {
		return domain.ErrInvalidInput
	}
	if strings.TrimSpace(c.Phone) == "" {
		return domain.ErrInvalidInput
	}
	if c.Status == "" {
		c.Status = domain.ClientColdLead
	}
	if c.Origin == "" {
		c.Origin = domain.OriginSite
	}
	return nil
}

func (uc *ClientAdminUseCase) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "ClientAdmin.Create"})
	if err := validateClient(c); err != nil {
		return nil, err
	}
	created, err := uc.storage.Create(ctx, c)
	if err != nil {
		logger.Error("Failed to create client", err, nil)
		return nil, err
	}
	logger.Info("Client created", port.Fields{"client_id": created.ID})
	return created, nil
}

func (uc *ClientAdminUseCase) Update(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":  "ClientAdmin.Update",
		"client_id": c.ID,
	})
	if err := validateClient(c); err != nil {
		return nil, err
	}
	updated, err := uc.storage.Update(ctx, c)
	if err != nil {
		logger.Error("Failed to update client", err, nil)
		return nil, err
	}
	return updated, nil
}

func (uc *ClientAdminUseCase) Delete(ctx context.Context, clientID int64) error {
	return uc.storage.Delete(ctx, clientID)
}

func (uc *ClientAdminUseCase) Get(ctx context.Context, clientID int64) (*domain.Client, error) {
	return uc.storage.GetByID(ctx, clientID)
}

func (uc *ClientAdminUseCase) List(ctx context.Context, limit, offset int) ([]domain.Client, int, error) {
	return uc.storage.List(ctx, limit, offset)
}

func (uc *ClientAdminUseCase) BulkSetStatus(ctx context.Context, ids []int64, status domain.ClientStatus) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ClientAdmin.BulkSetStatus",
		"status":   status,
		"selected": len(ids),
	})
	if _, known := domain.ClientStatusLabels[status]; !known {
		return 0, domain.ErrInvalidInput
	}
	affected, err := uc.storage.BulkUpdateStatus(ctx, ids, status)
	if err != nil {
		logger.Error("Bulk status update failed", err, nil)
		return 0, err
	}
	if err := uc.publisher.PublishBulkAction(ctx, "clients_status_"+string(status), affected); err != nil {
		logger.Warn("Failed to publish bulk action event", port.Fields{"error": err.Error()})
	}
	logger.Info("Bulk status update finished", port.Fields{"affected": affected})
	return affected, nil
}

func (uc *ClientAdminUseCase) BulkTouchContact(ctx context.Context, ids []int64, at time.Time) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ClientAdmin.BulkTouchContact",
		"selected": len(ids),
	})
	affected, err := uc.storage.BulkTouchLastContact(ctx, ids, at)
	if err != nil {
		logger.Error("Bulk last-contact refresh failed", err, nil)
		return 0, err
	}
	if err := uc.publisher.PublishBulkAction(ctx, "clients_touch_contact", affected); err != nil {
		logger.Warn("Failed to publish bulk action event", port.Fields{"error": err.Error()})
	}
	logger.Info("Bulk last-contact refresh finished", port.Fields{"affected": affected})
	return affected, nil
}
