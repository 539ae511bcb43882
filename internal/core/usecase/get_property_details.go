package usecase

import (
	"context"
	"fmt"

	"github.com/RiqueAlvess/imobteste/internal/contextkeys"
	"github.com/RiqueAlvess/imobteste/internal/core/domain"
	"github.com/RiqueAlvess/imobteste/internal/core/port"
)

const similarLimit = 4

type GetPropertyDetailsUseCase struct {
	storage port.PropertyStoragePort
}

func NewGetPropertyDetailsUseCase(storage port.PropertyStoragePort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{storage: storage}
}

func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, propertyID int64) (*domain.PropertyDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyDetails",
		"property_id": propertyID,
	})
	ucLogger.Debug("Use case started", nil)

	property, err := uc.storage.GetActiveDetails(ctx, propertyID)
	if err != nil {
		ucLogger.Warn("Property lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	similar, err := uc.storage.GetSimilar(ctx, property, similarLimit)
	if err != nil {
		ucLogger.Error("Failed to load similar properties", err, nil)
		return nil, err
	}

	message := fmt.Sprintf("Olá! Tenho interesse no imóvel: %s - %s, %s, %s",
		property.Title, property.Street, property.Neighborhood, property.City)

	ucLogger.Info("Use case finished successfully", port.Fields{"similar": len(similar)})
	return &domain.PropertyDetails{
		Property:        *property,
		Similar:         similar,
		WhatsAppMessage: message,
	}, nil
}
