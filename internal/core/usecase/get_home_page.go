package usecase

import (
	"context"

	"github.com/RiqueAlvess/imobteste/internal/contextkeys"
	"github.com/RiqueAlvess/imobteste/internal/core/domain"
	"github.com/RiqueAlvess/imobteste/internal/core/port"
)

// featuredLimit is how many recent active properties the dashboard shows.
const featuredLimit = 6

type GetHomePageUseCase struct {
	storage port.PropertyStoragePort
}

func NewGetHomePageUseCase(storage port.PropertyStoragePort) *GetHomePageUseCase {
	return &GetHomePageUseCase{storage: storage}
}

func (uc *GetHomePageUseCase) Execute(ctx context.Context) (*domain.HomePage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetHomePage"})
	ucLogger.Debug("Use case started", nil)

	featured, err := uc.storage.GetFeatured(ctx, featuredLimit)
	if err != nil {
		ucLogger.Error("Failed to load featured properties", err, nil)
		return nil, err
	}

	cities, err := uc.storage.GetDistinctCities(ctx)
	if err != nil {
		ucLogger.Error("Failed to load distinct cities", err, nil)
		return nil, err
	}

	types := make([]domain.DictionaryItem, 0, len(domain.PropertyTypes))
	for _, t := range domain.PropertyTypes {
		types = append(types, domain.DictionaryItem{
			SystemName:  string(t),
			DisplayName: domain.PropertyTypeLabels[t],
		})
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"featured": len(featured),
		"cities":   len(cities),
	})
	return &domain.HomePage{Featured: featured, Cities: cities, Types: types}, nil
}
