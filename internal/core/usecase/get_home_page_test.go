package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHomePage(t *testing.T) {
	var requestedLimit int
	storage := &fakePropertyStorage{
		getFeaturedFn: func(_ context.Context, limit int) ([]domain.Property, error) {
			requestedLimit = limit
			return []domain.Property{{ID: 1}, {ID: 2}}, nil
		},
		getDistinctCitiesFn: func(_ context.Context) ([]string, error) {
			return []string{"Curitiba", "Londrina"}, nil
		},
	}
	uc := NewGetHomePageUseCase(storage)

	page, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 6, requestedLimit)
	assert.Len(t, page.Featured, 2)
	assert.Equal(t, []string{"Curitiba", "Londrina"}, page.Cities)

	// The type dictionary mirrors the enum with its display labels
	require.Len(t, page.Types, len(domain.PropertyTypes))
	assert.Equal(t, string(domain.PropertyTypes[0]), page.Types[0].SystemName)
	assert.Equal(t, domain.PropertyTypeLabels[domain.PropertyTypes[0]], page.Types[0].DisplayName)
}

func TestGetHomePageStorageFailure(t *testing.T) {
	storageErr := errors.New("timeout")
	storage := &fakePropertyStorage{
		getFeaturedFn: func(_ context.Context, _ int) ([]domain.Property, error) {
			return nil, storageErr
		},
	}
	uc := NewGetHomePageUseCase(storage)

	_, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, storageErr)
}

func TestFindPropertiesPassesThrough(t *testing.T) {
	expected := &domain.PaginatedProperties{
		Properties:  []domain.Property{{ID: 3}},
		TotalCount:  13,
		CurrentPage: 2,
		TotalPages:  2,
		PerPage:     domain.PageSize,
	}
	storage := &fakePropertyStorage{
		findWithFiltersFn: func(_ context.Context, filters domain.SearchFilters, page int) (*domain.PaginatedProperties, error) {
			assert.Equal(t, "Curitiba", filters.City)
			assert.Equal(t, 2, page)
			return expected, nil
		},
	}
	uc := NewFindPropertiesUseCase(storage)

	result, err := uc.Execute(context.Background(), domain.SearchFilters{City: "Curitiba"}, 2)

	require.NoError(t, err)
	assert.Equal(t, expected, result)
}
