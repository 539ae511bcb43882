package usecase

import (
	"context"
	"testing"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPropertyDetails(t *testing.T) {
	property := &domain.Property{
		ID:           5,
		Title:        "Apartamento no Centro",
		Street:       "Rua XV de Novembro",
		Neighborhood: "Centro",
		City:         "Curitiba",
		Type:         domain.TypeApartment,
	}

	var requestedLimit int
	storage := &fakePropertyStorage{
		getActiveDetailsFn: func(_ context.Context, propertyID int64) (*domain.Property, error) {
			assert.Equal(t, int64(5), propertyID)
			return property, nil
		},
		getSimilarFn: func(_ context.Context, ref *domain.Property, limit int) ([]domain.Property, error) {
			assert.Equal(t, property, ref)
			requestedLimit = limit
			return []domain.Property{{ID: 8}, {ID: 9}}, nil
		},
	}
	uc := NewGetPropertyDetailsUseCase(storage)

	details, err := uc.Execute(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, int64(5), details.Property.ID)
	assert.Len(t, details.Similar, 2)
	assert.Equal(t, 4, requestedLimit)
	assert.Equal(t,
		"Olá! Tenho interesse no imóvel: Apartamento no Centro - Rua XV de Novembro, Centro, Curitiba",
		details.WhatsAppMessage)
}

func TestGetPropertyDetailsNotFound(t *testing.T) {
	storage := &fakePropertyStorage{
		getActiveDetailsFn: func(_ context.Context, _ int64) (*domain.Property, error) {
			return nil, domain.ErrNotFound
		},
	}
	uc := NewGetPropertyDetailsUseCase(storage)

	_, err := uc.Execute(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
