package usecases_port

import (
	"context"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"
)

type GetHomePageUseCase interface {
	Execute(ctx context.Context) (*domain.HomePage, error)
}

type FindPropertiesUseCase interface {
	Execute(ctx context.Context, filters domain.SearchFilters, page int) (*domain.PaginatedProperties, error)
}

type GetPropertyDetailsUseCase interface {
	Execute(ctx context.Context, propertyID int64) (*domain.PropertyDetails, error)
}

type RegisterLeadUseCase interface {
	Execute(ctx context.Context, submission domain.LeadSubmission) (*domain.Client, error)
}
