package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/RiqueAlvess/imobteste/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLeadDefaults(t *testing.T) {
	var stored *domain.Client
	clients := &fakeClientStorage{
		createFn: func(_ context.Context, c *domain.Client) (*domain.Client, error) {
			stored = c
			created := *c
			created.ID = 42
			return &created, nil
		},
	}
	publisher := &fakePublisher{}
	uc := NewRegisterLeadUseCase(clients, publisher)

	propertyID := int64(7)
	created, err := uc.Execute(context.Background(), domain.LeadSubmission{
		FullName:        "  Maria Souza  ",
		Phone:           "41999990000",
		InterestPurpose: "venda",
		PropertyID:      &propertyID,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "Maria Souza", stored.FullName)
	assert.Equal(t, domain.ClientColdLead, stored.Status)
	// Unknown or empty origin falls back to the site origin
	assert.Equal(t, domain.OriginSite, stored.Origin)
	assert.Equal(t, []int64{7}, stored.InterestPropertyIDs)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, int64(42), publisher.published[0].ID)
}

func TestRegisterLeadKeepsKnownOrigin(t *testing.T) {
	clients := &fakeClientStorage{
		createFn: func(_ context.Context, c *domain.Client) (*domain.Client, error) {
			return c, nil
		},
	}
	uc := NewRegisterLeadUseCase(clients, &fakePublisher{})

	created, err := uc.Execute(context.Background(), domain.LeadSubmission{
		FullName: "João Pereira",
		Phone:    "41988887777",
		Origin:   domain.OriginInstagram,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OriginInstagram, created.Origin)
}

func TestRegisterLeadRejectsShortName(t *testing.T) {
	uc := NewRegisterLeadUseCase(&fakeClientStorage{}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), domain.LeadSubmission{
		FullName: " ab ",
		Phone:    "41988887777",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterLeadStorageFailure(t *testing.T) {
	storageErr := errors.New("connection reset")
	clients := &fakeClientStorage{
		createFn: func(_ context.Context, _ *domain.Client) (*domain.Client, error) {
			return nil, storageErr
		},
	}
	publisher := &fakePublisher{}
	uc := NewRegisterLeadUseCase(clients, publisher)

	_, err := uc.Execute(context.Background(), domain.LeadSubmission{
		FullName: "Maria Souza",
		Phone:    "41999990000",
	})

	assert.ErrorIs(t, err, storageErr)
	assert.Empty(t, publisher.published)
}

func TestRegisterLeadPublishFailureDoesNotFailSubmission(t *testing.T) {
	clients := &fakeClientStorage{
		createFn: func(_ context.Context, c *domain.Client) (*domain.Client, error) {
			return c, nil
		},
	}
	publisher := &fakePublisher{err: errors.New("broker down")}
	uc := NewRegisterLeadUseCase(clients, publisher)

	created, err := uc.Execute(context.Background(), domain.LeadSubmission{
		FullName: "Maria Souza",
		Phone:    "41999990000",
	})

	// Events are best-effort; the lead is stored regardless
	require.NoError(t, err)
	assert.NotNil(t, created)
}
