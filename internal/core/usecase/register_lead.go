package usecase

import (
	"context"
	"strings"

	"github.com/RiqueAlvess/imobteste/internal/contextkeys"
	"github.com/RiqueAlvess/imobteste/internal/core/domain"
	"github.com/RiqueAlvess/imobteste/internal/core/port"
)

type RegisterLeadUseCase struct {
	clients   port.ClientStoragePort
	publisher port.EventPublisherPort
}

func NewRegisterLeadUseCase(clients port.ClientStoragePort, publisher port.EventPublisherPort) *RegisterLeadUseCase {
	return &RegisterLeadUseCase{clients: clients, publisher: publisher}
}

// Execute creates a cold lead from a public form submission and emits a
// lead-registered event. Event failures do not fail the submission.
func (uc *RegisterLeadUseCase) Execute(ctx context.Context, submission domain.LeadSubmission) (*domain.Client, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "RegisterLead"})
	ucLogger.Debug("Use case started", nil)

	if len(strings.TrimSpace(submission.FullName)) < 3 {
		return nil, domain.ErrInvalidInput
	}

	origin := submission.Origin
	if _, known := domain.ContactOriginLabels[origin]; !known {
		origin = domain.OriginSite
	}

	client := &domain.Client{
		FullName:        strings.TrimSpace(submission.FullName),
		Email:           strings.TrimSpace(submission.Email),
		Phone:           strings.TrimSpace(submission.Phone),
		Status:          domain.ClientColdLead,
		Origin:          origin,
		InterestPurpose: submission.InterestPurpose,
		MaxBudget:       submission.MaxBudget,
		Notes:           submission.Notes,
	}
	if submission.PropertyID != nil {
		client.InterestPropertyIDs = []int64{*submission.PropertyID}
	}

	created, err := uc.clients.Create(ctx, client)
	if err != nil {
		ucLogger.Error("Failed to store lead", err, nil)
		return nil, err
	}

	if err := uc.publisher.PublishLeadRegistered(ctx, created); err != nil {
		ucLogger.Warn("Failed to publish lead event", port.Fields{"error": err.Error()})
	}

	ucLogger.Info("Lead registered", port.Fields{"client_id": created.ID})
	return created, nil
}
