package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RiqueAlvess/imobteste/internal/constants"
	"github.com/RiqueAlvess/imobteste/internal/contextkeys"
	"github.com/RiqueAlvess/imobteste/internal/contracts"
	"github.com/RiqueAlvess/imobteste/internal/core/domain"
	"github.com/RiqueAlvess/imobteste/internal/core/port"
	"github.com/RiqueAlvess/imobteste/pkg/rabbitmq/rabbitmq_producer"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// LeadRegisteredDTO is the wire shape of a lead-registered event.
type LeadRegisteredDTO struct {
	ClientID            int64   `json:"client_id"`
	FullName            string  `json:"full_name"`
	Phone               string  `json:"phone"`
	Status              string  `json:"status"`
	Origin              string  `json:"origin"`
	InterestPropertyIDs []int64 `json:"interest_property_ids,omitempty"`
	RegisteredAt        string  `json:"registered_at"`
}

type BulkActionDTO struct {
	Action    string `json:"action"`
	Affected  int64  `json:"affected"`
	AppliedAt string `json:"applied_at"`
}

// EventPublisherAdapter implements EventPublisherPort over the shared
// RabbitMQ publisher. Every outgoing payload is checked against its
// JSON schema before hitting the broker.
type EventPublisherAdapter struct {
	producer *rabbitmq_producer.Publisher
}

func NewEventPublisherAdapter(producer *rabbitmq_producer.Publisher) (*EventPublisherAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &EventPublisherAdapter{producer: producer}, nil
}

func (a *EventPublisherAdapter) publish(ctx context.Context, routingKey, eventType string, body []byte) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "EventPublisherAdapter",
		"routing_key": routingKey,
	})

	if err := contracts.ValidateEvent(eventType, "1.0.0", body); err != nil {
		adapterLogger.Error("Event failed schema validation, not publishing", err, nil)
		return fmt.Errorf("rabbitmq adapter: event '%s' failed validation: %w", eventType, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Type:         eventType,
		Headers:      make(amqp.Table),
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish '%s': %w", eventType, err)
	}

	adapterLogger.Debug("Event published", port.Fields{"event_type": eventType})
	return nil
}

func (a *EventPublisherAdapter) PublishLeadRegistered(ctx context.Context, client *domain.Client) error {
	body, err := json.Marshal(LeadRegisteredDTO{
		ClientID:            client.ID,
		FullName:            client.FullName,
		Phone:               client.Phone,
		Status:              string(client.Status),
		Origin:              string(client.Origin),
		InterestPropertyIDs: client.InterestPropertyIDs,
		RegisteredAt:        client.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal lead event: %w", err)
	}
	return a.publish(ctx, constants.RoutingKeyLeadRegistered, "LeadRegisteredEvent", body)
}

func (a *EventPublisherAdapter) PublishBulkAction(ctx context.Context, action string, affected int64) error {
	body, err := json.Marshal(BulkActionDTO{
		Action:    action,
		Affected:  affected,
		AppliedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal bulk action event: %w", err)
	}
	return a.publish(ctx, constants.RoutingKeyBulkAction, "BulkActionAppliedEvent", body)
}

func (a *EventPublisherAdapter) Close() error {
	return a.producer.Close()
}
