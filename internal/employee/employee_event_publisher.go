package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"

	"hris-audit/internal/events"
	"hris-audit/internal/messaging/kafka"

	"github.com/google/uuid"
)

// EventPublisher enqueues domain events inside the caller's transaction, so an
// event exists if and only if the change it describes was committed.
type EventPublisher interface {
	PublishSalaryChanged(ctx context.Context, tx *sql.Tx, event events.SalaryChangedEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishSalaryChanged(context.Context, *sql.Tx, events.SalaryChangedEvent) error {
	return nil
}

type outboxEventPublisher struct {
	outbox kafka.OutboxRepository
}

func NewOutboxEventPublisher(outbox kafka.OutboxRepository) EventPublisher {
	return &outboxEventPublisher{outbox: outbox}
}

func (p *outboxEventPublisher) PublishSalaryChanged(
	ctx context.Context,
	tx *sql.Tx,
	event events.SalaryChangedEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: "employee",
		AggregateID:   strconv.FormatInt(event.EmployeeID, 10),
		EventType:     event.EventType,
		Topic:         events.SalaryChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}
