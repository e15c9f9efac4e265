// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "addressbook/internal/delivery/context"
	"addressbook/internal/domain/service"

	"github.com/google/uuid"
)

// eventEmitter publishes directory events after a change is committed.
// Failures are logged and swallowed: the change itself already succeeded.
type eventEmitter struct {
	publisher service.EventPublisher
	now       func() time.Time
}

func newEventEmitter(publisher service.EventPublisher) *eventEmitter {
	return &eventEmitter{publisher: publisher, now: time.Now}
}

func (e *eventEmitter) emit(ctx context.Context, logger *slog.Logger, eventType service.DirectoryEventType, addressID, userID int64) {
	if e == nil || e.publisher == nil {
		return
	}

	event := &service.DirectoryEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		AddressID:  addressID,
		UserID:     userID,
		OccurredAt: e.now().UTC(),
	}

	if err := e.publisher.PublishDirectoryEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish directory event",
			slog.String("event_type", string(eventType)),
			slog.Int64("address_id", addressID),
			slog.Any("error", err),
		)
	}
}
