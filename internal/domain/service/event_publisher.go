// Package service declares the outbound ports the use cases depend on.
package service

import (
	"context"
	"time"
)

// DirectoryEventType names a change to the address directory.
type DirectoryEventType string

const (
	EventAddressCreated DirectoryEventType = "address.created"
	EventAddressUpdated DirectoryEventType = "address.updated"
	EventAddressDeleted DirectoryEventType = "address.deleted"
	EventUserCreated    DirectoryEventType = "user.created"
	EventUserUpdated    DirectoryEventType = "user.updated"
	EventUserDeleted    DirectoryEventType = "user.deleted"
)

// DirectoryEvent describes one committed change to an address or a user.
type DirectoryEvent struct {
	ID         string             `json:"id"`
	Type       DirectoryEventType `json:"type"`
	RequestID  string             `json:"request_id,omitempty"` // For distributed tracing
	AddressID  int64              `json:"address_id"`
	UserID     int64              `json:"user_id,omitempty"`
	OccurredAt time.Time          `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing directory events to a message queue
type EventPublisher interface {
	// PublishDirectoryEvent publishes a change event after the change is committed
	PublishDirectoryEvent(ctx context.Context, event *DirectoryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
