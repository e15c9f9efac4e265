package pubsub

import (
	"strconv"

	"addressbook/internal/domain/service"
)

// eventAttributes builds the message attributes subscribers filter on.
func eventAttributes(event *service.DirectoryEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.ID,
		"event_type": string(event.Type),
		"address_id": strconv.FormatInt(event.AddressID, 10),
	}
	if event.UserID != 0 {
		attributes["user_id"] = strconv.FormatInt(event.UserID, 10)
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
