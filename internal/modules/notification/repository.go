package notification

import (
	"context"
	"errors"
)

// ErrNotificationNotFound is returned when the referenced notification does not exist.
var ErrNotificationNotFound = errors.New("notification not found")

// Repository defines notification data storage.
type Repository interface {
	Record(ctx context.Context, n *Notification) error
	List(ctx context.Context) ([]*Notification, error)
	// Resolve marks a notification Resolved. Resolving an already-Resolved
	// notification is a no-op, not an error.
	Resolve(ctx context.Context, notificationID int64) error
}
