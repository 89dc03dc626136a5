package notification

import "time"

// Type distinguishes what raised the notification.
type Type string

const (
	TypeInventory Type = "Inventory"
	TypeRisk      Type = "Risk"
)

// Status tracks whether a user has acted on the notification.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusResolved Status = "Resolved"
)

// Notification is an alert raised by a stock-threshold crossing, a
// high-priority order, or a high-severity risk.
type Notification struct {
	NotificationID int64     `json:"notification_id"`
	Type           Type      `json:"type"`
	Message        string    `json:"message"`
	Status         Status    `json:"status"`
	PartID         *int64    `json:"part_id"`
	RiskID         *int64    `json:"risk_id"`
	CreatedAt      time.Time `json:"created_at"`
}
