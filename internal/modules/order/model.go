package order

import "time"

// OrderStatus represents the lifecycle state of a part order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

// Priority indicates how urgently the ordered parts are needed.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

// PartOrder is a request for units of a part. A Pending order has already
// taken its quantity out of the part's stock; cancellation puts it back.
type PartOrder struct {
	OrderID     int64       `json:"order_id"`
	PartID      int64       `json:"part_id"`
	Quantity    int         `json:"quantity"`
	OrderedBy   int64       `json:"ordered_by"`
	Priority    Priority    `json:"priority"`
	Status      OrderStatus `json:"status"`
	Reference   string      `json:"reference"`
	CreatedAt   time.Time   `json:"created_at"`
	DeliveredAt *time.Time  `json:"delivered_at,omitempty"`

	// Denormalized display fields, populated on reads that join parts/users.
	PartName  string `json:"part_name,omitempty"`
	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
}

// CreateOrderRequest is the payload for placing an order. OrderedBy is filled
// from the authenticated identity by the handler, never from the client body.
type CreateOrderRequest struct {
	PartID    int64  `json:"part_id"`
	Quantity  int    `json:"quantity"`
	Priority  string `json:"priority"`
	OrderedBy int64  `json:"-"`
}

// CreateOrderResult is the outcome of placing an order.
type CreateOrderResult struct {
	Order               *PartOrder `json:"order"`
	InventoryUpdated    bool       `json:"inventoryUpdated"`
	NotificationCreated bool       `json:"notificationCreated"`
	NewStockLevel       int        `json:"newStockLevel"`
}

// CancelOrderResult is the outcome of cancelling an order.
type CancelOrderResult struct {
	UpdatedOrder      *PartOrder `json:"updatedOrder"`
	InventoryRestored bool       `json:"inventoryRestored"`
}

// CompleteOrderResult is the outcome of completing an order.
type CompleteOrderResult struct {
	UpdatedOrder *PartOrder `json:"updatedOrder"`
}
