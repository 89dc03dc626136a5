package order

import (
	"context"
	"errors"
)

var (
	// ErrOrderNotFound is returned when the referenced order does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrPartNotFound is returned when the ordered part does not exist.
	ErrPartNotFound = errors.New("part not found")
	// ErrUserNotFound is returned when the ordering user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserInactive is returned when the ordering user is deactivated.
	ErrUserInactive = errors.New("user is not active")
	// ErrInsufficientStock is returned when the requested quantity exceeds stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidTransition is returned for operations on terminal orders.
	ErrInvalidTransition = errors.New("invalid order state transition")
)

// Repository defines order data storage. The mutating methods each execute
// their full read-validate-write sequence as one atomic unit against the
// backing store, with the part row locked for the duration.
type Repository interface {
	// CreateOrder validates part, user, and stock under lock, inserts the
	// order as Pending, decrements stock, and records any triggered
	// notifications. notified reports whether at least one notification row
	// was written.
	CreateOrder(ctx context.Context, o *PartOrder) (newStockLevel int, notified bool, err error)

	// CancelOrder transitions a Pending order to Cancelled and restores its
	// quantity to stock. Cancelling an already-Cancelled order is a no-op;
	// cancelling a Completed order fails with ErrInvalidTransition.
	CancelOrder(ctx context.Context, orderID int64) (*PartOrder, bool, error)

	// CompleteOrder transitions a Pending order to Completed and stamps the
	// delivery time. Stock is untouched.
	CompleteOrder(ctx context.Context, orderID int64) (*PartOrder, error)

	GetOrderByID(ctx context.Context, orderID int64) (*PartOrder, error)
	ListOrders(ctx context.Context) ([]*PartOrder, error)
}
