package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidQuantity is returned when the requested quantity is below 1.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrInvalidPriority is returned for an unknown priority value.
	ErrInvalidPriority = errors.New("invalid priority")
)

// Service defines the order lifecycle business logic. It is the sole writer
// of order-driven stock changes: every mutation couples the order transition
// and the stock effect in a single atomic unit.
type Service interface {
	// CreateOrder places a Pending order, decrementing the part's stock by
	// the ordered quantity and recording threshold and priority alerts.
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResult, error)

	// CancelOrder moves a Pending order to Cancelled, restoring its quantity
	// to stock exactly once. Cancelling twice is a no-op on stock.
	CancelOrder(ctx context.Context, orderID int64) (*CancelOrderResult, error)

	// CompleteOrder moves a Pending order to Completed. No stock effect.
	CompleteOrder(ctx context.Context, orderID int64) (*CompleteOrderResult, error)

	GetOrder(ctx context.Context, orderID int64) (*PartOrder, error)
	ListOrders(ctx context.Context) ([]*PartOrder, error)
}

type service struct {
	repo Repository
}

// NewService creates a new order service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResult, error) {
	if req.PartID <= 0 {
		return nil, ErrPartNotFound
	}
	if req.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if req.OrderedBy <= 0 {
		return nil, ErrUserNotFound
	}
	priority, err := parsePriority(req.Priority)
	if err != nil {
		return nil, err
	}

	o := &PartOrder{
		PartID:    req.PartID,
		Quantity:  req.Quantity,
		OrderedBy: req.OrderedBy,
		Priority:  priority,
		Reference: generateReference(),
	}
	newLevel, notified, err := s.repo.CreateOrder(ctx, o)
	if err != nil {
		return nil, err
	}
	return &CreateOrderResult{
		Order:               o,
		InventoryUpdated:    true,
		NotificationCreated: notified,
		NewStockLevel:       newLevel,
	}, nil
}

func (s *service) CancelOrder(ctx context.Context, orderID int64) (*CancelOrderResult, error) {
	if orderID <= 0 {
		return nil, ErrOrderNotFound
	}
	updated, restored, err := s.repo.CancelOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &CancelOrderResult{UpdatedOrder: updated, InventoryRestored: restored}, nil
}

func (s *service) CompleteOrder(ctx context.Context, orderID int64) (*CompleteOrderResult, error) {
	if orderID <= 0 {
		return nil, ErrOrderNotFound
	}
	updated, err := s.repo.CompleteOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &CompleteOrderResult{UpdatedOrder: updated}, nil
}

func (s *service) GetOrder(ctx context.Context, orderID int64) (*PartOrder, error) {
	return s.repo.GetOrderByID(ctx, orderID)
}

func (s *service) ListOrders(ctx context.Context) ([]*PartOrder, error) {
	return s.repo.ListOrders(ctx)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func parsePriority(raw string) (Priority, error) {
	if raw == "" {
		return PriorityMedium, nil
	}
	switch strings.ToLower(raw) {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	case "urgent":
		return PriorityUrgent, nil
	}
	return "", ErrInvalidPriority
}

// generateReference creates a human-readable order reference: ORD-YYYYMMDD-XXXX.
func generateReference() string {
	date := time.Now().UTC().Format("20060102")
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("ORD-%s-%s", date, suffix)
}
