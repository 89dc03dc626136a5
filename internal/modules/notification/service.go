package notification

import (
	"context"
	"errors"
)

// Service defines notification business logic.
type Service interface {
	// Record persists a new Pending notification.
	Record(ctx context.Context, typ Type, message string, partID, riskID *int64) (*Notification, error)
	List(ctx context.Context) ([]*Notification, error)
	Resolve(ctx context.Context, notificationID int64) error
}

type service struct {
	repo Repository
}

// NewService creates a new notification service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Record(ctx context.Context, typ Type, message string, partID, riskID *int64) (*Notification, error) {
	if message == "" {
		return nil, errors.New("message is required")
	}
	n := &Notification{
		Type:    typ,
		Message: message,
		Status:  StatusPending,
		PartID:  partID,
		RiskID:  riskID,
	}
	if err := s.repo.Record(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *service) List(ctx context.Context) ([]*Notification, error) {
	return s.repo.List(ctx)
}

func (s *service) Resolve(ctx context.Context, notificationID int64) error {
	if notificationID <= 0 {
		return ErrNotificationNotFound
	}
	return s.repo.Resolve(ctx, notificationID)
}
