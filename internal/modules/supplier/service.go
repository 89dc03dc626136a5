package supplier

import (
	"context"
	"errors"
)

// Service defines supplier management business logic.
type Service interface {
	CreateSupplier(ctx context.Context, req UpsertSupplierRequest) (*Supplier, error)
	GetSupplier(ctx context.Context, id int64) (*Supplier, error)
	ListSuppliers(ctx context.Context) ([]*Supplier, error)
	UpdateSupplier(ctx context.Context, id int64, req UpsertSupplierRequest) (*Supplier, error)
	DeleteSupplier(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

// NewService creates a new supplier service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateSupplier(ctx context.Context, req UpsertSupplierRequest) (*Supplier, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	sup := &Supplier{
		Name:              req.Name,
		ContactEmail:      req.ContactEmail,
		ContactPhone:      req.ContactPhone,
		PerformanceRating: req.PerformanceRating,
		LeadTimeDays:      req.LeadTimeDays,
	}
	if err := s.repo.CreateSupplier(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *service) GetSupplier(ctx context.Context, id int64) (*Supplier, error) {
	return s.repo.GetSupplierByID(ctx, id)
}

func (s *service) ListSuppliers(ctx context.Context) ([]*Supplier, error) {
	return s.repo.ListSuppliers(ctx)
}

func (s *service) UpdateSupplier(ctx context.Context, id int64, req UpsertSupplierRequest) (*Supplier, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	sup := &Supplier{
		SupplierID:        id,
		Name:              req.Name,
		ContactEmail:      req.ContactEmail,
		ContactPhone:      req.ContactPhone,
		PerformanceRating: req.PerformanceRating,
		LeadTimeDays:      req.LeadTimeDays,
	}
	if err := s.repo.UpdateSupplier(ctx, sup); err != nil {
		return nil, err
	}
	return sup, nil
}

func (s *service) DeleteSupplier(ctx context.Context, id int64) error {
	return s.repo.DeleteSupplier(ctx, id)
}
