package inventory

import (
	"context"
	"errors"
)

// ErrInvalidInput is returned for malformed create/adjust requests.
var ErrInvalidInput = errors.New("invalid input")

// Service defines inventory business logic for parts and stock adjustments.
type Service interface {
	CreatePart(ctx context.Context, req CreatePartRequest) (*Part, error)
	GetPart(ctx context.Context, id int64) (*Part, error)
	ListParts(ctx context.Context) ([]*Part, error)

	// AdjustStock applies a signed delta to a part's stock level, refreshes
	// the derived status, and records an alert notification when the change
	// crosses a stock boundary downward.
	AdjustStock(ctx context.Context, req AdjustStockRequest) (*AdjustStockResult, error)
}

type service struct {
	repo Repository
}

// NewService creates a new inventory service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreatePart(ctx context.Context, req CreatePartRequest) (*Part, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}
	if req.StockLevel < 0 {
		return nil, errors.New("stock_level cannot be negative")
	}
	minThreshold := req.MinThreshold
	if minThreshold == 0 {
		minThreshold = criticalBoundary
	}
	maxThreshold := req.MaxThreshold
	if maxThreshold == 0 {
		maxThreshold = 100
	}
	p := &Part{
		Name:         req.Name,
		Type:         req.Type,
		Location:     req.Location,
		StockLevel:   req.StockLevel,
		MinThreshold: minThreshold,
		MaxThreshold: maxThreshold,
		SupplierID:   req.SupplierID,
		ImageURL:     req.ImageURL,
		Status:       ClassifyStock(req.StockLevel),
	}
	if err := s.repo.CreatePart(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetPart(ctx context.Context, id int64) (*Part, error) {
	return s.repo.GetPartByID(ctx, id)
}

func (s *service) ListParts(ctx context.Context) ([]*Part, error) {
	return s.repo.ListParts(ctx)
}

func (s *service) AdjustStock(ctx context.Context, req AdjustStockRequest) (*AdjustStockResult, error) {
	if req.PartID <= 0 {
		return nil, ErrInvalidInput
	}
	if req.Change == 0 {
		return nil, ErrInvalidInput
	}
	part, alert, err := s.repo.AdjustStock(ctx, req.PartID, req.Change)
	if err != nil {
		return nil, err
	}
	res := &AdjustStockResult{UpdatedPart: part}
	if alert != "" {
		res.Notification = &alert
	}
	return res, nil
}
