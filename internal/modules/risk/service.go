package risk

import (
	"context"
	"errors"
)

var (
	// ErrInvalidInput is returned for malformed risk requests.
	ErrInvalidInput = errors.New("risk_type, severity and likelihood are required")
	// ErrInvalidSeverity is returned for an unknown severity value.
	ErrInvalidSeverity = errors.New("invalid severity")
	// ErrInvalidStatus is returned for an unknown risk status value.
	ErrInvalidStatus = errors.New("invalid risk status")
)

// Service defines risk management business logic.
type Service interface {
	// CreateRisk registers a risk; High severity raises a Risk notification
	// in the same transaction.
	CreateRisk(ctx context.Context, req CreateRiskRequest) (*CreateRiskResult, error)
	GetRisk(ctx context.Context, id int64) (*Risk, error)
	ListRisks(ctx context.Context) ([]*Risk, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (*Risk, error)
	DeleteRisk(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

// NewService creates a new risk service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateRisk(ctx context.Context, req CreateRiskRequest) (*CreateRiskResult, error) {
	if req.RiskType == "" || req.Likelihood <= 0 {
		return nil, ErrInvalidInput
	}
	severity, err := parseSeverity(req.Severity)
	if err != nil {
		return nil, err
	}
	status := StatusOpen
	if req.Status != "" {
		status, err = parseStatus(req.Status)
		if err != nil {
			return nil, err
		}
	}

	rk := &Risk{
		PartID:         req.PartID,
		RiskType:       req.RiskType,
		Description:    req.Description,
		Severity:       severity,
		Likelihood:     req.Likelihood,
		Impact:         req.Impact,
		MitigationPlan: req.MitigationPlan,
		Status:         status,
	}
	notified, err := s.repo.CreateRisk(ctx, rk)
	if err != nil {
		return nil, err
	}
	return &CreateRiskResult{Risk: rk, NotificationCreated: notified}, nil
}

func (s *service) GetRisk(ctx context.Context, id int64) (*Risk, error) {
	return s.repo.GetRiskByID(ctx, id)
}

func (s *service) ListRisks(ctx context.Context) ([]*Risk, error) {
	return s.repo.ListRisks(ctx)
}

func (s *service) UpdateStatus(ctx context.Context, req UpdateStatusRequest) (*Risk, error) {
	if req.RiskID <= 0 {
		return nil, ErrRiskNotFound
	}
	status, err := parseStatus(req.Status)
	if err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, req.RiskID, status)
}

func (s *service) DeleteRisk(ctx context.Context, id int64) error {
	return s.repo.DeleteRisk(ctx, id)
}

func parseSeverity(raw string) (Severity, error) {
	switch Severity(raw) {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return Severity(raw), nil
	}
	return "", ErrInvalidSeverity
}

func parseStatus(raw string) (RiskStatus, error) {
	switch RiskStatus(raw) {
	case StatusOpen, StatusAcknowledged, StatusResolved:
		return RiskStatus(raw), nil
	}
	return "", ErrInvalidStatus
}
