package risk

import (
	"context"
	"errors"
)

// ErrRiskNotFound is returned when the referenced risk does not exist.
var ErrRiskNotFound = errors.New("risk not found")

// Repository defines risk data storage. CreateRisk writes the risk and, for
// High severity, its notification in one atomic unit.
type Repository interface {
	CreateRisk(ctx context.Context, rk *Risk) (notified bool, err error)
	GetRiskByID(ctx context.Context, id int64) (*Risk, error)
	ListRisks(ctx context.Context) ([]*Risk, error)
	UpdateStatus(ctx context.Context, id int64, status RiskStatus) (*Risk, error)
	DeleteRisk(ctx context.Context, id int64) error
}
