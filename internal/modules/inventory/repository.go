package inventory

import (
	"context"
	"errors"
)

var (
	// ErrPartNotFound is returned when the referenced part does not exist.
	ErrPartNotFound = errors.New("part not found")
	// ErrInsufficientStock is returned when an adjustment would drive stock negative.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Repository defines part data storage. AdjustStock must apply the delta, the
// derived status refresh, and any triggered notification as one atomic unit.
type Repository interface {
	CreatePart(ctx context.Context, p *Part) error
	GetPartByID(ctx context.Context, id int64) (*Part, error)
	ListParts(ctx context.Context) ([]*Part, error)
	AdjustStock(ctx context.Context, partID int64, change int) (*Part, string, error)
}
