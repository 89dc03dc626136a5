package supplier

import (
	"context"
	"errors"
)

// ErrSupplierNotFound is returned when the referenced supplier does not exist.
var ErrSupplierNotFound = errors.New("supplier not found")

// Repository defines supplier data storage.
type Repository interface {
	CreateSupplier(ctx context.Context, s *Supplier) error
	GetSupplierByID(ctx context.Context, id int64) (*Supplier, error)
	ListSuppliers(ctx context.Context) ([]*Supplier, error)
	UpdateSupplier(ctx context.Context, s *Supplier) error
	DeleteSupplier(ctx context.Context, id int64) error
}
