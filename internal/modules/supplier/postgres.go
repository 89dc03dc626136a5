package supplier

import (
	"context"
	"database/sql"
	"errors"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateSupplier(ctx context.Context, s *Supplier) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO suppliers (name, contact_email, contact_phone, performance_rating, lead_time_days)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING supplier_id`,
		s.Name, s.ContactEmail, s.ContactPhone, s.PerformanceRating, s.LeadTimeDays).
		Scan(&s.SupplierID)
}

func (r *postgresRepo) GetSupplierByID(ctx context.Context, id int64) (*Supplier, error) {
	s := &Supplier{}
	err := r.db.QueryRowContext(ctx, `
		SELECT supplier_id, name, COALESCE(contact_email, ''), COALESCE(contact_phone, ''),
		       COALESCE(performance_rating, 0), COALESCE(lead_time_days, 0)
		FROM suppliers WHERE supplier_id=$1`, id).
		Scan(&s.SupplierID, &s.Name, &s.ContactEmail, &s.ContactPhone,
			&s.PerformanceRating, &s.LeadTimeDays)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSupplierNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) ListSuppliers(ctx context.Context) ([]*Supplier, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT supplier_id, name, COALESCE(contact_email, ''), COALESCE(contact_phone, ''),
		       COALESCE(performance_rating, 0), COALESCE(lead_time_days, 0)
		FROM suppliers ORDER BY supplier_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var suppliers []*Supplier
	for rows.Next() {
		s := &Supplier{}
		if err := rows.Scan(&s.SupplierID, &s.Name, &s.ContactEmail, &s.ContactPhone,
			&s.PerformanceRating, &s.LeadTimeDays); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (r *postgresRepo) UpdateSupplier(ctx context.Context, s *Supplier) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE suppliers
		SET name=$1, contact_email=$2, contact_phone=$3, performance_rating=$4, lead_time_days=$5
		WHERE supplier_id=$6`,
		s.Name, s.ContactEmail, s.ContactPhone, s.PerformanceRating, s.LeadTimeDays, s.SupplierID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrSupplierNotFound
	}
	return nil
}

func (r *postgresRepo) DeleteSupplier(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM suppliers WHERE supplier_id=$1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrSupplierNotFound
	}
	return nil
}
