package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreatePart(ctx context.Context, p *Part) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO parts (name, type, location, stock_level, min_threshold, max_threshold, supplier_id, image_url, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING part_id`,
		p.Name, p.Type, p.Location, p.StockLevel, p.MinThreshold, p.MaxThreshold,
		p.SupplierID, p.ImageURL, p.Status).Scan(&p.PartID)
}

func (r *postgresRepo) GetPartByID(ctx context.Context, id int64) (*Part, error) {
	p, err := scanPart(r.db.QueryRowContext(ctx, `
		SELECT part_id, name, type, location, stock_level, min_threshold, max_threshold, supplier_id, image_url, status
		FROM parts WHERE part_id=$1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPartNotFound
	}
	return p, err
}

func (r *postgresRepo) ListParts(ctx context.Context) ([]*Part, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT part_id, name, type, location, stock_level, min_threshold, max_threshold, supplier_id, image_url, status
		FROM parts ORDER BY part_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var parts []*Part
	for rows.Next() {
		p := &Part{}
		if err := rows.Scan(&p.PartID, &p.Name, &p.Type, &p.Location, &p.StockLevel,
			&p.MinThreshold, &p.MaxThreshold, &p.SupplierID, &p.ImageURL, &p.Status); err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

// AdjustStock applies a signed delta to a part's stock inside a single
// transaction. The part row is locked so concurrent order operations against
// the same part serialize; the derived status and any triggered alert commit
// together with the new level.
func (r *postgresRepo) AdjustStock(ctx context.Context, partID int64, change int) (*Part, string, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	p, err := scanPart(tx.QueryRowContext(ctx, `
		SELECT part_id, name, type, location, stock_level, min_threshold, max_threshold, supplier_id, image_url, status
		FROM parts WHERE part_id=$1 FOR UPDATE`, partID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrPartNotFound
	}
	if err != nil {
		return nil, "", err
	}

	newLevel := p.StockLevel + change
	if newLevel < 0 {
		return nil, "", ErrInsufficientStock
	}

	newStatus := ClassifyStock(newLevel)
	if _, err := tx.ExecContext(ctx,
		`UPDATE parts SET stock_level=$1, status=$2 WHERE part_id=$3`,
		newLevel, newStatus, partID); err != nil {
		return nil, "", fmt.Errorf("update stock: %w", err)
	}

	alert := TransitionAlert(p.Name, p.StockLevel, newLevel)
	if alert != "" {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO notifications (type, message, status, part_id) VALUES ('Inventory', $1, 'Pending', $2)`,
			alert, partID); err != nil {
			return nil, "", fmt.Errorf("insert notification: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, "", fmt.Errorf("commit: %w", err)
	}

	p.StockLevel = newLevel
	p.Status = newStatus
	return p, alert, nil
}

func scanPart(row *sql.Row) (*Part, error) {
	p := &Part{}
	err := row.Scan(&p.PartID, &p.Name, &p.Type, &p.Location, &p.StockLevel,
		&p.MinThreshold, &p.MaxThreshold, &p.SupplierID, &p.ImageURL, &p.Status)
	if err != nil {
		return nil, err
	}
	return p, nil
}
