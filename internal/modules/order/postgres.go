package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Yohannesabesheger/eep-app/internal/modules/inventory"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const orderColumns = `
	po.order_id, po.part_id, po.quantity, po.ordered_by, po.priority, po.status,
	po.reference, po.created_at, po.delivered_at,
	p.name AS part_name, u.name AS user_name, u.email AS user_email`

const orderJoins = `
	FROM part_orders po
	LEFT JOIN parts p ON po.part_id = p.part_id
	LEFT JOIN users u ON po.ordered_by = u.user_id`

// CreateOrder runs the whole stock-mutation sequence in one transaction: the
// part row is locked first, so two concurrent orders against the same part
// cannot both pass the stock check against a stale read.
func (r *postgresRepo) CreateOrder(ctx context.Context, o *PartOrder) (int, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var partName string
	var stockLevel int
	err = tx.QueryRowContext(ctx,
		`SELECT name, stock_level FROM parts WHERE part_id=$1 FOR UPDATE`,
		o.PartID).Scan(&partName, &stockLevel)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, ErrPartNotFound
	}
	if err != nil {
		return 0, false, fmt.Errorf("lock part: %w", err)
	}

	var userName, userEmail string
	var active bool
	err = tx.QueryRowContext(ctx,
		`SELECT name, COALESCE(email, ''), status FROM users WHERE user_id=$1`,
		o.OrderedBy).Scan(&userName, &userEmail, &active)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, ErrUserNotFound
	}
	if err != nil {
		return 0, false, fmt.Errorf("load user: %w", err)
	}
	if !active {
		return 0, false, ErrUserInactive
	}

	if o.Quantity > stockLevel {
		return 0, false, ErrInsufficientStock
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO part_orders (part_id, quantity, ordered_by, priority, status, reference)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING order_id, created_at`,
		o.PartID, o.Quantity, o.OrderedBy, o.Priority, StatusPending, o.Reference).
		Scan(&o.OrderID, &o.CreatedAt)
	if err != nil {
		return 0, false, fmt.Errorf("insert order: %w", err)
	}

	newLevel := stockLevel - o.Quantity
	newStatus := inventory.ClassifyStock(newLevel)
	if _, err := tx.ExecContext(ctx,
		`UPDATE parts SET stock_level=$1, status=$2 WHERE part_id=$3`,
		newLevel, newStatus, o.PartID); err != nil {
		return 0, false, fmt.Errorf("decrement stock: %w", err)
	}

	notified := false
	if alert := inventory.TransitionAlert(partName, stockLevel, newLevel); alert != "" {
		if err := insertInventoryNotification(ctx, tx, alert, o.PartID); err != nil {
			return 0, false, err
		}
		notified = true
	}
	if o.Priority == PriorityHigh || o.Priority == PriorityUrgent {
		msg := fmt.Sprintf("%s priority order %s placed for %s (%d units).",
			o.Priority, o.Reference, partName, o.Quantity)
		if err := insertInventoryNotification(ctx, tx, msg, o.PartID); err != nil {
			return 0, false, err
		}
		notified = true
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("commit: %w", err)
	}

	o.Status = StatusPending
	o.PartName = partName
	o.UserName = userName
	o.UserEmail = userEmail
	return newLevel, notified, nil
}

func (r *postgresRepo) CancelOrder(ctx context.Context, orderID int64) (*PartOrder, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	o, err := lockOrder(ctx, tx, orderID)
	if err != nil {
		return nil, false, err
	}

	switch o.Status {
	case StatusCancelled:
		// Re-cancelling is a no-op on stock and status alike.
		cur, err := r.getOrder(ctx, tx, orderID)
		if err != nil {
			return nil, false, err
		}
		return cur, false, tx.Commit()
	case StatusCompleted:
		return nil, false, ErrInvalidTransition
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE part_orders SET status=$1 WHERE order_id=$2`,
		StatusCancelled, orderID); err != nil {
		return nil, false, fmt.Errorf("cancel order: %w", err)
	}

	var partName string
	var stockLevel int
	err = tx.QueryRowContext(ctx,
		`SELECT name, stock_level FROM parts WHERE part_id=$1 FOR UPDATE`,
		o.PartID).Scan(&partName, &stockLevel)
	if err != nil {
		return nil, false, fmt.Errorf("lock part: %w", err)
	}

	restored := stockLevel + o.Quantity
	if _, err := tx.ExecContext(ctx,
		`UPDATE parts SET stock_level=$1, status=$2 WHERE part_id=$3`,
		restored, inventory.ClassifyStock(restored), o.PartID); err != nil {
		return nil, false, fmt.Errorf("restore stock: %w", err)
	}

	updated, err := r.getOrder(ctx, tx, orderID)
	if err != nil {
		return nil, false, err
	}
	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("commit: %w", err)
	}
	return updated, true, nil
}

func (r *postgresRepo) CompleteOrder(ctx context.Context, orderID int64) (*PartOrder, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	o, err := lockOrder(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != StatusPending {
		return nil, ErrInvalidTransition
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE part_orders SET status=$1, delivered_at=NOW() WHERE order_id=$2`,
		StatusCompleted, orderID); err != nil {
		return nil, fmt.Errorf("complete order: %w", err)
	}

	updated, err := r.getOrder(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return updated, nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID int64) (*PartOrder, error) {
	return r.getOrder(ctx, r.db, orderID)
}

func (r *postgresRepo) ListOrders(ctx context.Context) ([]*PartOrder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+orderColumns+orderJoins+` ORDER BY po.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var orders []*PartOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// ── helpers ──────────────────────────────────────────────────────────────────

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func (r *postgresRepo) getOrder(ctx context.Context, q queryer, orderID int64) (*PartOrder, error) {
	o, err := scanOrder(q.QueryRowContext(ctx,
		`SELECT `+orderColumns+orderJoins+` WHERE po.order_id=$1`, orderID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

func lockOrder(ctx context.Context, tx *sql.Tx, orderID int64) (*PartOrder, error) {
	o := &PartOrder{OrderID: orderID}
	err := tx.QueryRowContext(ctx,
		`SELECT part_id, quantity, status FROM part_orders WHERE order_id=$1 FOR UPDATE`,
		orderID).Scan(&o.PartID, &o.Quantity, &o.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock order: %w", err)
	}
	return o, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*PartOrder, error) {
	o := &PartOrder{}
	var deliveredAt sql.NullTime
	var partName, userName, userEmail sql.NullString
	err := row.Scan(&o.OrderID, &o.PartID, &o.Quantity, &o.OrderedBy, &o.Priority,
		&o.Status, &o.Reference, &o.CreatedAt, &deliveredAt,
		&partName, &userName, &userEmail)
	if err != nil {
		return nil, err
	}
	if deliveredAt.Valid {
		o.DeliveredAt = &deliveredAt.Time
	}
	o.PartName = partName.String
	o.UserName = userName.String
	o.UserEmail = userEmail.String
	return o, nil
}

func insertInventoryNotification(ctx context.Context, tx *sql.Tx, message string, partID int64) error {
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO notifications (type, message, status, part_id) VALUES ('Inventory', $1, 'Pending', $2)`,
		message, partID); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}
