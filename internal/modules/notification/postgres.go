package notification

import (
	"context"
	"database/sql"
	"fmt"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Record(ctx context.Context, n *Notification) error {
	if n.Status == "" {
		n.Status = StatusPending
	}
	return r.db.QueryRowContext(ctx, `
		INSERT INTO notifications (type, message, status, part_id, risk_id)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING notification_id, created_at`,
		n.Type, n.Message, n.Status, n.PartID, n.RiskID).
		Scan(&n.NotificationID, &n.CreatedAt)
}

func (r *postgresRepo) List(ctx context.Context) ([]*Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT notification_id, type, message, status, part_id, risk_id, created_at
		FROM notifications ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*Notification
	for rows.Next() {
		n := &Notification{}
		if err := rows.Scan(&n.NotificationID, &n.Type, &n.Message, &n.Status,
			&n.PartID, &n.RiskID, &n.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (r *postgresRepo) Resolve(ctx context.Context, notificationID int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET status=$1 WHERE notification_id=$2`,
		StatusResolved, notificationID)
	if err != nil {
		return fmt.Errorf("resolve notification: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
