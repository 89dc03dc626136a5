package risk

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const riskColumns = `
	r.risk_id, r.part_id, r.risk_type, COALESCE(r.description, ''), r.severity,
	r.likelihood, COALESCE(r.impact, ''), COALESCE(r.mitigation_plan, ''),
	r.status, r.created_at, COALESCE(p.name, '') AS part_name`

const riskJoins = `
	FROM risks r
	LEFT JOIN parts p ON r.part_id = p.part_id`

// CreateRisk inserts the risk and, when severity is High, its notification in
// the same transaction, so a risk never exists without its alert.
func (r *postgresRepo) CreateRisk(ctx context.Context, rk *Risk) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO risks (part_id, risk_type, description, severity, likelihood, impact, mitigation_plan, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING risk_id, created_at`,
		rk.PartID, rk.RiskType, rk.Description, rk.Severity, rk.Likelihood,
		rk.Impact, rk.MitigationPlan, rk.Status).
		Scan(&rk.RiskID, &rk.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("insert risk: %w", err)
	}

	notified := false
	if rk.Severity == SeverityHigh {
		msg := fmt.Sprintf("New high risk identified: %s - %s", rk.RiskType, truncate(rk.Description, 100))
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO notifications (type, message, status, risk_id) VALUES ('Risk', $1, 'Pending', $2)`,
			msg, rk.RiskID); err != nil {
			return false, fmt.Errorf("insert notification: %w", err)
		}
		notified = true
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return notified, nil
}

func (r *postgresRepo) GetRiskByID(ctx context.Context, id int64) (*Risk, error) {
	rk, err := scanRisk(r.db.QueryRowContext(ctx,
		`SELECT `+riskColumns+riskJoins+` WHERE r.risk_id=$1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRiskNotFound
	}
	return rk, err
}

func (r *postgresRepo) ListRisks(ctx context.Context) ([]*Risk, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+riskColumns+riskJoins+` ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var risks []*Risk
	for rows.Next() {
		rk, err := scanRisk(rows)
		if err != nil {
			return nil, err
		}
		risks = append(risks, rk)
	}
	return risks, rows.Err()
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id int64, status RiskStatus) (*Risk, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE risks SET status=$1 WHERE risk_id=$2`, status, id)
	if err != nil {
		return nil, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return nil, ErrRiskNotFound
	}
	return r.GetRiskByID(ctx, id)
}

func (r *postgresRepo) DeleteRisk(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM risks WHERE risk_id=$1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrRiskNotFound
	}
	return nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRisk(row rowScanner) (*Risk, error) {
	rk := &Risk{}
	err := row.Scan(&rk.RiskID, &rk.PartID, &rk.RiskType, &rk.Description, &rk.Severity,
		&rk.Likelihood, &rk.Impact, &rk.MitigationPlan, &rk.Status, &rk.CreatedAt, &rk.PartName)
	if err != nil {
		return nil, err
	}
	return rk, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
