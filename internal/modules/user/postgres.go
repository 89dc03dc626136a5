package user

import (
	"context"
	"database/sql"
	"errors"
)

// ErrUserNotFound is returned when the referenced user does not exist.
var ErrUserNotFound = errors.New("user not found")

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateUser(ctx context.Context, u *User) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO users (name, company_id, role, status, email, password_hash)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING user_id`,
		u.Name, u.CompanyID, u.Role, u.Active, u.Email, u.PasswordHash).Scan(&u.UserID)
}

func (r *postgresRepo) GetUserByID(ctx context.Context, id int64) (*User, error) {
	u := &User{}
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, name, company_id, role, status, COALESCE(email, ''), password_hash
		FROM users WHERE user_id=$1`, id).
		Scan(&u.UserID, &u.Name, &u.CompanyID, &u.Role, &u.Active, &u.Email, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetUserByLogin looks a user up by company id or email, matching how users
// sign in on the login form.
func (r *postgresRepo) GetUserByLogin(ctx context.Context, login string) (*User, error) {
	u := &User{}
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, name, company_id, role, status, COALESCE(email, ''), password_hash
		FROM users WHERE company_id=$1 OR email=$1`, login).
		Scan(&u.UserID, &u.Name, &u.CompanyID, &u.Role, &u.Active, &u.Email, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *postgresRepo) ListUsers(ctx context.Context) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, name, company_id, role, status, COALESCE(email, '')
		FROM users ORDER BY user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var users []*User
	for rows.Next() {
		u := &User{}
		if err := rows.Scan(&u.UserID, &u.Name, &u.CompanyID, &u.Role, &u.Active, &u.Email); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
