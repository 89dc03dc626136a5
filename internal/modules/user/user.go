package user

import "context"

// User represents an internal enterprise user who can place part orders.
type User struct {
	UserID       int64  `json:"user_id"`
	Name         string `json:"name"`
	CompanyID    string `json:"company_id"`
	Role         string `json:"role"` // Admin, Warehouse Staff, Maintenance Staff
	Active       bool   `json:"status"`
	Email        string `json:"email,omitempty"`
	PasswordHash string `json:"-"`
}

// Repository defines user data storage.
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByID(ctx context.Context, id int64) (*User, error)
	GetUserByLogin(ctx context.Context, login string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
}
