package user

import "context"

// Service defines user management business logic.
type Service interface {
	RegisterUser(ctx context.Context, req RegisterUserRequest) (*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
}

// RegisterUserRequest is the payload for creating a user.
type RegisterUserRequest struct {
	Name      string `json:"name"`
	CompanyID string `json:"company_id"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}
