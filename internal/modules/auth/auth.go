package auth

import (
	"context"
	"os"

	"github.com/dgrijalva/jwt-go"
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login verifies credentials (company id or email + password) and returns
	// a signed token plus the authenticated user's public profile.
	Login(ctx context.Context, username, password string) (string, *Identity, error)
}

// Identity is the public view of an authenticated user.
type Identity struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// Claims is the token payload. UserID is what the order lifecycle trusts as
// the acting user; it is never taken from a request body.
type Claims struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

var jwtKey = []byte(secretFromEnv())

func secretFromEnv() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "supersecretkey"
}
