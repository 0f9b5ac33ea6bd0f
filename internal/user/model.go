package user

import (
	"context"
	"time"
)

// User is a persisted identity record. The password hash and the
// confirmation token never leave the server.
type User struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Token        *string   `db:"token" json:"-"`
	Confirmed    bool      `db:"confirmed" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Store is the narrow persistence surface the handlers need. Lookups
// return (nil, nil) when no row matches.
type Store interface {
	Create(ctx context.Context, u *User) (string, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByToken(ctx context.Context, token string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	SaveToken(ctx context.Context, id string, token *string) error
	Confirm(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id, hash string, clearToken bool) error
}

type createAccountRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenRequest struct {
	Token string `json:"token"`
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	Password        string `json:"password"`
}

type checkPasswordRequest struct {
	Password string `json:"password"`
}
