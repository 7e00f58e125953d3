package user

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrDuplicateEmail is returned when a signup reuses an existing email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so callers cannot enumerate registered accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrNotFound = errors.New("user not found")
)

type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	InitialBalance float64   `json:"initialBalance"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Summary is the client-facing shape of a user. The password hash never
// leaves the server.
type Summary struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	InitialBalance float64 `json:"initialBalance"`
}

func (u *User) Summary() Summary {
	return Summary{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		InitialBalance: u.InitialBalance,
	}
}

type CreateUserParams struct {
	Name           string
	Email          string
	PasswordHash   string
	InitialBalance float64
}

type Repository interface {
	// Create persists a new user. Returns ErrDuplicateEmail if the email
	// is already registered.
	Create(ctx context.Context, params CreateUserParams) (*User, error)

	// GetByEmail returns ErrNotFound when no user has the given email.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByID returns ErrNotFound when the user no longer exists.
	GetByID(ctx context.Context, id int64) (*User, error)
}
