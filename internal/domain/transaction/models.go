package transaction

import (
	"context"
	"errors"
	"strings"
	"time"
)

const (
	TypeDeposit    = "deposit"
	TypeWithdrawal = "withdrawal"

	// MaxCauseLength bounds the free-text cause field.
	MaxCauseLength = 100
)

// ErrNotFound is returned when a transaction does not exist or belongs to
// another user. The two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("transaction not found")

// ValidationError carries one message per rejected field, joined for display.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

type Transaction struct {
	ID     string    `json:"id"`
	UserID int64     `json:"userId"`
	Type   string    `json:"type"`
	Cause  string    `json:"cause"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
	Month  string    `json:"month"`
	Year   string    `json:"year"`
}

type CreateParams struct {
	Type   string  `json:"type"`
	Cause  string  `json:"cause"`
	Amount float64 `json:"amount"`
}

// DashboardData is the current-month aggregate view.
type DashboardData struct {
	Balance            float64        `json:"balance"`
	TotalDeposits      float64        `json:"totalDeposits"`
	TotalWithdrawals   float64        `json:"totalWithdrawals"`
	RecentTransactions []*Transaction `json:"recentTransactions"`
}

type Repository interface {
	Create(ctx context.Context, tx *Transaction) error

	// ListByUser returns the user's transactions ordered by date descending.
	// When both month and year are non-empty the result is restricted to
	// that exact pair.
	ListByUser(ctx context.Context, userID int64, month, year string) ([]*Transaction, error)

	// Delete removes the transaction only if it belongs to userID,
	// returning ErrNotFound otherwise.
	Delete(ctx context.Context, userID int64, id string) error
}
