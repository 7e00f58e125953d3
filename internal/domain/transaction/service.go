package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fintrack/internal/domain/user"

	"github.com/google/uuid"
)

const recentPreviewSize = 5

// Service validates and aggregates transactions. Month and year labels are
// always stamped from the injected clock at create time, never taken from
// the client.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository, now func() time.Time) *Service {
	return &Service{repo: repo, now: now}
}

func (s *Service) Create(ctx context.Context, userID int64, params CreateParams) (*Transaction, error) {
	cause := strings.TrimSpace(params.Cause)

	var messages []string
	switch params.Type {
	case "":
		messages = append(messages, "transaction type is required")
	case TypeDeposit, TypeWithdrawal:
	default:
		messages = append(messages, "transaction type must be either deposit or withdrawal")
	}
	if cause == "" {
		messages = append(messages, "transaction cause is required")
	} else if len(cause) > MaxCauseLength {
		messages = append(messages, fmt.Sprintf("cause cannot be more than %d characters", MaxCauseLength))
	}
	if params.Amount <= 0 {
		messages = append(messages, "amount must be greater than 0")
	}
	if len(messages) > 0 {
		return nil, &ValidationError{Messages: messages}
	}

	now := s.now()
	tx := &Transaction{
		ID:     uuid.New().String(),
		UserID: userID,
		Type:   params.Type,
		Cause:  cause,
		Amount: params.Amount,
		Date:   now,
		Month:  now.Format("Jan"),
		Year:   now.Format("2006"),
	}

	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// List returns the user's transactions, newest first. The month/year filter
// only applies when both values are present, matching the query contract.
func (s *Service) List(ctx context.Context, userID int64, month, year string) ([]*Transaction, error) {
	if month == "" || year == "" {
		month, year = "", ""
	}
	return s.repo.ListByUser(ctx, userID, month, year)
}

func (s *Service) Delete(ctx context.Context, userID int64, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

// Dashboard aggregates the current month:
// balance = initial balance + deposits - withdrawals, plus the most recent
// transactions as a preview.
func (s *Service) Dashboard(ctx context.Context, u *user.User) (*DashboardData, error) {
	now := s.now()

	txs, err := s.repo.ListByUser(ctx, u.ID, now.Format("Jan"), now.Format("2006"))
	if err != nil {
		return nil, err
	}

	var deposits, withdrawals float64
	for _, tx := range txs {
		switch tx.Type {
		case TypeDeposit:
			deposits += tx.Amount
		case TypeWithdrawal:
			withdrawals += tx.Amount
		}
	}

	recent := make([]*Transaction, 0, recentPreviewSize)
	for _, tx := range txs {
		if len(recent) == recentPreviewSize {
			break
		}
		recent = append(recent, tx)
	}

	return &DashboardData{
		Balance:            u.InitialBalance + deposits - withdrawals,
		TotalDeposits:      deposits,
		TotalWithdrawals:   withdrawals,
		RecentTransactions: recent,
	}, nil
}
