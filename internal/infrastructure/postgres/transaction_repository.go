package postgres

import (
	"context"
	"fmt"

	"fintrack/internal/domain/transaction"
)

type TransactionRepository struct {
	db *DB
}

func NewTransactionRepository(db *DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, type, cause, amount, date, month, year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(
		ctx, query,
		tx.ID, tx.UserID, tx.Type, tx.Cause, tx.Amount, tx.Date, tx.Month, tx.Year,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID int64, month, year string) ([]*transaction.Transaction, error) {
	query := `
		SELECT id, user_id, type, cause, amount, date, month, year
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC
	`
	args := []any{userID}

	if month != "" && year != "" {
		query = `
			SELECT id, user_id, type, cause, amount, date, month, year
			FROM transactions
			WHERE user_id = $1 AND month = $2 AND year = $3
			ORDER BY date DESC
		`
		args = append(args, month, year)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*transaction.Transaction
	for rows.Next() {
		var tx transaction.Transaction
		err := rows.Scan(
			&tx.ID, &tx.UserID, &tx.Type, &tx.Cause, &tx.Amount, &tx.Date, &tx.Month, &tx.Year,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, &tx)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}

// Delete removes the row only when it belongs to userID. A miss on either
// condition reports ErrNotFound, so foreign transactions are never revealed
// and a concurrent second delete degrades to not-found rather than an error.
func (r *TransactionRepository) Delete(ctx context.Context, userID int64, id string) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return transaction.ErrNotFound
	}
	return nil
}
