package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack/internal/domain/transaction"
	"fintrack/internal/domain/user"
)

func TestHandleDashboard(t *testing.T) {
	clock := func() time.Time {
		return time.Date(2024, time.January, 20, 9, 0, 0, 0, time.UTC)
	}
	caller := &user.User{ID: 1, InitialBalance: 100}

	// Newest first, as the repository orders them.
	repo := &MockTransactionRepo{
		ListByUserFunc: func(ctx context.Context, userID int64, month, year string) ([]*transaction.Transaction, error) {
			if month != "Jan" || year != "2024" {
				t.Errorf("filter = (%q, %q), want current month (Jan, 2024)", month, year)
			}
			return []*transaction.Transaction{
				{ID: "tx-2", Type: transaction.TypeWithdrawal, Cause: "Food", Amount: 20, Month: "Jan", Year: "2024"},
				{ID: "tx-1", Type: transaction.TypeDeposit, Cause: "Salary", Amount: 50, Month: "Jan", Year: "2024"},
			}, nil
		},
	}
	handler := NewDashboardHandler(transaction.NewService(repo, clock))

	req := authedRequest(http.MethodGet, "/api/dashboard", nil, caller)
	rr := httptest.NewRecorder()

	handler.HandleDashboard(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rr.Code, rr.Body.String())
	}

	body := decodeBody(t, rr)
	data, _ := body["data"].(map[string]any)
	if data == nil {
		t.Fatal("response has no data")
	}

	if data["balance"] != float64(130) {
		t.Errorf("balance = %v, want 130", data["balance"])
	}
	if data["totalDeposits"] != float64(50) {
		t.Errorf("totalDeposits = %v, want 50", data["totalDeposits"])
	}
	if data["totalWithdrawals"] != float64(20) {
		t.Errorf("totalWithdrawals = %v, want 20", data["totalWithdrawals"])
	}

	recent, _ := data["recentTransactions"].([]any)
	if len(recent) != 2 {
		t.Fatalf("got %d recent transactions, want 2", len(recent))
	}
	first, _ := recent[0].(map[string]any)
	if first["id"] != "tx-2" {
		t.Errorf("recent[0].id = %v, want tx-2 (most recent first)", first["id"])
	}
}

func TestHandleDashboard_Unauthenticated(t *testing.T) {
	handler := NewDashboardHandler(transaction.NewService(&MockTransactionRepo{}, time.Now))

	rr := httptest.NewRecorder()
	handler.HandleDashboard(rr, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
}
