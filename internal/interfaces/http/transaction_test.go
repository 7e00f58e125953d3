package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack/internal/domain/transaction"
	"fintrack/internal/domain/user"
	"fintrack/internal/shared/middleware"
)

// MockTransactionRepo implements transaction.Repository for testing
type MockTransactionRepo struct {
	CreateFunc     func(ctx context.Context, tx *transaction.Transaction) error
	ListByUserFunc func(ctx context.Context, userID int64, month, year string) ([]*transaction.Transaction, error)
	DeleteFunc     func(ctx context.Context, userID int64, id string) error
}

func (m *MockTransactionRepo) Create(ctx context.Context, tx *transaction.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx)
	}
	return nil
}

func (m *MockTransactionRepo) ListByUser(ctx context.Context, userID int64, month, year string) ([]*transaction.Transaction, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, month, year)
	}
	return nil, nil
}

func (m *MockTransactionRepo) Delete(ctx context.Context, userID int64, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}

func authedRequest(method, target string, body []byte, u *user.User) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewBuffer(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(context.WithValue(req.Context(), middleware.UserKey, u))
}

func newTransactionHandler(repo *MockTransactionRepo, now func() time.Time) *TransactionHandler {
	return NewTransactionHandler(transaction.NewService(repo, now))
}

func TestHandleCreateTransaction(t *testing.T) {
	clock := func() time.Time {
		return time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	}
	caller := &user.User{ID: 1}

	tests := []struct {
		name           string
		body           string
		repo           func() *MockTransactionRepo
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"type":"deposit","cause":"Salary","amount":50}`,
			repo: func() *MockTransactionRepo {
				return &MockTransactionRepo{
					CreateFunc: func(ctx context.Context, tx *transaction.Transaction) error {
						if tx.UserID != 1 {
							t.Errorf("UserID = %d, want 1", tx.UserID)
						}
						if tx.Month != "Jan" || tx.Year != "2024" {
							t.Errorf("stamped (%q, %q), want (Jan, 2024)", tx.Month, tx.Year)
						}
						return nil
					},
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Invalid Type",
			body:           `{"type":"transfer","cause":"Salary","amount":50}`,
			repo:           func() *MockTransactionRepo { return &MockTransactionRepo{} },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing Amount",
			body:           `{"type":"deposit","cause":"Salary"}`,
			repo:           func() *MockTransactionRepo { return &MockTransactionRepo{} },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid JSON",
			body:           `{`,
			repo:           func() *MockTransactionRepo { return &MockTransactionRepo{} },
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTransactionHandler(tt.repo(), clock)

			req := authedRequest(http.MethodPost, "/api/transactions", []byte(tt.body), caller)
			rr := httptest.NewRecorder()

			handler.HandleTransactions(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d (body %s)", rr.Code, tt.expectedStatus, rr.Body.String())
			}
		})
	}
}

func TestHandleListTransactions(t *testing.T) {
	caller := &user.User{ID: 1}

	repo := &MockTransactionRepo{
		ListByUserFunc: func(ctx context.Context, userID int64, month, year string) ([]*transaction.Transaction, error) {
			if userID != 1 {
				t.Errorf("userID = %d, want 1 (always caller-scoped)", userID)
			}
			if month != "Jan" || year != "2024" {
				t.Errorf("filter = (%q, %q), want (Jan, 2024)", month, year)
			}
			return []*transaction.Transaction{
				{ID: "tx-1", UserID: 1, Type: transaction.TypeDeposit, Amount: 50},
			}, nil
		},
	}
	handler := newTransactionHandler(repo, time.Now)

	req := authedRequest(http.MethodGet, "/api/transactions?month=Jan&year=2024", nil, caller)
	rr := httptest.NewRecorder()

	handler.HandleTransactions(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rr.Code, rr.Body.String())
	}

	body := decodeBody(t, rr)
	if body["count"] != float64(1) {
		t.Errorf("count = %v, want 1", body["count"])
	}
}

func TestHandleListTransactions_EmptyIsNotNull(t *testing.T) {
	handler := newTransactionHandler(&MockTransactionRepo{}, time.Now)

	req := authedRequest(http.MethodGet, "/api/transactions", nil, &user.User{ID: 1})
	rr := httptest.NewRecorder()

	handler.HandleTransactions(rr, req)

	body := decodeBody(t, rr)
	if _, ok := body["transactions"].([]any); !ok {
		t.Errorf("transactions = %v, want empty array", body["transactions"])
	}
}

func TestHandleDeleteTransaction(t *testing.T) {
	caller := &user.User{ID: 1}

	tests := []struct {
		name           string
		repo           func() *MockTransactionRepo
		expectedStatus int
	}{
		{
			name: "Success",
			repo: func() *MockTransactionRepo {
				return &MockTransactionRepo{
					DeleteFunc: func(ctx context.Context, userID int64, id string) error {
						if userID != 1 {
							t.Errorf("userID = %d, want 1", userID)
						}
						if id != "tx-1" {
							t.Errorf("id = %q, want tx-1", id)
						}
						return nil
					},
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			// Covers both an absent id and another user's transaction;
			// the repository cannot tell the handler which it was.
			name: "Not Found Or Foreign",
			repo: func() *MockTransactionRepo {
				return &MockTransactionRepo{
					DeleteFunc: func(ctx context.Context, userID int64, id string) error {
						return transaction.ErrNotFound
					},
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTransactionHandler(tt.repo(), time.Now)

			req := authedRequest(http.MethodDelete, "/api/transactions/tx-1", nil, caller)
			req.SetPathValue("id", "tx-1")
			rr := httptest.NewRecorder()

			handler.HandleTransactionByID(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d (body %s)", rr.Code, tt.expectedStatus, rr.Body.String())
			}
		})
	}
}

func TestHandleDeleteTransaction_TwiceYieldsNotFound(t *testing.T) {
	deleted := map[string]bool{}
	repo := &MockTransactionRepo{
		DeleteFunc: func(ctx context.Context, userID int64, id string) error {
			if deleted[id] {
				return transaction.ErrNotFound
			}
			deleted[id] = true
			return nil
		},
	}
	handler := newTransactionHandler(repo, time.Now)

	for i, want := range []int{http.StatusOK, http.StatusNotFound} {
		req := authedRequest(http.MethodDelete, "/api/transactions/tx-1", nil, &user.User{ID: 1})
		req.SetPathValue("id", "tx-1")
		rr := httptest.NewRecorder()

		handler.HandleTransactionByID(rr, req)

		if rr.Code != want {
			t.Errorf("delete #%d status = %d, want %d", i+1, rr.Code, want)
		}
	}
}
