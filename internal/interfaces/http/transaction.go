package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"fintrack/internal/domain/transaction"
	"fintrack/internal/shared/middleware"
)

type TransactionHandler struct {
	svc *transaction.Service
}

func NewTransactionHandler(svc *transaction.Service) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// HandleTransactions dispatches the collection endpoint: POST creates,
// GET lists.
func (h *TransactionHandler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleCreate(w, r)
	case http.MethodGet:
		h.handleList(w, r)
	default:
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *TransactionHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var params transaction.CreateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx, err := h.svc.Create(r.Context(), u.ID, params)
	if err != nil {
		var verr *transaction.ValidationError
		if errors.As(err, &verr) {
			respondError(w, http.StatusBadRequest, verr.Error())
			return
		}
		log.Printf("Error creating transaction for user %d: %v", u.ID, err)
		respondServerError(w)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message":     "Transaction created successfully",
		"transaction": tx,
	})
}

func (h *TransactionHandler) handleList(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	month := r.URL.Query().Get("month")
	year := r.URL.Query().Get("year")

	transactions, err := h.svc.List(r.Context(), u.ID, month, year)
	if err != nil {
		log.Printf("Error listing transactions for user %d: %v", u.ID, err)
		respondServerError(w)
		return
	}

	if transactions == nil {
		transactions = []*transaction.Transaction{}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"count":        len(transactions),
		"transactions": transactions,
	})
}

// HandleTransactionByID handles the item endpoint: DELETE removes the
// caller's transaction. A foreign or absent id is a 404 either way.
func (h *TransactionHandler) HandleTransactionByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	u, ok := middleware.UserFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id := r.PathValue("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "Transaction ID is required")
		return
	}

	if err := h.svc.Delete(r.Context(), u.ID, id); err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		log.Printf("Error deleting transaction %s for user %d: %v", id, u.ID, err)
		respondServerError(w)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Transaction deleted successfully",
	})
}
