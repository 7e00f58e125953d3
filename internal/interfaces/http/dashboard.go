package http

import (
	"log"
	"net/http"

	"fintrack/internal/domain/transaction"
	"fintrack/internal/shared/middleware"
)

type DashboardHandler struct {
	svc *transaction.Service
}

func NewDashboardHandler(svc *transaction.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// HandleDashboard returns the current-month aggregate view for the
// authenticated user.
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	u, ok := middleware.UserFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	data, err := h.svc.Dashboard(r.Context(), u)
	if err != nil {
		log.Printf("Error building dashboard for user %d: %v", u.ID, err)
		respondServerError(w)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"data": data,
	})
}
