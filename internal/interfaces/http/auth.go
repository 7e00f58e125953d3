package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"fintrack/internal/domain/user"
	"fintrack/internal/shared/auth"
	"fintrack/internal/shared/middleware"
)

type AuthHandler struct {
	users user.Repository
	jwt   *auth.JWT
}

func NewAuthHandler(users user.Repository, jwt *auth.JWT) *AuthHandler {
	return &AuthHandler{users: users, jwt: jwt}
}

type SignupRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	InitialBalance float64 `json:"initialBalance"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleSignup registers a new user and issues a token.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var messages []string
	if req.Name == "" {
		messages = append(messages, "name is required")
	}
	if req.Email == "" {
		messages = append(messages, "email is required")
	} else if !strings.Contains(req.Email, "@") {
		messages = append(messages, "email is not valid")
	}
	if req.Password == "" {
		messages = append(messages, "password is required")
	}
	if req.InitialBalance < 0 {
		messages = append(messages, "initial balance cannot be negative")
	}
	if len(messages) > 0 {
		respondError(w, http.StatusBadRequest, strings.Join(messages, ", "))
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		respondServerError(w)
		return
	}

	u, err := h.users.Create(r.Context(), user.CreateUserParams{
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   passwordHash,
		InitialBalance: req.InitialBalance,
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			respondError(w, http.StatusConflict, "User already exists")
			return
		}
		log.Printf("Error creating user: %v", err)
		respondServerError(w)
		return
	}

	token, err := h.jwt.Generate(u.ID)
	if err != nil {
		log.Printf("Error generating token for user %d: %v", u.ID, err)
		respondServerError(w)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"token": token,
		"user":  u.Summary(),
	})
}

// HandleSignin verifies credentials and issues a token. Unknown email and
// wrong password produce the same response.
func (h *AuthHandler) HandleSignin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	u, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("Error looking up user by email: %v", err)
		respondServerError(w)
		return
	}

	if err := auth.VerifyPassword(u.PasswordHash, req.Password); err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwt.Generate(u.ID)
	if err != nil {
		log.Printf("Error generating token for user %d: %v", u.ID, err)
		respondServerError(w)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  u.Summary(),
	})
}

// HandleMe returns the authenticated user's summary.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	u, ok := middleware.UserFrom(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"user": u.Summary(),
	})
}
