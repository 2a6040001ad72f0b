package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/Guilherme-dev15/finance-app/internal/auth"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new user account.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Email == "" {
		writeError(w, auth.ErrInvalidCredentials)
		return
	}

	user, err := h.authenticator.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warn("Registration failed", "email", req.Email, "error", err)
		writeError(w, err)
		return
	}

	h.logger.Info("User registered", "user_id", user.ID, "email", user.Email)
	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "user registered successfully",
		"id":      user.ID,
	})
}

// Login authenticates a user and returns a JWT token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, auth.ErrInvalidCredentials)
		return
	}

	user, err := h.authenticator.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warn("Login failed", "email", req.Email)
		writeError(w, auth.ErrInvalidCredentials)
		return
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		writeError(w, err)
		return
	}

	h.logger.Info("User logged in", "user_id", user.ID)
	writeJSON(w, http.StatusOK, map[string]string{"access_token": token})
}
