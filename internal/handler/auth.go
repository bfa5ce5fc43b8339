package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/reverseludo/admin-api/internal/auth"
	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/logger"
	"github.com/reverseludo/admin-api/internal/metrics"
)

// LoginRequest represents the admin login request body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse matches the session payload the dashboard expects.
type LoginResponse struct {
	Success bool         `json:"success"`
	User    LoginUser    `json:"user"`
	Session LoginSession `json:"session"`
}

// LoginUser identifies the logged-in admin.
type LoginUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// LoginSession carries the issued bearer token.
type LoginSession struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// HandleLogin authenticates an admin and issues a session token.
func HandleLogin(authService auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req LoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email == "" || req.Password == "" {
			respondError(w, http.StatusBadRequest, ErrMsgEmailPasswordRequired)
			return
		}

		session, err := authService.Login(r.Context(), email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNotAuthorized):
				metrics.RecordLoginFailure("not_authorized")
			case errors.Is(err, domain.ErrInvalidCredentials):
				metrics.RecordLoginFailure("bad_credentials")
			default:
				metrics.RecordLoginFailure("internal")
			}
			respondServiceError(w, r, "Login", err)
			return
		}

		log.Debug("Session issued", "email", session.Email)
		respondJSON(w, http.StatusOK, LoginResponse{
			Success: true,
			User:    LoginUser{ID: session.Email, Email: session.Email},
			Session: LoginSession{AccessToken: session.Token, ExpiresAt: session.ExpiresAt},
		})
	}
}
