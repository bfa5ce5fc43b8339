package handler

import (
	"net/http"

	"github.com/reverseludo/admin-api/internal/user"
)

// UpdateBalancesRequest represents the admin balance edit body. Nil fields
// are left untouched; set fields are absolute values, not deltas.
type UpdateBalancesRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Coins    *int64 `json:"coins"`
	Diamonds *int64 `json:"diamonds"`
}

// HandleGetUsers returns all players, newest first.
func HandleGetUsers(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := userService.ListUsers(r.Context())
		if err != nil {
			respondServiceError(w, r, "List users", err)
			return
		}

		respondJSON(w, http.StatusOK, users)
	}
}

// HandleUpdateBalances sets a player's coin and diamond balances.
func HandleUpdateBalances(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateBalancesRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update balances"); err != nil {
			return
		}

		summary, err := userService.UpdateBalances(r.Context(), req.UserID, user.BalanceUpdate{
			Coins:    req.Coins,
			Diamonds: req.Diamonds,
		})
		if err != nil {
			respondServiceError(w, r, "Update balances", err)
			return
		}

		respondJSON(w, http.StatusOK, summary)
	}
}
