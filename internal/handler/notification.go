package handler

import (
	"net/http"

	"github.com/reverseludo/admin-api/internal/notification"
)

// BroadcastRequest represents an admin notification broadcast body.
type BroadcastRequest struct {
	Title        string   `json:"title" validate:"required"`
	Message      string   `json:"message" validate:"required"`
	Type         string   `json:"type"`
	TournamentID string   `json:"tournament_id"`
	TargetUsers  []string `json:"target_users"`
}

// HandleListNotifications returns the most recent notifications.
func HandleListNotifications(notificationService notification.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notifications, err := notificationService.ListRecent(r.Context())
		if err != nil {
			respondServiceError(w, r, "List notifications", err)
			return
		}

		respondJSON(w, http.StatusOK, notifications)
	}
}

// HandleBroadcastNotification fans a notification out to the resolved
// target users.
func HandleBroadcastNotification(notificationService notification.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BroadcastRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Broadcast notification"); err != nil {
			return
		}

		result, err := notificationService.Broadcast(r.Context(), notification.BroadcastInput{
			Title:        req.Title,
			Message:      req.Message,
			Type:         req.Type,
			TournamentID: req.TournamentID,
			TargetUsers:  req.TargetUsers,
		})
		if err != nil {
			respondServiceError(w, r, "Broadcast notification", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
