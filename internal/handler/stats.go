package handler

import (
	"net/http"

	"github.com/reverseludo/admin-api/internal/stats"
)

// HandleGetStats returns the dashboard overview aggregates.
func HandleGetStats(statsService stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := statsService.GetDashboardStats(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get stats", err)
			return
		}

		respondJSON(w, http.StatusOK, dashboard)
	}
}
