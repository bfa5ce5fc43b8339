package handler

import (
	"net/http"

	"github.com/reverseludo/admin-api/internal/dare"
	"github.com/reverseludo/admin-api/internal/domain"
)

// DareRequest represents a dare create or update body.
type DareRequest struct {
	ID       string `json:"id"`
	DareText string `json:"dare_text" validate:"required"`
	Category string `json:"category" validate:"required"`
	IsActive bool   `json:"is_active"`
}

// HandleListDares returns dare prompts, newest first.
func HandleListDares(dareService dare.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dares, err := dareService.ListDares(r.Context())
		if err != nil {
			respondServiceError(w, r, "List dares", err)
			return
		}

		respondJSON(w, http.StatusOK, dares)
	}
}

// HandleCreateDare creates a dare prompt.
func HandleCreateDare(dareService dare.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DareRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create dare"); err != nil {
			return
		}

		created, err := dareService.CreateDare(r.Context(), dare.Input{
			DareText: req.DareText,
			Category: domain.DareCategory(req.Category),
			IsActive: req.IsActive,
		})
		if err != nil {
			respondServiceError(w, r, "Create dare", err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleUpdateDare updates a dare prompt by id.
func HandleUpdateDare(dareService dare.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DareRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update dare"); err != nil {
			return
		}
		if req.ID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		updated, err := dareService.UpdateDare(r.Context(), req.ID, dare.Input{
			DareText: req.DareText,
			Category: domain.DareCategory(req.Category),
			IsActive: req.IsActive,
		})
		if err != nil {
			respondServiceError(w, r, "Update dare", err)
			return
		}

		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleDeleteDare removes a dare prompt.
func HandleDeleteDare(dareService dare.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetQueryParam(r, w, "id")
		if !ok {
			return
		}

		if err := dareService.DeleteDare(r.Context(), id); err != nil {
			respondServiceError(w, r, "Delete dare", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: MsgDareDeletedSuccess})
	}
}
