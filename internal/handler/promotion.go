package handler

import (
	"net/http"

	"github.com/reverseludo/admin-api/internal/promotion"
)

// decodePromotionForm reads the shared multipart fields of a create or
// update promotion request.
func decodePromotionForm(r *http.Request) promotion.Input {
	input := promotion.Input{
		AppName:      r.FormValue("app_name"),
		Description:  r.FormValue("description"),
		StoreURL:     r.FormValue("store_url"),
		IsActive:     r.FormValue("is_active") != "false",
		DisplayOrder: formInt(r, "display_order"),
	}

	if file, header, err := r.FormFile("image"); err == nil {
		input.ImageFilename = header.Filename
		input.Image = file
	}

	return input
}

// HandleListPromotions returns promoted apps ordered by display order.
func HandleListPromotions(promotionService promotion.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		promotions, err := promotionService.ListPromotions(r.Context())
		if err != nil {
			respondServiceError(w, r, "List promotions", err)
			return
		}

		respondJSON(w, http.StatusOK, promotions)
	}
}

// HandleCreatePromotion creates a promoted app from a multipart form.
func HandleCreatePromotion(promotionService promotion.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !parseMultipart(r, w, "Create promotion") {
			return
		}

		input := decodePromotionForm(r)
		if closer, ok := input.Image.(interface{ Close() error }); ok {
			defer closer.Close()
		}

		created, err := promotionService.CreatePromotion(r.Context(), input)
		if err != nil {
			respondServiceError(w, r, "Create promotion", err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleUpdatePromotion updates a promoted app, keeping the stored image
// when no new file is attached.
func HandleUpdatePromotion(promotionService promotion.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetInt64QueryParam(r, w, "id")
		if !ok {
			return
		}

		if !parseMultipart(r, w, "Update promotion") {
			return
		}

		input := decodePromotionForm(r)
		if closer, ok := input.Image.(interface{ Close() error }); ok {
			defer closer.Close()
		}

		updated, err := promotionService.UpdatePromotion(r.Context(), id, input)
		if err != nil {
			respondServiceError(w, r, "Update promotion", err)
			return
		}

		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleDeletePromotion removes a promoted app.
func HandleDeletePromotion(promotionService promotion.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetInt64QueryParam(r, w, "id")
		if !ok {
			return
		}

		if err := promotionService.DeletePromotion(r.Context(), id); err != nil {
			respondServiceError(w, r, "Delete promotion", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: MsgPromotionDeletedSuccess})
	}
}
