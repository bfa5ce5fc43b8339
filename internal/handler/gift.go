package handler

import (
	"net/http"
	"strconv"

	"github.com/reverseludo/admin-api/internal/auth"
	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/gift"
)

// SendGiftRequest represents one admin gift delivery.
type SendGiftRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	GiftType string `json:"gift_type" validate:"required,gift_type"`
	ItemID   string `json:"item_id"`
	Amount   int64  `json:"amount"`
	Message  string `json:"message"`
}

// SendGiftResponse wraps the delivered gift.
type SendGiftResponse struct {
	Success bool         `json:"success"`
	Gift    *gift.Result `json:"gift"`
}

// HandleSendGift delivers an item, coin, or diamond gift to one player.
func HandleSendGift(giftService gift.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SendGiftRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Send gift"); err != nil {
			return
		}

		result, err := giftService.SendGift(r.Context(), gift.Request{
			AdminID:  auth.AdminFromContext(r.Context()),
			UserID:   req.UserID,
			GiftType: domain.GiftType(req.GiftType),
			ItemID:   req.ItemID,
			Amount:   req.Amount,
			Message:  req.Message,
		})
		if err != nil {
			respondServiceError(w, r, "Send gift", err)
			return
		}

		respondJSON(w, http.StatusOK, SendGiftResponse{Success: true, Gift: result})
	}
}

// HandleGiftHistory returns recent gift deliveries, newest first.
func HandleGiftHistory(giftService gift.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := GetOptionalQueryParam(r, "limit", ""); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
				return
			}
			limit = parsed
		}

		records, err := giftService.History(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, "Gift history", err)
			return
		}

		respondJSON(w, http.StatusOK, records)
	}
}
