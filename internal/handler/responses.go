package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent at this point
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing error response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	// Auth messages
	ErrMsgNotAuthorizedError      = "Access denied. Admin privileges required."
	ErrMsgInvalidCredentialsError = "Invalid email or password"

	// User messages
	ErrMsgUserNotFoundError  = "User not found"
	ErrMsgInvalidAmountError = "Amount must be positive"

	// Inventory messages
	ErrMsgItemNotFoundError    = "Item not found"
	ErrMsgNoSlotsProvidedError = "At least one image is required"
	ErrMsgInvalidItemTypeError = "Invalid item type"

	// Daily bonus messages
	ErrMsgRewardNotFoundError = "Daily bonus reward not found"
	ErrMsgDayTakenError       = "A reward already exists for that day"
	ErrMsgDayOutOfRangeError  = "Day number must be between 1 and 7"
	ErrMsgStyleRequiredError  = "Token style is required for token and board rewards"

	// Dare messages
	ErrMsgDareNotFoundError = "Dare not found"
	ErrMsgInvalidDareError  = "Dare text and a valid category are required"

	// Tournament messages
	ErrMsgTournamentNotFoundError = "Tournament not found"
	ErrMsgInvalidStatusError      = "Invalid tournament status"

	// Room messages
	ErrMsgRoomNotFoundError = "Room not found"

	// Chat messages
	ErrMsgChatNotFoundError      = "Chat not found"
	ErrMsgInvalidChatFilterError = "Invalid chat filter"
	ErrMsgInvalidChatStatusError = "Chat status must be open or closed"

	// Promotion messages
	ErrMsgPromotionNotFoundError = "Promotion not found"
	ErrMsgInvalidPromotionError  = "App name is required"

	// Gift messages
	ErrMsgInvalidGiftTypeError = "Invalid gift type"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Internal errors collapse to a generic message.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrNotAuthorized):
		return http.StatusForbidden, ErrMsgNotAuthorizedError
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrMsgInvalidCredentialsError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrNoSlotsProvided):
		return http.StatusBadRequest, ErrMsgNoSlotsProvidedError
	case errors.Is(err, domain.ErrInvalidItemType):
		return http.StatusBadRequest, ErrMsgInvalidItemTypeError
	case errors.Is(err, domain.ErrRewardNotFound):
		return http.StatusNotFound, ErrMsgRewardNotFoundError
	case errors.Is(err, domain.ErrDayTaken):
		return http.StatusBadRequest, ErrMsgDayTakenError
	case errors.Is(err, domain.ErrDayOutOfRange):
		return http.StatusBadRequest, ErrMsgDayOutOfRangeError
	case errors.Is(err, domain.ErrStyleRequired):
		return http.StatusBadRequest, ErrMsgStyleRequiredError
	case errors.Is(err, domain.ErrDareNotFound):
		return http.StatusNotFound, ErrMsgDareNotFoundError
	case errors.Is(err, domain.ErrInvalidDare):
		return http.StatusBadRequest, ErrMsgInvalidDareError
	case errors.Is(err, domain.ErrTournamentNotFound):
		return http.StatusNotFound, ErrMsgTournamentNotFoundError
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, ErrMsgInvalidStatusError
	case errors.Is(err, domain.ErrRoomNotFound):
		return http.StatusNotFound, ErrMsgRoomNotFoundError
	case errors.Is(err, domain.ErrChatNotFound):
		return http.StatusNotFound, ErrMsgChatNotFoundError
	case errors.Is(err, domain.ErrInvalidChatFilter):
		return http.StatusBadRequest, ErrMsgInvalidChatFilterError
	case errors.Is(err, domain.ErrInvalidChatStatus):
		return http.StatusBadRequest, ErrMsgInvalidChatStatusError
	case errors.Is(err, domain.ErrPromotionNotFound):
		return http.StatusNotFound, ErrMsgPromotionNotFoundError
	case errors.Is(err, domain.ErrInvalidPromotion):
		return http.StatusBadRequest, ErrMsgInvalidPromotionError
	case errors.Is(err, domain.ErrInvalidGiftType):
		return http.StatusBadRequest, ErrMsgInvalidGiftTypeError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
