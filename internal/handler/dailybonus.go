package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/reverseludo/admin-api/internal/dailybonus"
	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/logger"
)

// HandleListRewards returns the 7-day reward calendar ordered by day.
func HandleListRewards(bonusService dailybonus.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rewards, err := bonusService.ListRewards(r.Context())
		if err != nil {
			respondServiceError(w, r, "List rewards", err)
			return
		}

		respondJSON(w, http.StatusOK, rewards)
	}
}

// decodeRewardForm reads the shared multipart fields of a create or update
// reward request. The returned closer is non-nil when an image was attached.
func decodeRewardForm(r *http.Request, w http.ResponseWriter) (dailybonus.RewardInput, multipart.File, bool) {
	log := logger.FromContext(r.Context())
	var input dailybonus.RewardInput

	dayNumber, err := strconv.Atoi(r.FormValue("day_number"))
	if err != nil {
		log.Warn("Invalid day_number field", "value", r.FormValue("day_number"))
		respondError(w, http.StatusBadRequest, ErrMsgInvalidDayNumber)
		return input, nil, false
	}

	input.DayNumber = dayNumber
	input.BonusType = domain.BonusType(r.FormValue("bonus_type"))
	input.TokenStyle = r.FormValue("token_style")
	input.IsActive = r.FormValue("is_active") != "false"

	if raw := r.FormValue("quantity"); raw != "" {
		if quantity, err := strconv.Atoi(raw); err == nil {
			input.Quantity = quantity
		}
	}
	if raw := r.FormValue("duration_days"); raw != "" {
		if days, err := strconv.Atoi(raw); err == nil {
			input.DurationDays = &days
		}
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		input.ImageFilename = header.Filename
		input.Image = file
		return input, file, true
	}

	return input, nil, true
}

// HandleCreateReward creates one calendar day from a multipart form.
func HandleCreateReward(bonusService dailybonus.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !parseMultipart(r, w, "Create reward") {
			return
		}

		input, file, ok := decodeRewardForm(r, w)
		if !ok {
			return
		}
		if file != nil {
			defer file.Close()
		}

		reward, err := bonusService.CreateReward(r.Context(), input)
		if err != nil {
			respondServiceError(w, r, "Create reward", err)
			return
		}

		respondJSON(w, http.StatusCreated, reward)
	}
}

// HandleUpdateReward updates one calendar day from a multipart form.
func HandleUpdateReward(bonusService dailybonus.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetInt64QueryParam(r, w, "id")
		if !ok {
			return
		}

		if !parseMultipart(r, w, "Update reward") {
			return
		}

		input, file, ok := decodeRewardForm(r, w)
		if !ok {
			return
		}
		if file != nil {
			defer file.Close()
		}

		reward, err := bonusService.UpdateReward(r.Context(), id, input)
		if err != nil {
			respondServiceError(w, r, "Update reward", err)
			return
		}

		respondJSON(w, http.StatusOK, reward)
	}
}

// HandleDeleteReward removes one calendar day.
func HandleDeleteReward(bonusService dailybonus.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetInt64QueryParam(r, w, "id")
		if !ok {
			return
		}

		if err := bonusService.DeleteReward(r.Context(), id); err != nil {
			respondServiceError(w, r, "Delete reward", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: MsgRewardDeletedSuccess})
	}
}
