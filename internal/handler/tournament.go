package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/logger"
	"github.com/reverseludo/admin-api/internal/repository"
	"github.com/reverseludo/admin-api/internal/tournament"
)

// UpdateTournamentRequest represents a tournament PATCH. Nil fields are left
// unchanged.
type UpdateTournamentRequest struct {
	ID                     string  `json:"id" validate:"required"`
	Name                   *string `json:"name"`
	Status                 *string `json:"status"`
	EntryFee               *int    `json:"entry_fee"`
	RewardAmount           *int    `json:"reward_amount"`
	RewardType             *string `json:"reward_type"`
	MaxPlayers             *int    `json:"max_players"`
	TournamentStartingTime *string `json:"tournament_starting_time"`
	BannerURL              *string `json:"banner_url"`
}

// HandleListTournaments returns tournaments ordered by starting time.
func HandleListTournaments(tournamentService tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tournaments, err := tournamentService.ListTournaments(r.Context())
		if err != nil {
			respondServiceError(w, r, "List tournaments", err)
			return
		}

		respondJSON(w, http.StatusOK, tournaments)
	}
}

// HandleGetTournament returns one tournament with its bracket state.
func HandleGetTournament(tournamentService tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetQueryParam(r, w, "id")
		if !ok {
			return
		}

		t, err := tournamentService.GetTournament(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get tournament", err)
			return
		}

		respondJSON(w, http.StatusOK, t)
	}
}

// HandleCreateTournament creates a tournament from a multipart form with an
// optional banner file.
func HandleCreateTournament(tournamentService tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if !parseMultipart(r, w, "Create tournament") {
			return
		}

		name := r.FormValue("name")
		if name == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		startingTime, err := time.Parse(time.RFC3339, r.FormValue("tournament_starting_time"))
		if err != nil {
			log.Warn("Invalid tournament_starting_time field",
				"value", r.FormValue("tournament_starting_time"))
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		input := tournament.CreateInput{
			Name:         name,
			EntryFee:     formInt(r, "entry_fee"),
			RewardAmount: formInt(r, "reward_amount"),
			RewardType:   r.FormValue("reward_type"),
			MaxPlayers:   formInt(r, "max_players"),
			StartingTime: startingTime,
			Status:       domain.TournamentStatus(r.FormValue("status")),
		}

		if file, header, err := r.FormFile("banner"); err == nil {
			defer file.Close()
			input.Banner = file
			input.BannerFilename = header.Filename
		}

		t, err := tournamentService.CreateTournament(r.Context(), input)
		if err != nil {
			respondServiceError(w, r, "Create tournament", err)
			return
		}

		respondJSON(w, http.StatusCreated, t)
	}
}

// HandleUpdateTournament applies a partial update, including manual status
// moves.
func HandleUpdateTournament(tournamentService tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateTournamentRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update tournament"); err != nil {
			return
		}

		updates := repository.TournamentUpdate{
			Name:                   req.Name,
			EntryFee:               req.EntryFee,
			RewardAmount:           req.RewardAmount,
			RewardType:             req.RewardType,
			MaxPlayers:             req.MaxPlayers,
			TournamentStartingTime: req.TournamentStartingTime,
			BannerURL:              req.BannerURL,
		}
		if req.Status != nil {
			status := domain.TournamentStatus(*req.Status)
			updates.Status = &status
		}

		t, err := tournamentService.UpdateTournament(r.Context(), req.ID, updates)
		if err != nil {
			respondServiceError(w, r, "Update tournament", err)
			return
		}

		respondJSON(w, http.StatusOK, t)
	}
}

// HandleDeleteTournament removes a tournament.
func HandleDeleteTournament(tournamentService tournament.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetQueryParam(r, w, "id")
		if !ok {
			return
		}

		if err := tournamentService.DeleteTournament(r.Context(), id); err != nil {
			respondServiceError(w, r, "Delete tournament", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: MsgTournamentDeletedSuccess})
	}
}

// formInt reads an integer form value, treating blank or malformed input
// as zero.
func formInt(r *http.Request, field string) int {
	value, err := strconv.Atoi(r.FormValue(field))
	if err != nil {
		return 0
	}
	return value
}
