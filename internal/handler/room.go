package handler

import (
	"net/http"

	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/room"
)

// HandleListRooms returns live game and tournament rooms.
func HandleListRooms(roomService room.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rooms, err := roomService.ListRooms(r.Context())
		if err != nil {
			respondServiceError(w, r, "List rooms", err)
			return
		}

		respondJSON(w, http.StatusOK, rooms)
	}
}

// HandleDeleteRoom removes a stale room by id and kind.
func HandleDeleteRoom(roomService room.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetInt64QueryParam(r, w, "id")
		if !ok {
			return
		}
		kind, ok := GetQueryParam(r, w, "kind")
		if !ok {
			return
		}

		if err := roomService.DeleteRoom(r.Context(), domain.RoomKind(kind), id); err != nil {
			respondServiceError(w, r, "Delete room", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: MsgRoomDeletedSuccess})
	}
}
