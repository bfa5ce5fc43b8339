package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reverseludo/admin-api/internal/chat"
	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/repository"
)

// ChatMessageRequest represents an admin reply body.
type ChatMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatStatusRequest represents a thread status change body.
type ChatStatusRequest struct {
	Status string `json:"status" validate:"required,chat_status"`
}

// HandleListChats returns support threads, optionally filtered by
// ?filter=unread|open|closed.
func HandleListChats(chatService chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := GetOptionalQueryParam(r, "filter", "")

		chats, err := chatService.ListChats(r.Context(), repository.ChatFilter(filter))
		if err != nil {
			respondServiceError(w, r, "List chats", err)
			return
		}

		respondJSON(w, http.StatusOK, chats)
	}
}

// HandleGetChatMessages returns a thread's messages and clears its unread
// flag.
func HandleGetChatMessages(chatService chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chatID := chi.URLParam(r, "chatID")

		messages, err := chatService.OpenThread(r.Context(), chatID)
		if err != nil {
			respondServiceError(w, r, "Open chat", err)
			return
		}

		respondJSON(w, http.StatusOK, messages)
	}
}

// HandleSendChatMessage appends an admin reply to a thread.
func HandleSendChatMessage(chatService chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chatID := chi.URLParam(r, "chatID")

		var req ChatMessageRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Send chat message"); err != nil {
			return
		}

		msg, err := chatService.SendMessage(r.Context(), chatID, req.Message)
		if err != nil {
			respondServiceError(w, r, "Send chat message", err)
			return
		}

		respondJSON(w, http.StatusCreated, msg)
	}
}

// HandleSetChatStatus opens or closes a thread.
func HandleSetChatStatus(chatService chat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chatID := chi.URLParam(r, "chatID")

		var req ChatStatusRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set chat status"); err != nil {
			return
		}

		updated, err := chatService.SetStatus(r.Context(), chatID, domain.ChatStatus(req.Status))
		if err != nil {
			respondServiceError(w, r, "Set chat status", err)
			return
		}

		respondJSON(w, http.StatusOK, updated)
	}
}
