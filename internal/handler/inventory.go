package handler

import (
	"net/http"
	"strconv"

	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/inventory"
	"github.com/reverseludo/admin-api/internal/logger"
)

// HandleListItems returns inventory items, optionally filtered by ?type=.
func HandleListItems(inventoryService inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemType := GetOptionalQueryParam(r, "type", "")

		items, err := inventoryService.ListItems(r.Context(), itemType)
		if err != nil {
			respondServiceError(w, r, "List items", err)
			return
		}

		respondJSON(w, http.StatusOK, items)
	}
}

// HandleCreateItem creates an inventory item from a multipart form. Text
// fields: item_name, item_type, item_price. Every file field whose name is a
// recognized slot for the item type becomes one stored image.
func HandleCreateItem(inventoryService inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if !parseMultipart(r, w, "Create item") {
			return
		}

		name := r.FormValue("item_name")
		itemType := r.FormValue("item_type")
		if name == "" || itemType == "" {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		price := 0
		if raw := r.FormValue("item_price"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidPrice)
				return
			}
			price = parsed
		}

		var uploads []inventory.Upload
		var openFiles []interface{ Close() error }
		defer func() {
			for _, f := range openFiles {
				f.Close()
			}
		}()

		for slot, headers := range r.MultipartForm.File {
			if len(headers) == 0 {
				continue
			}
			file, err := headers[0].Open()
			if err != nil {
				log.Warn("Failed to open uploaded file", "slot", slot, "error", err)
				respondError(w, http.StatusBadRequest, ErrMsgInvalidMultipart)
				return
			}
			openFiles = append(openFiles, file)
			uploads = append(uploads, inventory.Upload{
				Slot:     slot,
				Filename: headers[0].Filename,
				Data:     file,
			})
		}

		item, err := inventoryService.CreateItem(r.Context(), name, domain.ItemType(itemType), price, uploads)
		if err != nil {
			respondServiceError(w, r, "Create item", err)
			return
		}

		respondJSON(w, http.StatusCreated, item)
	}
}

// HandleDeleteItem removes an item row and its stored images.
func HandleDeleteItem(inventoryService inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := GetQueryParam(r, w, "item_id")
		if !ok {
			return
		}

		if err := inventoryService.DeleteItem(r.Context(), itemID); err != nil {
			respondServiceError(w, r, "Delete item", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: MsgItemDeletedSuccess})
	}
}
