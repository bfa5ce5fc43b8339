package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/inventory"
)

type mockInventoryService struct {
	mock.Mock
}

func (m *mockInventoryService) ListItems(ctx context.Context, itemType string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, itemType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *mockInventoryService) GetItem(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *mockInventoryService) CreateItem(ctx context.Context, name string, itemType domain.ItemType, price int, uploads []inventory.Upload) (*domain.InventoryItem, error) {
	args := m.Called(ctx, name, itemType, price, uploads)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *mockInventoryService) DeleteItem(ctx context.Context, itemID string) error {
	return m.Called(ctx, itemID).Error(0)
}

// multipartBody builds a multipart form with text fields and file parts.
func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	for name, content := range files {
		part, err := writer.CreateFormFile(name, name+".png")
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestHandleListItems(t *testing.T) {
	t.Run("passes type filter through", func(t *testing.T) {
		svc := new(mockInventoryService)
		svc.On("ListItems", mock.Anything, "dice").
			Return([]domain.InventoryItem{{ItemID: "dice_1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory?type=dice", nil)
		w := httptest.NewRecorder()
		HandleListItems(svc)(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var items []domain.InventoryItem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
		assert.Len(t, items, 1)
	})

	t.Run("bogus filter returns 400", func(t *testing.T) {
		svc := new(mockInventoryService)
		svc.On("ListItems", mock.Anything, "sticker").Return(nil, domain.ErrInvalidItemType)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/inventory?type=sticker", nil)
		w := httptest.NewRecorder()
		HandleListItems(svc)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleCreateItem(t *testing.T) {
	t.Run("forwards fields and file slots", func(t *testing.T) {
		svc := new(mockInventoryService)
		svc.On("CreateItem", mock.Anything, "Crimson Set", domain.ItemTypeToken, 500,
			mock.MatchedBy(func(uploads []inventory.Upload) bool {
				return len(uploads) == 2
			})).Return(&domain.InventoryItem{ItemID: "token_1_ab12"}, nil)

		body, contentType := multipartBody(t,
			map[string]string{"item_name": "Crimson Set", "item_type": "token", "item_price": "500"},
			map[string]string{"red": "r", "blue": "b"})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		HandleCreateItem(svc)(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("missing name returns 400", func(t *testing.T) {
		svc := new(mockInventoryService)

		body, contentType := multipartBody(t,
			map[string]string{"item_type": "token"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		HandleCreateItem(svc)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "CreateItem",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no recognized slots returns 400", func(t *testing.T) {
		svc := new(mockInventoryService)
		svc.On("CreateItem", mock.Anything, "Empty", domain.ItemTypeBoard, 0, mock.Anything).
			Return(nil, domain.ErrNoSlotsProvided)

		body, contentType := multipartBody(t,
			map[string]string{"item_name": "Empty", "item_type": "board"},
			map[string]string{"not-a-slot": "x"})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/inventory", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		HandleCreateItem(svc)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNoSlotsProvidedError)
	})
}

func TestHandleDeleteItem(t *testing.T) {
	t.Run("deletes by item_id", func(t *testing.T) {
		svc := new(mockInventoryService)
		svc.On("DeleteItem", mock.Anything, "dice_1_ab12").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/inventory?item_id=dice_1_ab12", nil)
		w := httptest.NewRecorder()
		HandleDeleteItem(svc)(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("missing item_id returns 400", func(t *testing.T) {
		svc := new(mockInventoryService)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/inventory", nil)
		w := httptest.NewRecorder()
		HandleDeleteItem(svc)(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything)
	})

	t.Run("unknown item returns 404", func(t *testing.T) {
		svc := new(mockInventoryService)
		svc.On("DeleteItem", mock.Anything, "ghost").Return(domain.ErrItemNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/inventory?item_id=ghost", nil)
		w := httptest.NewRecorder()
		HandleDeleteItem(svc)(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
