package promotion

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/reverseludo/admin-api/internal/domain"
)

type mockPromotionRepo struct {
	mock.Mock
}

func (m *mockPromotionRepo) ListPromotions(ctx context.Context) ([]domain.PromotionApp, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PromotionApp), args.Error(1)
}

func (m *mockPromotionRepo) InsertPromotion(ctx context.Context, p *domain.PromotionApp) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPromotionRepo) UpdatePromotion(ctx context.Context, p *domain.PromotionApp) (*domain.PromotionApp, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PromotionApp), args.Error(1)
}

func (m *mockPromotionRepo) DeletePromotion(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// fakeStore records saved keys in memory.
type fakeStore struct {
	saved map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: make(map[string]string)}
}

func (f *fakeStore) Save(_ context.Context, key string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.saved[key] = string(data)
	return "http://localhost:8080/media/" + key, nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	delete(f.saved, key)
	return nil
}

func (f *fakeStore) URL(key string) string {
	return "http://localhost:8080/media/" + key
}

func newTestService(repo *mockPromotionRepo, store *fakeStore) *service {
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &service{repo: repo, store: store, now: func() time.Time { return fixed }}
}

func TestCreatePromotion(t *testing.T) {
	t.Run("uploads image and inserts", func(t *testing.T) {
		repo := new(mockPromotionRepo)
		repo.On("InsertPromotion", mock.Anything, mock.MatchedBy(func(p *domain.PromotionApp) bool {
			return p.AppName == "Word Rush" && strings.Contains(p.MainImage, "promotion-images/")
		})).Return(nil)

		store := newFakeStore()
		svc := newTestService(repo, store)
		promo, err := svc.CreatePromotion(context.Background(), Input{
			AppName:       "Word Rush",
			StoreURL:      "https://play.example.com/wordrush",
			IsActive:      true,
			DisplayOrder:  1,
			ImageFilename: "banner.jpg",
			Image:         strings.NewReader("jpeg-bytes"),
		})

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(promo.MainImage, ".jpg"))
		assert.Len(t, store.saved, 1)
		repo.AssertExpectations(t)
	})

	t.Run("image is optional", func(t *testing.T) {
		repo := new(mockPromotionRepo)
		repo.On("InsertPromotion", mock.Anything, mock.Anything).Return(nil)

		store := newFakeStore()
		svc := newTestService(repo, store)
		promo, err := svc.CreatePromotion(context.Background(), Input{AppName: "Word Rush"})

		require.NoError(t, err)
		assert.Empty(t, promo.MainImage)
		assert.Empty(t, store.saved)
	})

	t.Run("rejects blank app name", func(t *testing.T) {
		repo := new(mockPromotionRepo)
		svc := newTestService(repo, newFakeStore())

		_, err := svc.CreatePromotion(context.Background(), Input{AppName: "   "})

		assert.ErrorIs(t, err, domain.ErrInvalidPromotion)
		repo.AssertNotCalled(t, "InsertPromotion", mock.Anything, mock.Anything)
	})
}

func TestUpdatePromotion(t *testing.T) {
	t.Run("without a new image the existing one is kept", func(t *testing.T) {
		repo := new(mockPromotionRepo)
		repo.On("UpdatePromotion", mock.Anything, mock.MatchedBy(func(p *domain.PromotionApp) bool {
			return p.ID == 7 && p.MainImage == ""
		})).Return(&domain.PromotionApp{
			ID: 7, AppName: "Word Rush", MainImage: "http://localhost:8080/media/promotion-images/old.png",
		}, nil)

		svc := newTestService(repo, newFakeStore())
		updated, err := svc.UpdatePromotion(context.Background(), 7, Input{AppName: "Word Rush", IsActive: false})

		require.NoError(t, err)
		assert.Contains(t, updated.MainImage, "old.png")
		repo.AssertExpectations(t)
	})

	t.Run("missing promotion propagates not found", func(t *testing.T) {
		repo := new(mockPromotionRepo)
		repo.On("UpdatePromotion", mock.Anything, mock.Anything).Return(nil, domain.ErrPromotionNotFound)

		svc := newTestService(repo, newFakeStore())
		_, err := svc.UpdatePromotion(context.Background(), 99, Input{AppName: "Ghost"})

		assert.ErrorIs(t, err, domain.ErrPromotionNotFound)
	})
}

func TestDeletePromotion(t *testing.T) {
	repo := new(mockPromotionRepo)
	repo.On("DeletePromotion", mock.Anything, int64(7)).Return(nil)

	svc := newTestService(repo, newFakeStore())
	require.NoError(t, svc.DeletePromotion(context.Background(), 7))
	repo.AssertExpectations(t)
}
