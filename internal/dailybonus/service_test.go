package dailybonus

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/reverseludo/admin-api/internal/domain"
)

type mockBonusRepo struct {
	mock.Mock
}

func (m *mockBonusRepo) ListRewards(ctx context.Context) ([]domain.DailyBonusReward, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyBonusReward), args.Error(1)
}

func (m *mockBonusRepo) GetRewardByID(ctx context.Context, id int64) (*domain.DailyBonusReward, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyBonusReward), args.Error(1)
}

func (m *mockBonusRepo) InsertReward(ctx context.Context, reward *domain.DailyBonusReward) error {
	return m.Called(ctx, reward).Error(0)
}

func (m *mockBonusRepo) UpdateReward(ctx context.Context, reward *domain.DailyBonusReward) error {
	return m.Called(ctx, reward).Error(0)
}

func (m *mockBonusRepo) DeleteReward(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockInventoryRepo struct {
	mock.Mock
}

func (m *mockInventoryRepo) ListItems(ctx context.Context, itemType domain.ItemType) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, itemType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *mockInventoryRepo) GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *mockInventoryRepo) InsertItem(ctx context.Context, item *domain.InventoryItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockInventoryRepo) DeleteItem(ctx context.Context, itemID string) error {
	return m.Called(ctx, itemID).Error(0)
}

type stubStore struct {
	lastKey string
}

func (s *stubStore) Save(_ context.Context, key string, r io.Reader) (string, error) {
	io.Copy(io.Discard, r)
	s.lastKey = key
	return "http://localhost:8080/media/" + key, nil
}

func (s *stubStore) Delete(_ context.Context, _ string) error { return nil }
func (s *stubStore) URL(key string) string                    { return "http://localhost:8080/media/" + key }

func TestCreateReward(t *testing.T) {
	t.Run("rejects day outside 1..7", func(t *testing.T) {
		svc := NewService(new(mockBonusRepo), new(mockInventoryRepo), &stubStore{})

		for _, day := range []int{0, 8, -1, 100} {
			_, err := svc.CreateReward(context.Background(), RewardInput{
				DayNumber: day, BonusType: domain.BonusTypeCoin, Quantity: 100,
			})
			assert.ErrorIs(t, err, domain.ErrDayOutOfRange, "day %d", day)
		}
	})

	t.Run("creates plain coin reward", func(t *testing.T) {
		repo := new(mockBonusRepo)
		repo.On("InsertReward", mock.Anything, mock.MatchedBy(func(r *domain.DailyBonusReward) bool {
			return r.DayNumber == 3 && r.BonusType == domain.BonusTypeCoin && r.Quantity == 500
		})).Return(nil)

		svc := NewService(repo, new(mockInventoryRepo), &stubStore{})
		reward, err := svc.CreateReward(context.Background(), RewardInput{
			DayNumber: 3, BonusType: domain.BonusTypeCoin, Quantity: 500, IsActive: true,
		})

		require.NoError(t, err)
		assert.True(t, reward.IsActive)
		repo.AssertExpectations(t)
	})

	t.Run("token reward requires style", func(t *testing.T) {
		svc := NewService(new(mockBonusRepo), new(mockInventoryRepo), &stubStore{})
		_, err := svc.CreateReward(context.Background(), RewardInput{
			DayNumber: 2, BonusType: domain.BonusTypeToken, Quantity: 1,
		})
		assert.ErrorIs(t, err, domain.ErrStyleRequired)
	})

	t.Run("token reward derives preview via fallback chain", func(t *testing.T) {
		inv := new(mockInventoryRepo)
		inv.On("GetItemByID", mock.Anything, "token_42_ab").Return(&domain.InventoryItem{
			ItemID:   "token_42_ab",
			ItemType: domain.ItemTypeToken,
			// No red; blue should win per the chain order
			ItemImages: map[string]string{
				"green": "url-green",
				"blue":  "url-blue",
			},
		}, nil)

		repo := new(mockBonusRepo)
		repo.On("InsertReward", mock.Anything, mock.MatchedBy(func(r *domain.DailyBonusReward) bool {
			return r.ItemImageURL == "url-blue" && r.Quantity == 0 && r.TokenStyle == "token_42_ab"
		})).Return(nil)

		svc := NewService(repo, inv, &stubStore{})
		reward, err := svc.CreateReward(context.Background(), RewardInput{
			DayNumber: 7, BonusType: domain.BonusTypeToken, Quantity: 99, TokenStyle: "token_42_ab",
		})

		require.NoError(t, err)
		assert.Equal(t, "url-blue", reward.ItemImageURL)
		assert.Zero(t, reward.Quantity, "item rewards carry no quantity")
		repo.AssertExpectations(t)
	})

	t.Run("board reward prefers 4playerBoard", func(t *testing.T) {
		inv := new(mockInventoryRepo)
		inv.On("GetItemByID", mock.Anything, "board_7_cd").Return(&domain.InventoryItem{
			ItemID:   "board_7_cd",
			ItemType: domain.ItemTypeBoard,
			ItemImages: map[string]string{
				"board":        "url-generic",
				"4playerBoard": "url-4p",
			},
		}, nil)

		repo := new(mockBonusRepo)
		repo.On("InsertReward", mock.Anything, mock.Anything).Return(nil)

		svc := NewService(repo, inv, &stubStore{})
		reward, err := svc.CreateReward(context.Background(), RewardInput{
			DayNumber: 5, BonusType: domain.BonusTypeBoard, TokenStyle: "board_7_cd",
		})

		require.NoError(t, err)
		assert.Equal(t, "url-4p", reward.ItemImageURL)
	})

	t.Run("missing referenced item propagates not found", func(t *testing.T) {
		inv := new(mockInventoryRepo)
		inv.On("GetItemByID", mock.Anything, "gone").Return(nil, domain.ErrItemNotFound)

		svc := NewService(new(mockBonusRepo), inv, &stubStore{})
		_, err := svc.CreateReward(context.Background(), RewardInput{
			DayNumber: 1, BonusType: domain.BonusTypeToken, TokenStyle: "gone",
		})
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("duplicate day surfaces ErrDayTaken from the repository", func(t *testing.T) {
		repo := new(mockBonusRepo)
		repo.On("InsertReward", mock.Anything, mock.Anything).Return(domain.ErrDayTaken)

		svc := NewService(repo, new(mockInventoryRepo), &stubStore{})
		_, err := svc.CreateReward(context.Background(), RewardInput{
			DayNumber: 4, BonusType: domain.BonusTypeDiamond, Quantity: 5,
		})
		assert.ErrorIs(t, err, domain.ErrDayTaken)
	})
}

func TestUpdateReward(t *testing.T) {
	t.Run("keeps stored image when none uploaded", func(t *testing.T) {
		repo := new(mockBonusRepo)
		repo.On("GetRewardByID", mock.Anything, int64(9)).Return(&domain.DailyBonusReward{
			ID: 9, DayNumber: 2, BonusType: domain.BonusTypeCoin, ItemImageURL: "old-url",
		}, nil)
		repo.On("UpdateReward", mock.Anything, mock.MatchedBy(func(r *domain.DailyBonusReward) bool {
			return r.ID == 9 && r.ItemImageURL == "old-url" && r.Quantity == 750
		})).Return(nil)

		svc := NewService(repo, new(mockInventoryRepo), &stubStore{})
		reward, err := svc.UpdateReward(context.Background(), 9, RewardInput{
			DayNumber: 2, BonusType: domain.BonusTypeCoin, Quantity: 750, IsActive: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "old-url", reward.ItemImageURL)
		repo.AssertExpectations(t)
	})

	t.Run("recomputes preview when style changes", func(t *testing.T) {
		repo := new(mockBonusRepo)
		repo.On("GetRewardByID", mock.Anything, int64(3)).Return(&domain.DailyBonusReward{
			ID: 3, DayNumber: 6, BonusType: domain.BonusTypeToken,
			TokenStyle: "token_old", ItemImageURL: "old-preview",
		}, nil)
		repo.On("UpdateReward", mock.Anything, mock.MatchedBy(func(r *domain.DailyBonusReward) bool {
			return r.TokenStyle == "token_new" && r.ItemImageURL == "url-red"
		})).Return(nil)

		inv := new(mockInventoryRepo)
		inv.On("GetItemByID", mock.Anything, "token_new").Return(&domain.InventoryItem{
			ItemImages: map[string]string{"red": "url-red"},
		}, nil)

		svc := NewService(repo, inv, &stubStore{})
		_, err := svc.UpdateReward(context.Background(), 3, RewardInput{
			DayNumber: 6, BonusType: domain.BonusTypeToken, TokenStyle: "token_new",
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("missing reward propagates not found", func(t *testing.T) {
		repo := new(mockBonusRepo)
		repo.On("GetRewardByID", mock.Anything, int64(404)).Return(nil, domain.ErrRewardNotFound)

		svc := NewService(repo, new(mockInventoryRepo), &stubStore{})
		_, err := svc.UpdateReward(context.Background(), 404, RewardInput{
			DayNumber: 1, BonusType: domain.BonusTypeCoin,
		})
		assert.ErrorIs(t, err, domain.ErrRewardNotFound)
	})
}

func TestPreviewImageFallbacks(t *testing.T) {
	t.Run("falls back to any stored image when chain misses", func(t *testing.T) {
		url := domain.PreviewImage(domain.BonusTypeToken, map[string]string{"orange": "url-orange"})
		assert.Equal(t, "url-orange", url)
	})

	t.Run("empty map yields empty url", func(t *testing.T) {
		assert.Empty(t, domain.PreviewImage(domain.BonusTypeToken, nil))
	})

	t.Run("non-item bonus has no preview", func(t *testing.T) {
		assert.Empty(t, domain.PreviewImage(domain.BonusTypeCoin, map[string]string{"red": "x"}))
	})
}
