package gift

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/reverseludo/admin-api/internal/domain"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockUserRepo) GetUserByUID(ctx context.Context, uid string) (*domain.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ListUserIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockUserRepo) SetBalances(ctx context.Context, uid string, coins, diamonds *int64) (*domain.User, error) {
	args := m.Called(ctx, uid, coins, diamonds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) AddCoins(ctx context.Context, uid string, amount int64) error {
	return m.Called(ctx, uid, amount).Error(0)
}

func (m *mockUserRepo) AddDiamonds(ctx context.Context, uid string, amount int64) error {
	return m.Called(ctx, uid, amount).Error(0)
}

func (m *mockUserRepo) AppendOwnedItem(ctx context.Context, uid, itemID string) error {
	return m.Called(ctx, uid, itemID).Error(0)
}

func (m *mockUserRepo) PrependMail(ctx context.Context, uid string, mail domain.Mail) error {
	return m.Called(ctx, uid, mail).Error(0)
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

type mockHistoryRepo struct {
	mock.Mock
}

func (m *mockHistoryRepo) InsertRecord(ctx context.Context, record *domain.GiftRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *mockHistoryRepo) ListRecent(ctx context.Context, limit int) ([]domain.GiftRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GiftRecord), args.Error(1)
}

func existingUser(repo *mockUserRepo, uid string) {
	repo.On("GetUserByUID", mock.Anything, uid).Return(&domain.User{UID: uid}, nil)
}

func TestSendGift_Coins(t *testing.T) {
	t.Run("adds coins, records history, delivers reward mail", func(t *testing.T) {
		users := new(mockUserRepo)
		existingUser(users, "u1")
		users.On("AddCoins", mock.Anything, "u1", int64(250)).Return(nil)
		users.On("PrependMail", mock.Anything, "u1", mock.MatchedBy(func(mail domain.Mail) bool {
			return mail.MailType == domain.MailTypeReward &&
				mail.Title == "🪙 You received 250 coins!" &&
				!mail.Seen
		})).Return(nil)

		history := new(mockHistoryRepo)
		history.On("InsertRecord", mock.Anything, mock.MatchedBy(func(r *domain.GiftRecord) bool {
			return r.GiftType == domain.GiftCoins && r.Amount == 250 && r.AdminID == "admin@x.com"
		})).Return(nil)

		svc := NewService(users, new(mockInventoryRepo), history)
		result, err := svc.SendGift(context.Background(), Request{
			AdminID: "admin@x.com", UserID: "u1", GiftType: domain.GiftCoins, Amount: 250,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(250), result.Amount)
		users.AssertExpectations(t)
		history.AssertExpectations(t)
	})

	t.Run("is not idempotent: two sends add twice", func(t *testing.T) {
		users := new(mockUserRepo)
		existingUser(users, "u1")
		users.On("AddCoins", mock.Anything, "u1", int64(100)).Return(nil).Twice()
		users.On("PrependMail", mock.Anything, "u1", mock.Anything).Return(nil).Twice()

		history := new(mockHistoryRepo)
		history.On("InsertRecord", mock.Anything, mock.Anything).Return(nil).Twice()

		svc := NewService(users, new(mockInventoryRepo), history)
		req := Request{AdminID: "a", UserID: "u1", GiftType: domain.GiftCoins, Amount: 100}

		_, err := svc.SendGift(context.Background(), req)
		require.NoError(t, err)
		_, err = svc.SendGift(context.Background(), req)
		require.NoError(t, err)

		users.AssertNumberOfCalls(t, "AddCoins", 2)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		users := new(mockUserRepo)
		existingUser(users, "u1")

		svc := NewService(users, new(mockInventoryRepo), new(mockHistoryRepo))
		for _, amount := range []int64{0, -5} {
			_, err := svc.SendGift(context.Background(), Request{
				AdminID: "a", UserID: "u1", GiftType: domain.GiftCoins, Amount: amount,
			})
			assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		}
	})
}

func TestSendGift_Item(t *testing.T) {
	t.Run("appends item and sends general mail", func(t *testing.T) {
		users := new(mockUserRepo)
		existingUser(users, "u2")
		users.On("AppendOwnedItem", mock.Anything, "u2", "dice_9_ff").Return(nil)
		users.On("PrependMail", mock.Anything, "u2", mock.MatchedBy(func(mail domain.Mail) bool {
			return mail.MailType == domain.MailTypeGeneral && mail.Title == "🎁 You received a gift!"
		})).Return(nil)

		inv := new(mockInventoryRepo)
		inv.On("GetItemByID", mock.Anything, "dice_9_ff").Return(&domain.InventoryItem{
			ItemID: "dice_9_ff", ItemName: "Golden Dice", ItemType: domain.ItemTypeDice,
		}, nil)

		history := new(mockHistoryRepo)
		history.On("InsertRecord", mock.Anything, mock.MatchedBy(func(r *domain.GiftRecord) bool {
			return r.ItemName == "Golden Dice" && r.GiftType == domain.GiftItem
		})).Return(nil)

		svc := NewService(users, inv, history)
		result, err := svc.SendGift(context.Background(), Request{
			AdminID: "a", UserID: "u2", GiftType: domain.GiftItem, ItemID: "dice_9_ff",
		})

		require.NoError(t, err)
		assert.Equal(t, "Golden Dice", result.ItemName)
		users.AssertExpectations(t)
	})

	t.Run("duplicate item grants are allowed", func(t *testing.T) {
		users := new(mockUserRepo)
		existingUser(users, "u2")
		users.On("AppendOwnedItem", mock.Anything, "u2", "dice_9_ff").Return(nil).Twice()
		users.On("PrependMail", mock.Anything, "u2", mock.Anything).Return(nil).Twice()

		inv := new(mockInventoryRepo)
		inv.On("GetItemByID", mock.Anything, "dice_9_ff").Return(&domain.InventoryItem{
			ItemID: "dice_9_ff", ItemName: "Golden Dice",
		}, nil)

		history := new(mockHistoryRepo)
		history.On("InsertRecord", mock.Anything, mock.Anything).Return(nil).Twice()

		svc := NewService(users, inv, history)
		req := Request{AdminID: "a", UserID: "u2", GiftType: domain.GiftItem, ItemID: "dice_9_ff"}

		_, err := svc.SendGift(context.Background(), req)
		require.NoError(t, err)
		_, err = svc.SendGift(context.Background(), req)
		require.NoError(t, err)

		users.AssertNumberOfCalls(t, "AppendOwnedItem", 2)
	})

	t.Run("unknown item fails before any write", func(t *testing.T) {
		users := new(mockUserRepo)
		existingUser(users, "u2")

		inv := new(mockInventoryRepo)
		inv.On("GetItemByID", mock.Anything, "ghost").Return(nil, domain.ErrItemNotFound)

		svc := NewService(users, inv, new(mockHistoryRepo))
		_, err := svc.SendGift(context.Background(), Request{
			AdminID: "a", UserID: "u2", GiftType: domain.GiftItem, ItemID: "ghost",
		})

		assert.ErrorIs(t, err, domain.ErrItemNotFound)
		users.AssertNotCalled(t, "AppendOwnedItem", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSendGift_Failures(t *testing.T) {
	t.Run("unknown user fails fast", func(t *testing.T) {
		users := new(mockUserRepo)
		users.On("GetUserByUID", mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

		svc := NewService(users, new(mockInventoryRepo), new(mockHistoryRepo))
		_, err := svc.SendGift(context.Background(), Request{
			AdminID: "a", UserID: "ghost", GiftType: domain.GiftCoins, Amount: 10,
		})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("bad gift type rejected", func(t *testing.T) {
		svc := NewService(new(mockUserRepo), new(mockInventoryRepo), new(mockHistoryRepo))
		_, err := svc.SendGift(context.Background(), Request{
			AdminID: "a", UserID: "u", GiftType: domain.GiftType("hugs"),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidGiftType)
	})

	t.Run("failed history insert does not fail the gift", func(t *testing.T) {
		users := new(mockUserRepo)
		existingUser(users, "u1")
		users.On("AddDiamonds", mock.Anything, "u1", int64(5)).Return(nil)
		users.On("PrependMail", mock.Anything, "u1", mock.Anything).Return(nil)

		history := new(mockHistoryRepo)
		history.On("InsertRecord", mock.Anything, mock.Anything).Return(domain.ErrDatabaseError)

		svc := NewService(users, new(mockInventoryRepo), history)
		result, err := svc.SendGift(context.Background(), Request{
			AdminID: "a", UserID: "u1", GiftType: domain.GiftDiamonds, Amount: 5,
		})

		require.NoError(t, err, "gift already delivered; audit failure is swallowed")
		assert.Equal(t, int64(5), result.Amount)
	})
}

func TestHistory(t *testing.T) {
	t.Run("defaults non-positive limits", func(t *testing.T) {
		history := new(mockHistoryRepo)
		history.On("ListRecent", mock.Anything, 50).Return([]domain.GiftRecord{}, nil)

		svc := NewService(new(mockUserRepo), new(mockInventoryRepo), history)
		for _, limit := range []int{0, -3} {
			_, err := svc.History(context.Background(), limit)
			require.NoError(t, err)
		}
		history.AssertNumberOfCalls(t, "ListRecent", 2)
	})

	t.Run("caps oversized limits at the maximum", func(t *testing.T) {
		history := new(mockHistoryRepo)
		history.On("ListRecent", mock.Anything, 500).Return([]domain.GiftRecord{}, nil)

		svc := NewService(new(mockUserRepo), new(mockInventoryRepo), history)
		_, err := svc.History(context.Background(), 9999)
		require.NoError(t, err)
		history.AssertExpectations(t)
	})

	t.Run("passes in-range limit through", func(t *testing.T) {
		history := new(mockHistoryRepo)
		history.On("ListRecent", mock.Anything, 500).Return([]domain.GiftRecord{}, nil)

		svc := NewService(new(mockUserRepo), new(mockInventoryRepo), history)
		_, err := svc.History(context.Background(), 500)
		require.NoError(t, err)
		history.AssertExpectations(t)
	})
}
