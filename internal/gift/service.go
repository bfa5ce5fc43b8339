package gift

import (
	"context"
	"fmt"
	"time"

	"github.com/reverseludo/admin-api/internal/concurrency"
	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/logger"
	"github.com/reverseludo/admin-api/internal/metrics"
	"github.com/reverseludo/admin-api/internal/repository"
)

// Request describes one gift to deliver. Message overrides the default mail
// content when set.
type Request struct {
	AdminID  string
	UserID   string
	GiftType domain.GiftType
	ItemID   string
	Amount   int64
	Message  string
}

// Result reports what was delivered.
type Result struct {
	GiftType domain.GiftType `json:"gift_type"`
	UserID   string          `json:"user_id"`
	ItemID   string          `json:"item_id,omitempty"`
	ItemName string          `json:"item_name,omitempty"`
	Amount   int64           `json:"amount,omitempty"`
}

// Service defines the interface for admin gifting. Gifts are deliberately
// not idempotent: replaying a request delivers the gift again.
type Service interface {
	SendGift(ctx context.Context, req Request) (*Result, error)
	History(ctx context.Context, limit int) ([]domain.GiftRecord, error)
}

type service struct {
	users     repository.User
	inventory repository.Inventory
	history   repository.GiftHistory
	locks     *concurrency.LockManager
}

// NewService creates a new gift service.
func NewService(users repository.User, inventory repository.Inventory, history repository.GiftHistory) Service {
	return &service{
		users:     users,
		inventory: inventory,
		history:   history,
		locks:     concurrency.NewLockManager(),
	}
}

func (s *service) SendGift(ctx context.Context, req Request) (*Result, error) {
	log := logger.FromContext(ctx)

	if !req.GiftType.Valid() {
		return nil, domain.ErrInvalidGiftType
	}

	// Concurrent gifts to one user are serialized so each delivery's
	// grant, audit row, and mail land in order.
	lock := s.locks.GetLock(req.UserID)
	lock.Lock()
	defer lock.Unlock()

	// The target must exist before anything is written.
	if _, err := s.users.GetUserByUID(ctx, req.UserID); err != nil {
		return nil, err
	}

	var (
		result    *Result
		mailType  string
		mailTitle string
		mailBody  string
		record    domain.GiftRecord
	)

	switch req.GiftType {
	case domain.GiftItem:
		item, err := s.inventory.GetItemByID(ctx, req.ItemID)
		if err != nil {
			return nil, err
		}
		if err := s.users.AppendOwnedItem(ctx, req.UserID, item.ItemID); err != nil {
			return nil, fmt.Errorf("failed to grant item: %w", err)
		}

		mailType = domain.MailTypeGeneral
		mailTitle = "🎁 You received a gift!"
		mailBody = fmt.Sprintf("You've been gifted %q! Check your inventory to use it.", item.ItemName)
		record = domain.GiftRecord{
			GiftType: domain.GiftItem,
			ItemID:   item.ItemID,
			ItemName: item.ItemName,
			Message:  orDefault(req.Message, fmt.Sprintf("You received a gift: %s!", item.ItemName)),
		}
		result = &Result{GiftType: domain.GiftItem, UserID: req.UserID, ItemID: item.ItemID, ItemName: item.ItemName}

	case domain.GiftCoins:
		if req.Amount <= 0 {
			return nil, domain.ErrInvalidAmount
		}
		if err := s.users.AddCoins(ctx, req.UserID, req.Amount); err != nil {
			return nil, fmt.Errorf("failed to add coins: %w", err)
		}

		mailType = domain.MailTypeReward
		mailTitle = fmt.Sprintf("🪙 You received %d coins!", req.Amount)
		mailBody = fmt.Sprintf("%d coins have been added to your account. Enjoy!", req.Amount)
		record = domain.GiftRecord{
			GiftType: domain.GiftCoins,
			Amount:   req.Amount,
			Message:  orDefault(req.Message, fmt.Sprintf("You received %d coins!", req.Amount)),
		}
		result = &Result{GiftType: domain.GiftCoins, UserID: req.UserID, Amount: req.Amount}

	case domain.GiftDiamonds:
		if req.Amount <= 0 {
			return nil, domain.ErrInvalidAmount
		}
		if err := s.users.AddDiamonds(ctx, req.UserID, req.Amount); err != nil {
			return nil, fmt.Errorf("failed to add diamonds: %w", err)
		}

		mailType = domain.MailTypeReward
		mailTitle = fmt.Sprintf("💎 You received %d diamonds!", req.Amount)
		mailBody = fmt.Sprintf("%d diamonds have been added to your account. Enjoy!", req.Amount)
		record = domain.GiftRecord{
			GiftType: domain.GiftDiamonds,
			Amount:   req.Amount,
			Message:  orDefault(req.Message, fmt.Sprintf("You received %d diamonds!", req.Amount)),
		}
		result = &Result{GiftType: domain.GiftDiamonds, UserID: req.UserID, Amount: req.Amount}
	}

	// History is best-effort: the gift is already delivered, so a failed
	// audit insert is logged and swallowed.
	record.AdminID = req.AdminID
	record.UserID = req.UserID
	if err := s.history.InsertRecord(ctx, &record); err != nil {
		log.Warn("gift history not recorded", "error", err, "user_id", req.UserID)
	}

	mail := domain.Mail{
		MailType:  mailType,
		Title:     mailTitle,
		Content:   orDefault(req.Message, mailBody),
		Timestamp: time.Now(),
		Seen:      false,
	}
	if err := s.users.PrependMail(ctx, req.UserID, mail); err != nil {
		log.Warn("failed to deliver gift mail", "error", err, "user_id", req.UserID)
	}

	metrics.RecordGiftSent(string(req.GiftType))
	log.Info("gift sent",
		"gift_type", req.GiftType, "user_id", req.UserID, "admin_id", req.AdminID)
	return result, nil
}

func (s *service) History(ctx context.Context, limit int) ([]domain.GiftRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	return s.history.ListRecent(ctx, limit)
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
