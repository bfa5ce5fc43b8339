package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/logger"
	"github.com/reverseludo/admin-api/internal/metrics"
	"github.com/reverseludo/admin-api/internal/repository"
)

// DefaultListLimit caps how many notifications the admin feed returns.
const DefaultListLimit = 100

// UserIDCacheTTL bounds how stale the cached all-users roster may be.
const UserIDCacheTTL = 30 * time.Second

// BroadcastInput describes one admin broadcast. Targets are resolved in
// order: explicit TargetUsers, else the roster of TournamentID, else every
// user.
type BroadcastInput struct {
	Title        string
	Message      string
	Type         string
	TournamentID string
	TargetUsers  []string
}

// BroadcastResult reports how many notification rows were written.
type BroadcastResult struct {
	Success bool `json:"success"`
	SentTo  int  `json:"sent_to"`
}

// Service defines the interface for admin notifications.
type Service interface {
	ListRecent(ctx context.Context) ([]domain.Notification, error)
	Broadcast(ctx context.Context, input BroadcastInput) (*BroadcastResult, error)
}

type service struct {
	repo        repository.Notification
	users       repository.User
	tournaments repository.Tournament
	cache       *idCache
}

// NewService creates a new notification service.
func NewService(repo repository.Notification, users repository.User, tournaments repository.Tournament) Service {
	return &service{
		repo:        repo,
		users:       users,
		tournaments: tournaments,
		cache:       newIDCache(UserIDCacheTTL),
	}
}

func (s *service) ListRecent(ctx context.Context) ([]domain.Notification, error) {
	return s.repo.ListRecent(ctx, DefaultListLimit)
}

// resolveTargets picks the recipient list for a broadcast.
func (s *service) resolveTargets(ctx context.Context, input BroadcastInput) ([]string, error) {
	if len(input.TargetUsers) > 0 {
		return input.TargetUsers, nil
	}

	if input.TournamentID != "" {
		tournament, err := s.tournaments.GetTournamentByID(ctx, input.TournamentID)
		if err != nil {
			return nil, err
		}
		return tournament.RegisteredPlayers, nil
	}

	if ids, ok := s.cache.Get(); ok {
		return ids, nil
	}

	ids, err := s.users.ListUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list user ids: %w", err)
	}
	s.cache.Set(ids)
	return ids, nil
}

func (s *service) Broadcast(ctx context.Context, input BroadcastInput) (*BroadcastResult, error) {
	log := logger.FromContext(ctx)

	targets, err := s.resolveTargets(ctx, input)
	if err != nil {
		return nil, err
	}

	if len(targets) == 0 {
		return &BroadcastResult{Success: true, SentTo: 0}, nil
	}

	notificationType := input.Type
	if notificationType == "" {
		notificationType = domain.NotificationTypeGeneral
	}

	rows := make([]domain.Notification, 0, len(targets))
	for _, uid := range targets {
		rows = append(rows, domain.Notification{
			UserID:       uid,
			Title:        input.Title,
			Message:      input.Message,
			Type:         notificationType,
			TournamentID: input.TournamentID,
			Read:         false,
		})
	}

	if err := s.repo.InsertBatch(ctx, rows); err != nil {
		return nil, fmt.Errorf("failed to fan out notifications: %w", err)
	}

	metrics.RecordNotificationsFanout(len(rows))
	log.Info("notifications broadcast",
		"sent_to", len(rows), "type", notificationType, "tournament_id", input.TournamentID)
	return &BroadcastResult{Success: true, SentTo: len(rows)}, nil
}
