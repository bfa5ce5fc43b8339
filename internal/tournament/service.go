package tournament

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/logger"
	"github.com/reverseludo/admin-api/internal/repository"
	"github.com/reverseludo/admin-api/internal/storage"
)

// CreateInput carries the fields of a tournament creation request. Status is
// optional; when empty it is derived from the starting time. An optional
// banner image is uploaded alongside.
type CreateInput struct {
	Name         string
	EntryFee     int
	RewardAmount int
	RewardType   string
	MaxPlayers   int
	StartingTime time.Time
	Status       domain.TournamentStatus

	BannerFilename string
	Banner         io.Reader
}

// Service defines the interface for tournament administration. The bracket
// is seeded here and advanced only by the game servers.
type Service interface {
	ListTournaments(ctx context.Context) ([]domain.Tournament, error)
	GetTournament(ctx context.Context, id string) (*domain.Tournament, error)
	CreateTournament(ctx context.Context, input CreateInput) (*domain.Tournament, error)
	UpdateTournament(ctx context.Context, id string, updates repository.TournamentUpdate) (*domain.Tournament, error)
	DeleteTournament(ctx context.Context, id string) error
}

type service struct {
	repo  repository.Tournament
	store storage.Store
	now   func() time.Time
}

// NewService creates a new tournament service.
func NewService(repo repository.Tournament, store storage.Store) Service {
	return &service{repo: repo, store: store, now: time.Now}
}

func (s *service) ListTournaments(ctx context.Context) ([]domain.Tournament, error) {
	return s.repo.ListTournaments(ctx)
}

func (s *service) GetTournament(ctx context.Context, id string) (*domain.Tournament, error) {
	return s.repo.GetTournamentByID(ctx, id)
}

func (s *service) CreateTournament(ctx context.Context, input CreateInput) (*domain.Tournament, error) {
	log := logger.FromContext(ctx)

	status := input.Status
	if status == "" {
		status = domain.StatusForStartTime(input.StartingTime, s.now())
	} else if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	maxPlayers := input.MaxPlayers
	if maxPlayers <= 0 {
		maxPlayers = 16
	}

	tournament := &domain.Tournament{
		Name:                   input.Name,
		Status:                 status,
		EntryFee:               input.EntryFee,
		RewardAmount:           input.RewardAmount,
		RewardType:             input.RewardType,
		MaxPlayers:             maxPlayers,
		CurrentPlayers:         0,
		RegisteredPlayers:      []string{},
		TournamentStartingTime: input.StartingTime,
		State:                  domain.NewBracketSkeleton(),
	}

	if input.Banner != nil {
		ext := path.Ext(input.BannerFilename)
		if ext == "" {
			ext = ".png"
		}
		key := fmt.Sprintf("tournament-banners/%d%s", s.now().UnixMilli(), ext)
		url, err := s.store.Save(ctx, key, input.Banner)
		if err != nil {
			return nil, fmt.Errorf("failed to store banner: %w", err)
		}
		tournament.BannerURL = url
	}

	if err := s.repo.InsertTournament(ctx, tournament); err != nil {
		return nil, err
	}

	log.Info("tournament created",
		"id", tournament.ID, "name", tournament.Name, "status", tournament.Status)
	return tournament, nil
}

func (s *service) UpdateTournament(ctx context.Context, id string, updates repository.TournamentUpdate) (*domain.Tournament, error) {
	log := logger.FromContext(ctx)

	if updates.Status != nil && !updates.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, *updates.Status)
	}

	tournament, err := s.repo.UpdateTournament(ctx, id, updates)
	if err != nil {
		return nil, err
	}

	log.Info("tournament updated", "id", id, "status", tournament.Status)
	return tournament, nil
}

func (s *service) DeleteTournament(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.repo.DeleteTournament(ctx, id); err != nil {
		return err
	}

	log.Info("tournament deleted", "id", id)
	return nil
}
