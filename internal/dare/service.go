package dare

import (
	"context"
	"fmt"
	"strings"

	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/logger"
	"github.com/reverseludo/admin-api/internal/repository"
)

// Input carries the editable fields of a dare prompt.
type Input struct {
	DareText string
	Category domain.DareCategory
	IsActive bool
}

// Service defines the interface for dare prompt management.
type Service interface {
	ListDares(ctx context.Context) ([]domain.Dare, error)
	CreateDare(ctx context.Context, input Input) (*domain.Dare, error)
	UpdateDare(ctx context.Context, id string, input Input) (*domain.Dare, error)
	DeleteDare(ctx context.Context, id string) error
}

type service struct {
	repo repository.Dare
}

// NewService creates a new dare service.
func NewService(repo repository.Dare) Service {
	return &service{repo: repo}
}

func (s *service) ListDares(ctx context.Context) ([]domain.Dare, error) {
	return s.repo.ListDares(ctx)
}

// normalize validates and trims an input, returning the clean text.
func normalize(input Input) (string, error) {
	text := strings.TrimSpace(input.DareText)
	if text == "" {
		return "", fmt.Errorf("%w: dare text is empty", domain.ErrInvalidDare)
	}
	if !input.Category.Valid() {
		return "", fmt.Errorf("%w: unknown category %q", domain.ErrInvalidDare, input.Category)
	}
	return text, nil
}

func (s *service) CreateDare(ctx context.Context, input Input) (*domain.Dare, error) {
	log := logger.FromContext(ctx)

	text, err := normalize(input)
	if err != nil {
		return nil, err
	}

	dare := &domain.Dare{
		DareText: text,
		Category: input.Category,
		IsActive: input.IsActive,
	}
	if err := s.repo.InsertDare(ctx, dare); err != nil {
		return nil, err
	}

	log.Info("dare created", "id", dare.ID, "category", dare.Category)
	return dare, nil
}

func (s *service) UpdateDare(ctx context.Context, id string, input Input) (*domain.Dare, error) {
	log := logger.FromContext(ctx)

	text, err := normalize(input)
	if err != nil {
		return nil, err
	}

	dare, err := s.repo.UpdateDare(ctx, &domain.Dare{
		ID:       id,
		DareText: text,
		Category: input.Category,
		IsActive: input.IsActive,
	})
	if err != nil {
		return nil, err
	}

	log.Info("dare updated", "id", id)
	return dare, nil
}

func (s *service) DeleteDare(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.repo.DeleteDare(ctx, id); err != nil {
		return err
	}

	log.Info("dare deleted", "id", id)
	return nil
}
