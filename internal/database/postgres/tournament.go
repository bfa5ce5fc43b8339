package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reverseludo/admin-api/internal/domain"
	"github.com/reverseludo/admin-api/internal/repository"
)

// TournamentRepository implements the tournament repository for PostgreSQL.
type TournamentRepository struct {
	db *pgxpool.Pool
}

// NewTournamentRepository creates a new TournamentRepository.
func NewTournamentRepository(db *pgxpool.Pool) *TournamentRepository {
	return &TournamentRepository{db: db}
}

const tournamentColumns = `id, name, status, entry_fee, reward_amount, COALESCE(reward_type, ''),
	max_players, current_players, registered_players, tournament_starting_time,
	COALESCE(banner_url, ''), tournament_state, created_at, updated_at`

func scanTournament(row pgx.Row) (*domain.Tournament, error) {
	var (
		t                  domain.Tournament
		playersRaw, stateRaw []byte
	)
	err := row.Scan(&t.ID, &t.Name, &t.Status, &t.EntryFee, &t.RewardAmount, &t.RewardType,
		&t.MaxPlayers, &t.CurrentPlayers, &playersRaw, &t.TournamentStartingTime,
		&t.BannerURL, &stateRaw, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := scanJSON(playersRaw, &t.RegisteredPlayers); err != nil {
		return nil, err
	}
	if len(stateRaw) > 0 {
		t.State = &domain.BracketState{}
		if err := scanJSON(stateRaw, t.State); err != nil {
			return nil, err
		}
	}
	return &t, nil
}

// ListTournaments returns all tournaments ordered by starting time, newest first.
func (r *TournamentRepository) ListTournaments(ctx context.Context) ([]domain.Tournament, error) {
	query := fmt.Sprintf(`SELECT %s FROM tournaments ORDER BY tournament_starting_time DESC`, tournamentColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return collectRows(rows, func(rows pgx.Rows) (domain.Tournament, error) {
		t, err := scanTournament(rows)
		if err != nil {
			return domain.Tournament{}, err
		}
		return *t, nil
	})
}

// GetTournamentByID returns one tournament.
func (r *TournamentRepository) GetTournamentByID(ctx context.Context, id string) (*domain.Tournament, error) {
	query := fmt.Sprintf(`SELECT %s FROM tournaments WHERE id = $1`, tournamentColumns)
	t, err := scanTournament(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidTextRepresentation(err) {
			return nil, domain.ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}
	return t, nil
}

// InsertTournament stores a new tournament with its seeded bracket state.
func (r *TournamentRepository) InsertTournament(ctx context.Context, t *domain.Tournament) error {
	playersRaw, err := marshalJSON(t.RegisteredPlayers)
	if err != nil {
		return err
	}
	stateRaw, err := marshalJSON(t.State)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO tournaments
			(name, status, entry_fee, reward_amount, reward_type, max_players,
			 current_players, registered_players, tournament_starting_time, banner_url,
			 tournament_state)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, NULLIF($10, ''), $11)
		RETURNING id, created_at, updated_at`

	err = r.db.QueryRow(ctx, query,
		t.Name, t.Status, t.EntryFee, t.RewardAmount, t.RewardType, t.MaxPlayers,
		t.CurrentPlayers, playersRaw, t.TournamentStartingTime, t.BannerURL, stateRaw).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert tournament: %w", err)
	}
	return nil
}

// UpdateTournament applies the non-nil fields of updates and returns the
// updated row.
func (r *TournamentRepository) UpdateTournament(ctx context.Context, id string, updates repository.TournamentUpdate) (*domain.Tournament, error) {
	var startTime *time.Time
	if updates.TournamentStartingTime != nil {
		parsed, err := time.Parse(time.RFC3339, *updates.TournamentStartingTime)
		if err != nil {
			return nil, fmt.Errorf("invalid tournament_starting_time: %w", err)
		}
		startTime = &parsed
	}

	query := fmt.Sprintf(`
		UPDATE tournaments
		SET name                     = COALESCE($2, name),
		    status                   = COALESCE($3, status),
		    entry_fee                = COALESCE($4, entry_fee),
		    reward_amount            = COALESCE($5, reward_amount),
		    reward_type              = COALESCE($6, reward_type),
		    max_players              = COALESCE($7, max_players),
		    tournament_starting_time = COALESCE($8, tournament_starting_time),
		    banner_url               = COALESCE($9, banner_url),
		    updated_at               = NOW()
		WHERE id = $1
		RETURNING %s`, tournamentColumns)

	t, err := scanTournament(r.db.QueryRow(ctx, query, id,
		updates.Name, (*string)(updates.Status), updates.EntryFee, updates.RewardAmount,
		updates.RewardType, updates.MaxPlayers, startTime, updates.BannerURL))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidTextRepresentation(err) {
			return nil, domain.ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to update tournament: %w", err)
	}
	return t, nil
}

// DeleteTournament removes a tournament by id.
func (r *TournamentRepository) DeleteTournament(ctx context.Context, id string) error {
	return execAffectingOne(ctx, r.db, domain.ErrTournamentNotFound,
		`DELETE FROM tournaments WHERE id = $1`, id)
}
