package playerrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/grandbay/casino-core/internal/domain"
	"github.com/grandbay/casino-core/internal/pg"
)

const playerColumns = `id, login, password_hash, kyc_verified, is_active, self_excluded, exclusion_period, exclusion_start, exclusion_end, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) scanPlayer(row pgx.Row) (*domain.Player, error) {
	var player domain.Player
	err := row.Scan(
		&player.ID, &player.Login, &player.PasswordHash, &player.KYCVerified, &player.IsActive,
		&player.SelfExcluded, &player.ExclusionPeriod, &player.ExclusionStart, &player.ExclusionEnd, &player.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find player", zap.Error(err))
		return nil, err
	}
	return &player, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Player, error) {
	return r.scanPlayer(r.db.QueryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE id = $1`, id))
}

func (r *Repository) FindByLogin(ctx context.Context, login string) (*domain.Player, error) {
	return r.scanPlayer(r.db.QueryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE login = $1`, login))
}

func (r *Repository) Create(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	query := `
		INSERT INTO players (login, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, player.Login, player.PasswordHash).Scan(&player.ID)
	if err != nil {
		zap.L().Error("can't save player", zap.Error(err))
		return nil, err
	}
	return player, nil
}

// UpdateExclusion persists the self-exclusion fields together with the
// activity flag, which permanent exclusion forces off.
func (r *Repository) UpdateExclusion(ctx context.Context, player *domain.Player) error {
	query := `
		UPDATE players
		SET self_excluded = $1, exclusion_period = $2, exclusion_start = $3, exclusion_end = $4, is_active = $5
		WHERE id = $6
	`
	_, err := r.db.Exec(ctx, query,
		player.SelfExcluded, player.ExclusionPeriod, player.ExclusionStart, player.ExclusionEnd, player.IsActive, player.ID,
	)
	if err != nil {
		zap.L().Error("failed to update player exclusion", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetKYCVerified(ctx context.Context, playerID int, verified bool) error {
	query := `
		UPDATE players
		SET kyc_verified = $1
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, verified, playerID)
	if err != nil {
		zap.L().Error("failed to update kyc flag", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindExpiredExclusions(ctx context.Context, now time.Time, limit uint32) ([]domain.Player, error) {
	query := `
        SELECT ` + playerColumns + `
        FROM players
		WHERE self_excluded AND exclusion_end IS NOT NULL AND exclusion_end <= $1
        ORDER BY exclusion_end ASC
		LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, now, int(limit))
	if err != nil {
		zap.L().Error("can't get expired exclusions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		var player domain.Player
		err := rows.Scan(
			&player.ID, &player.Login, &player.PasswordHash, &player.KYCVerified, &player.IsActive,
			&player.SelfExcluded, &player.ExclusionPeriod, &player.ExclusionStart, &player.ExclusionEnd, &player.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan player row", zap.Error(err))
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}
