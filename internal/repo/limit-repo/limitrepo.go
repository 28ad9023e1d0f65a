package limitrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/grandbay/casino-core/internal/domain"
	"github.com/grandbay/casino-core/internal/pg"
)

const limitColumns = `player_id,
	deposit_daily, deposit_weekly, deposit_monthly,
	loss_daily, loss_weekly, loss_monthly,
	pending_deposit_daily, pending_deposit_daily_at,
	pending_deposit_weekly, pending_deposit_weekly_at,
	pending_deposit_monthly, pending_deposit_monthly_at,
	pending_loss_daily, pending_loss_daily_at,
	pending_loss_weekly, pending_loss_weekly_at,
	pending_loss_monthly, pending_loss_monthly_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanLimit(row pgx.Row) (*domain.PlayerLimit, error) {
	var l domain.PlayerLimit
	err := row.Scan(
		&l.PlayerID,
		&l.DepositDaily, &l.DepositWeekly, &l.DepositMonthly,
		&l.LossDaily, &l.LossWeekly, &l.LossMonthly,
		&l.PendingDepositDaily, &l.PendingDepositDailyAt,
		&l.PendingDepositWeekly, &l.PendingDepositWeeklyAt,
		&l.PendingDepositMonthly, &l.PendingDepositMonthlyAt,
		&l.PendingLossDaily, &l.PendingLossDailyAt,
		&l.PendingLossWeekly, &l.PendingLossWeeklyAt,
		&l.PendingLossMonthly, &l.PendingLossMonthlyAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get player limits", zap.Error(err))
		return nil, err
	}
	return &l, nil
}

func (r *Repository) GetByPlayerID(ctx context.Context, playerID int) (*domain.PlayerLimit, error) {
	query := `SELECT ` + limitColumns + ` FROM player_limits WHERE player_id = $1`
	return scanLimit(r.db.QueryRow(ctx, query, playerID))
}

// GetByPlayerIDForUpdate locks the limits row so a concurrent update and the
// pending-conflict check cannot interleave.
func (r *Repository) GetByPlayerIDForUpdate(ctx context.Context, playerID int) (*domain.PlayerLimit, error) {
	query := `SELECT ` + limitColumns + ` FROM player_limits WHERE player_id = $1 FOR UPDATE`
	return scanLimit(r.db.QueryRow(ctx, query, playerID))
}

func (r *Repository) Create(ctx context.Context, playerID int) (*domain.PlayerLimit, error) {
	query := `
        INSERT INTO player_limits (player_id)
        VALUES ($1)
        RETURNING ` + limitColumns
	return scanLimit(r.db.QueryRow(ctx, query, playerID))
}

func (r *Repository) Update(ctx context.Context, l *domain.PlayerLimit) error {
	query := `
		UPDATE player_limits
		SET deposit_daily = $1, deposit_weekly = $2, deposit_monthly = $3,
			loss_daily = $4, loss_weekly = $5, loss_monthly = $6,
			pending_deposit_daily = $7, pending_deposit_daily_at = $8,
			pending_deposit_weekly = $9, pending_deposit_weekly_at = $10,
			pending_deposit_monthly = $11, pending_deposit_monthly_at = $12,
			pending_loss_daily = $13, pending_loss_daily_at = $14,
			pending_loss_weekly = $15, pending_loss_weekly_at = $16,
			pending_loss_monthly = $17, pending_loss_monthly_at = $18
		WHERE player_id = $19
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			l.DepositDaily, l.DepositWeekly, l.DepositMonthly,
			l.LossDaily, l.LossWeekly, l.LossMonthly,
			l.PendingDepositDaily, l.PendingDepositDailyAt,
			l.PendingDepositWeekly, l.PendingDepositWeeklyAt,
			l.PendingDepositMonthly, l.PendingDepositMonthlyAt,
			l.PendingLossDaily, l.PendingLossDailyAt,
			l.PendingLossWeekly, l.PendingLossWeeklyAt,
			l.PendingLossMonthly, l.PendingLossMonthlyAt,
			l.PlayerID,
		)
		if err != nil {
			zap.L().Error("failed to update player limits", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) FindMaturedPending(ctx context.Context, now time.Time, limit uint32) ([]domain.PlayerLimit, error) {
	query := `
        SELECT ` + limitColumns + `
        FROM player_limits
		WHERE pending_deposit_daily_at <= $1 OR pending_deposit_weekly_at <= $1 OR pending_deposit_monthly_at <= $1
		   OR pending_loss_daily_at <= $1 OR pending_loss_weekly_at <= $1 OR pending_loss_monthly_at <= $1
		LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, now, int(limit))
	if err != nil {
		zap.L().Error("can't get matured pending limits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var limits []domain.PlayerLimit
	for rows.Next() {
		var l domain.PlayerLimit
		err := rows.Scan(
			&l.PlayerID,
			&l.DepositDaily, &l.DepositWeekly, &l.DepositMonthly,
			&l.LossDaily, &l.LossWeekly, &l.LossMonthly,
			&l.PendingDepositDaily, &l.PendingDepositDailyAt,
			&l.PendingDepositWeekly, &l.PendingDepositWeeklyAt,
			&l.PendingDepositMonthly, &l.PendingDepositMonthlyAt,
			&l.PendingLossDaily, &l.PendingLossDailyAt,
			&l.PendingLossWeekly, &l.PendingLossWeeklyAt,
			&l.PendingLossMonthly, &l.PendingLossMonthlyAt,
		)
		if err != nil {
			zap.L().Error("can't scan limits row", zap.Error(err))
			return nil, err
		}
		limits = append(limits, l)
	}
	return limits, nil
}
