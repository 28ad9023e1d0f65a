package accountrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/grandbay/casino-core/internal/domain"
	"github.com/grandbay/casino-core/internal/pg"
)

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

func (r *Repository) GetByPlayerID(ctx context.Context, playerID int) (*domain.Account, error) {
	query := `
        SELECT id, player_id, balance, currency
        FROM accounts
        WHERE player_id = $1
    `
	return r.scanAccount(ctx, query, playerID)
}

// GetByPlayerIDForUpdate locks the account row for the rest of the enclosing
// transaction, serializing concurrent balance mutations per account.
func (r *Repository) GetByPlayerIDForUpdate(ctx context.Context, playerID int) (*domain.Account, error) {
	query := `
        SELECT id, player_id, balance, currency
        FROM accounts
        WHERE player_id = $1
        FOR UPDATE
    `
	return r.scanAccount(ctx, query, playerID)
}

func (r *Repository) scanAccount(ctx context.Context, query string, playerID int) (*domain.Account, error) {
	row := r.db.QueryRow(ctx, query, playerID)
	var account domain.Account
	err := row.Scan(&account.ID, &account.PlayerID, &account.Balance, &account.Currency)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) Create(ctx context.Context, playerID int, currency string) (*domain.Account, error) {
	query := `
        INSERT INTO accounts (player_id, balance, currency)
        VALUES ($1, 0, $2)
        RETURNING id, player_id, balance, currency
    `
	row := r.db.QueryRow(ctx, query, playerID, currency)
	var account domain.Account
	err := row.Scan(&account.ID, &account.PlayerID, &account.Balance, &account.Currency)
	if err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, accountID int, balance decimal.Decimal) error {
	query := `
		UPDATE accounts
		SET balance = $1
		WHERE id = $2
	`
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, balance, accountID)
		if err != nil {
			zap.L().Error("failed to update account balance", zap.Error(err))
			return err
		}
		return nil
	})
}
