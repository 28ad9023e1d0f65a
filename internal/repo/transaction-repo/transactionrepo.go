package transactionrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/grandbay/casino-core/internal/domain"
	"github.com/grandbay/casino-core/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create appends a ledger row. The sequence number comes from the
// transactions_seq database sequence inside the insert, so it is unique and
// strictly increasing under concurrent writers.
func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (uid, account_id, type, status, amount, currency, old_balance, new_balance, game_id, game_round_id, inserted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, sequence_number
	`
	tx.UID = uuid.New()
	err := r.db.QueryRow(ctx, query,
		tx.UID, tx.AccountID, tx.Type, tx.Status, tx.Amount, tx.Currency,
		tx.OldBalance, tx.NewBalance, tx.GameID, tx.GameRoundID, tx.InsertedAt,
	).Scan(&tx.ID, &tx.SequenceNumber)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) SumCompletedByType(ctx context.Context, accountID int, t domain.TransactionType, since time.Time) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM transactions
        WHERE account_id = $1 AND type = $2 AND status = $3 AND inserted_at >= $4
    `
	var sum decimal.Decimal
	err := r.db.QueryRow(ctx, query, accountID, t, domain.StatusCompleted, since).Scan(&sum)
	if err != nil {
		zap.L().Error("failed to sum transactions", zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *Repository) ListByAccountID(ctx context.Context, accountID int) ([]domain.Transaction, error) {
	query := `
        SELECT t.id, t.uid, t.sequence_number, t.account_id, t.type, t.status, t.amount, t.currency,
               t.old_balance, t.new_balance, t.game_id, g.name, t.game_round_id, t.inserted_at
        FROM transactions t
        LEFT JOIN games g ON g.id = t.game_id
        WHERE t.account_id = $1
        ORDER BY t.sequence_number DESC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(
			&tx.ID, &tx.UID, &tx.SequenceNumber, &tx.AccountID, &tx.Type, &tx.Status, &tx.Amount, &tx.Currency,
			&tx.OldBalance, &tx.NewBalance, &tx.GameID, &tx.GameName, &tx.GameRoundID, &tx.InsertedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

func (r *Repository) FindGameByID(ctx context.Context, id int) (*domain.Game, error) {
	query := `
        SELECT id, name
        FROM games
        WHERE id = $1
    `
	var game domain.Game
	err := r.db.QueryRow(ctx, query, id).Scan(&game.ID, &game.Name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find game", zap.Error(err))
		return nil, err
	}
	return &game, nil
}
