package settingsrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

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

// Get returns nil when the key is absent; callers decide whether that is
// fatal.
func (r *Repository) Get(ctx context.Context, key string) (*string, error) {
	query := `
        SELECT value
        FROM settings
        WHERE key = $1
    `
	var value string
	err := r.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get setting", zap.Error(err), zap.String("key", key))
		return nil, err
	}
	return &value, nil
}
