package auditrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, event *domain.AuditEvent) error {
	query := `
		INSERT INTO audit_events (player_id, kind, field, old_value, new_value, changed_by, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		event.PlayerID, event.Kind, event.Field, event.OldValue, event.NewValue,
		event.ChangedBy, event.Comment, event.CreatedAt,
	).Scan(&event.ID)
	if err != nil {
		zap.L().Error("can't save audit event", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByPlayerID(ctx context.Context, playerID int) ([]domain.AuditEvent, error) {
	query := `
        SELECT id, player_id, kind, field, old_value, new_value, changed_by, comment, created_at
        FROM audit_events
        WHERE player_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		zap.L().Error("failed to fetch audit events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.AuditEvent
	for rows.Next() {
		var ev domain.AuditEvent
		err := rows.Scan(&ev.ID, &ev.PlayerID, &ev.Kind, &ev.Field, &ev.OldValue, &ev.NewValue, &ev.ChangedBy, &ev.Comment, &ev.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan audit row", zap.Error(err))
			return nil, err
		}
		events = append(events, ev)
	}

	return events, nil
}
