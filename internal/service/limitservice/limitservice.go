package limitservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/grandbay/casino-core/internal/domain"
	"github.com/grandbay/casino-core/internal/dto"
	"github.com/grandbay/casino-core/internal/pg"
	"github.com/grandbay/casino-core/internal/service/settingsservice"
)

type LimitRepo interface {
	GetByPlayerID(ctx context.Context, playerID int) (*domain.PlayerLimit, error)
	GetByPlayerIDForUpdate(ctx context.Context, playerID int) (*domain.PlayerLimit, error)
	Create(ctx context.Context, playerID int) (*domain.PlayerLimit, error)
	Update(ctx context.Context, l *domain.PlayerLimit) error
	FindMaturedPending(ctx context.Context, now time.Time, limit uint32) ([]domain.PlayerLimit, error)
}

type LedgerRepo interface {
	SumCompletedByType(ctx context.Context, accountID int, t domain.TransactionType, since time.Time) (decimal.Decimal, error)
}

type AuditRepo interface {
	Create(ctx context.Context, event *domain.AuditEvent) error
}

type Settings interface {
	Int(ctx context.Context, key string) (int, error)
}

type Service struct {
	limitRepo  LimitRepo
	ledgerRepo LedgerRepo
	auditRepo  AuditRepo
	settings   Settings
	txManager  pg.TXManager
}

func New(limitRepo LimitRepo, ledgerRepo LedgerRepo, auditRepo AuditRepo, settings Settings, txManager pg.TXManager) *Service {
	return &Service{
		limitRepo:  limitRepo,
		ledgerRepo: ledgerRepo,
		auditRepo:  auditRepo,
		settings:   settings,
		txManager:  txManager,
	}
}

func (s *Service) GetLimits(ctx context.Context, playerID int) (*domain.PlayerLimit, error) {
	limits, err := s.limitRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		zap.L().Error("failed to get limits", zap.Error(err))
		return nil, err
	}
	if limits == nil {
		return nil, domain.NotFound("limits for player %d not found", playerID)
	}
	return limits, nil
}

func (s *Service) CreateLimits(ctx context.Context, playerID int) (*domain.PlayerLimit, error) {
	limits, err := s.limitRepo.Create(ctx, playerID)
	if err != nil {
		zap.L().Error("failed to create limits", zap.Error(err))
		return nil, err
	}
	return limits, nil
}

// Update applies a partial limit update. A decrease takes effect immediately
// and is audited; an increase is parked as a pending value that activates
// after the configured delay. Any requested field whose category already has
// a pending value rejects the whole call, which is all-or-nothing.
func (s *Service) Update(ctx context.Context, playerID int, req dto.LimitUpdateRequestDTO) (*domain.PlayerLimit, error) {
	var updated *domain.PlayerLimit
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		limits, err := s.limitRepo.GetByPlayerIDForUpdate(ctx, playerID)
		if err != nil {
			return err
		}
		if limits == nil {
			return domain.NotFound("limits for player %d not found", playerID)
		}

		// Conflicts are judged against the state as of this call, before
		// anything is applied.
		for _, f := range limitFields {
			if f.request(&req) == nil {
				continue
			}
			if categoryHasPending(limits, f.category) {
				return domain.DomainConflict("%s cannot be changed while a pending limit increase exists", f.name)
			}
		}

		now := time.Now().UTC()
		delayDays := -1
		var audits []*domain.AuditEvent
		for _, f := range limitFields {
			v := f.request(&req)
			if v == nil {
				continue
			}
			newVal := decimal.NewFromInt(*v)
			cur := *f.current(limits)

			if cur != nil && newVal.GreaterThan(*cur) {
				if delayDays < 0 {
					delayDays, err = s.settings.Int(ctx, settingsservice.KeyLimitIncreaseDelayDays)
					if err != nil {
						return err
					}
				}
				activateAt := now.AddDate(0, 0, delayDays)
				*f.pending(limits) = &newVal
				*f.pendingAt(limits) = &activateAt
				continue
			}

			audits = append(audits, &domain.AuditEvent{
				PlayerID:  playerID,
				Kind:      domain.AuditLimit,
				Field:     f.name,
				OldValue:  formatLimit(cur),
				NewValue:  newVal.String(),
				ChangedBy: "player",
				CreatedAt: now,
			})
			*f.current(limits) = &newVal
		}

		if err := s.limitRepo.Update(ctx, limits); err != nil {
			return err
		}
		for _, a := range audits {
			if err := s.auditRepo.Create(ctx, a); err != nil {
				return err
			}
		}
		updated = limits
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// FindMatured returns limit rows holding a pending increase whose activation
// time has been reached.
func (s *Service) FindMatured(ctx context.Context, now time.Time, limit uint32) ([]domain.PlayerLimit, error) {
	return s.limitRepo.FindMaturedPending(ctx, now, limit)
}

// ActivatePlayer promotes every matured pending limit of one player: the
// pending value becomes the current limit and the pending slot is cleared.
func (s *Service) ActivatePlayer(ctx context.Context, playerID int, now time.Time) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		limits, err := s.limitRepo.GetByPlayerIDForUpdate(ctx, playerID)
		if err != nil {
			return err
		}
		if limits == nil {
			return nil
		}

		changed := false
		for _, f := range limitFields {
			pending := *f.pending(limits)
			at := *f.pendingAt(limits)
			if pending == nil || at == nil || at.After(now) {
				continue
			}

			event := &domain.AuditEvent{
				PlayerID:  playerID,
				Kind:      domain.AuditLimit,
				Field:     f.name,
				OldValue:  formatLimit(*f.current(limits)),
				NewValue:  pending.String(),
				ChangedBy: "system",
				Comment:   "pending limit increase activated",
				CreatedAt: now,
			}
			*f.current(limits) = pending
			*f.pending(limits) = nil
			*f.pendingAt(limits) = nil
			if err := s.auditRepo.Create(ctx, event); err != nil {
				return err
			}
			changed = true
		}
		if !changed {
			return nil
		}
		return s.limitRepo.Update(ctx, limits)
	})
}
