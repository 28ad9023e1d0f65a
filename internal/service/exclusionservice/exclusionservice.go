package exclusionservice

import (
	"context"
	"time"

	"github.com/grandbay/casino-core/internal/domain"
	"github.com/grandbay/casino-core/internal/pg"
)

type PlayerRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Player, error)
	UpdateExclusion(ctx context.Context, player *domain.Player) error
	FindExpiredExclusions(ctx context.Context, now time.Time, limit uint32) ([]domain.Player, error)
}

type AuditRepo interface {
	Create(ctx context.Context, event *domain.AuditEvent) error
}

type Service struct {
	playerRepo PlayerRepo
	auditRepo  AuditRepo
	txManager  pg.TXManager
}

func New(playerRepo PlayerRepo, auditRepo AuditRepo, txManager pg.TXManager) *Service {
	return &Service{
		playerRepo: playerRepo,
		auditRepo:  auditRepo,
		txManager:  txManager,
	}
}

// Apply transitions the player's self-exclusion state. Permanent exclusion is
// terminal; a temporary exclusion can only be extended, never shortened.
// Every accepted transition is audited.
func (s *Service) Apply(ctx context.Context, playerID int, period domain.ExclusionPeriod) (*domain.Player, error) {
	if !period.Valid() {
		return nil, domain.InvalidArgument("unsupported self-exclusion period: %q", period)
	}

	var updated *domain.Player
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		player, err := s.playerRepo.FindByID(ctx, playerID)
		if err != nil {
			return err
		}
		if player == nil {
			return domain.NotFound("player %d not found", playerID)
		}
		if player.PermanentlyExcluded() {
			return domain.DomainValidation("player is permanently excluded")
		}

		now := time.Now().UTC()
		oldState := exclusionState(player)

		if period == domain.ExclusionPermanent {
			if player.ExclusionStart == nil {
				player.ExclusionStart = &now
			}
			player.SelfExcluded = true
			player.ExclusionPeriod = &period
			player.ExclusionEnd = nil
			player.IsActive = false
		} else {
			end := period.End(now)
			if player.SelfExcluded && player.ExclusionEnd != nil && end.Before(*player.ExclusionEnd) {
				return domain.DomainValidation("self-exclusion cannot be shortened")
			}
			// First entry records the start; an extension keeps it.
			if !player.SelfExcluded {
				player.ExclusionStart = &now
			}
			player.SelfExcluded = true
			player.ExclusionPeriod = &period
			player.ExclusionEnd = end
		}

		if err := s.playerRepo.UpdateExclusion(ctx, player); err != nil {
			return err
		}
		event := &domain.AuditEvent{
			PlayerID:  playerID,
			Kind:      domain.AuditSelfExclusion,
			Field:     "self_exclusion",
			OldValue:  oldState,
			NewValue:  exclusionState(player),
			ChangedBy: "player",
			CreatedAt: now,
		}
		if err := s.auditRepo.Create(ctx, event); err != nil {
			return err
		}
		updated = player
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// FindExpired returns players whose temporary exclusion end date has passed.
func (s *Service) FindExpired(ctx context.Context, now time.Time, limit uint32) ([]domain.Player, error) {
	return s.playerRepo.FindExpiredExclusions(ctx, now, limit)
}

// LiftPlayer clears an expired temporary exclusion and records the lift in
// the audit trail.
func (s *Service) LiftPlayer(ctx context.Context, player domain.Player, now time.Time) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		oldState := exclusionState(&player)
		player.SelfExcluded = false
		player.ExclusionPeriod = nil
		player.ExclusionStart = nil
		player.ExclusionEnd = nil
		if err := s.playerRepo.UpdateExclusion(ctx, &player); err != nil {
			return err
		}
		return s.auditRepo.Create(ctx, &domain.AuditEvent{
			PlayerID:  player.ID,
			Kind:      domain.AuditSelfExclusion,
			Field:     "self_exclusion",
			OldValue:  oldState,
			NewValue:  "none",
			ChangedBy: "system",
			Comment:   "temporary self-exclusion expired",
			CreatedAt: now,
		})
	})
}

func exclusionState(p *domain.Player) string {
	if !p.SelfExcluded {
		return "none"
	}
	if p.ExclusionEnd == nil {
		return "permanent"
	}
	return string(*p.ExclusionPeriod) + " until " + p.ExclusionEnd.Format(time.RFC3339)
}
