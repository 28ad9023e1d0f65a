package limitservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/grandbay/casino-core/internal/domain"
)

// Rolling windows are calendar-aligned UTC intervals: day starts at 00:00,
// week on the ISO Monday, month on day 1.

func dayStart(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func weekStart(now time.Time) time.Time {
	d := dayStart(now)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func monthStart(now time.Time) time.Time {
	y, m, _ := now.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

type window struct {
	period domain.LimitPeriod
	start  time.Time
	limit  *decimal.Decimal
}

// CheckDepositLimits verifies that the candidate amount plus the completed
// deposits since each window start stays within the player's deposit limits.
// Windows are checked day, week, month; the first violation wins.
func (s *Service) CheckDepositLimits(ctx context.Context, playerID, accountID int, amount decimal.Decimal, now time.Time) error {
	limits, err := s.limitRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		zap.L().Error("failed to load limits", zap.Error(err))
		return err
	}
	if limits == nil {
		return nil
	}

	windows := []window{
		{domain.PeriodDaily, dayStart(now), limits.DepositDaily},
		{domain.PeriodWeekly, weekStart(now), limits.DepositWeekly},
		{domain.PeriodMonthly, monthStart(now), limits.DepositMonthly},
	}
	for _, w := range windows {
		if w.limit == nil {
			continue
		}
		sum, err := s.ledgerRepo.SumCompletedByType(ctx, accountID, domain.TypeDeposit, w.start)
		if err != nil {
			return err
		}
		if sum.Add(amount).GreaterThan(*w.limit) {
			return domain.DomainValidation("DepositLimitExceeded: %s", w.period)
		}
	}
	return nil
}

// CheckLossLimits verifies the candidate bet against the loss limits. The
// window loss is completed bets minus completed wins and may be negative; a
// negative running loss is compared as is, never clamped to zero.
func (s *Service) CheckLossLimits(ctx context.Context, playerID, accountID int, amount decimal.Decimal, now time.Time) error {
	limits, err := s.limitRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		zap.L().Error("failed to load limits", zap.Error(err))
		return err
	}
	if limits == nil {
		return nil
	}

	windows := []window{
		{domain.PeriodDaily, dayStart(now), limits.LossDaily},
		{domain.PeriodWeekly, weekStart(now), limits.LossWeekly},
		{domain.PeriodMonthly, monthStart(now), limits.LossMonthly},
	}
	for _, w := range windows {
		if w.limit == nil {
			continue
		}
		bets, err := s.ledgerRepo.SumCompletedByType(ctx, accountID, domain.TypeBet, w.start)
		if err != nil {
			return err
		}
		wins, err := s.ledgerRepo.SumCompletedByType(ctx, accountID, domain.TypeWin, w.start)
		if err != nil {
			return err
		}
		loss := bets.Sub(wins)
		if loss.Add(amount).GreaterThan(*w.limit) {
			return domain.DomainValidation("LossLimitExceeded: %s", w.period)
		}
	}
	return nil
}
