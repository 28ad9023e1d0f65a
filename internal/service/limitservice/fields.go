package limitservice

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/grandbay/casino-core/internal/domain"
	"github.com/grandbay/casino-core/internal/dto"
)

// limitField enumerates one configurable limit: its intake name, its
// category, and accessors into the request and the stored row. The table
// replaces any runtime field reflection for partial updates and audits.
type limitField struct {
	name      string
	category  domain.LimitCategory
	period    domain.LimitPeriod
	request   func(*dto.LimitUpdateRequestDTO) *int64
	current   func(*domain.PlayerLimit) **decimal.Decimal
	pending   func(*domain.PlayerLimit) **decimal.Decimal
	pendingAt func(*domain.PlayerLimit) **time.Time
}

var limitFields = []limitField{
	{
		name:      "deposit_daily_limit",
		category:  domain.CategoryDeposit,
		period:    domain.PeriodDaily,
		request:   func(r *dto.LimitUpdateRequestDTO) *int64 { return r.DepositDailyLimit },
		current:   func(l *domain.PlayerLimit) **decimal.Decimal { return &l.DepositDaily },
		pending:   func(l *domain.PlayerLimit) **decimal.Decimal { return &l.PendingDepositDaily },
		pendingAt: func(l *domain.PlayerLimit) **time.Time { return &l.PendingDepositDailyAt },
	},
	{
		name:      "deposit_weekly_limit",
		category:  domain.CategoryDeposit,
		period:    domain.PeriodWeekly,
		request:   func(r *dto.LimitUpdateRequestDTO) *int64 { return r.DepositWeeklyLimit },
		current:   func(l *domain.PlayerLimit) **decimal.Decimal { return &l.DepositWeekly },
		pending:   func(l *domain.PlayerLimit) **decimal.Decimal { return &l.PendingDepositWeekly },
		pendingAt: func(l *domain.PlayerLimit) **time.Time { return &l.PendingDepositWeeklyAt },
	},
	{
		name:      "deposit_monthly_limit",
		category:  domain.CategoryDeposit,
		period:    domain.PeriodMonthly,
		request:   func(r *dto.LimitUpdateRequestDTO) *int64 { return r.DepositMonthlyLimit },
		current:   func(l *domain.PlayerLimit) **decimal.Decimal { return &l.DepositMonthly },
		pending:   func(l *domain.PlayerLimit) **decimal.Decimal { return &l.PendingDepositMonthly },
		pendingAt: func(l *domain.PlayerLimit) **time.Time { return &l.PendingDepositMonthlyAt },
	},
	{
		name:      "loss_daily_limit",
		category:  domain.CategoryLoss,
		period:    domain.PeriodDaily,
		request:   func(r *dto.LimitUpdateRequestDTO) *int64 { return r.LossDailyLimit },
		current:   func(l *domain.PlayerLimit) **decimal.Decimal { return &l.LossDaily },
		pending:   func(l *domain.PlayerLimit) **decimal.Decimal { return &l.PendingLossDaily },
		pendingAt: func(l *domain.PlayerLimit) **time.Time { return &l.PendingLossDailyAt },
	},
	{
		name:      "loss_weekly_limit",
		category:  domain.CategoryLoss,
		period:    domain.PeriodWeekly,
		request:   func(r *dto.LimitUpdateRequestDTO) *int64 { return r.LossWeeklyLimit },
		current:   func(l *domain.PlayerLimit) **decimal.Decimal { return &l.LossWeekly },
		pending:   func(l *domain.PlayerLimit) **decimal.Decimal { return &l.PendingLossWeekly },
		pendingAt: func(l *domain.PlayerLimit) **time.Time { return &l.PendingLossWeeklyAt },
	},
	{
		name:      "loss_monthly_limit",
		category:  domain.CategoryLoss,
		period:    domain.PeriodMonthly,
		request:   func(r *dto.LimitUpdateRequestDTO) *int64 { return r.LossMonthlyLimit },
		current:   func(l *domain.PlayerLimit) **decimal.Decimal { return &l.LossMonthly },
		pending:   func(l *domain.PlayerLimit) **decimal.Decimal { return &l.PendingLossMonthly },
		pendingAt: func(l *domain.PlayerLimit) **time.Time { return &l.PendingLossMonthlyAt },
	},
}

func categoryHasPending(l *domain.PlayerLimit, category domain.LimitCategory) bool {
	for _, f := range limitFields {
		if f.category == category && *f.pending(l) != nil {
			return true
		}
	}
	return false
}

func formatLimit(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
