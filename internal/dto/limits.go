package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LimitUpdateRequestDTO is a partial update: absent fields are untouched.
// Values are whole currency units.
type LimitUpdateRequestDTO struct {
	DepositDailyLimit   *int64 `json:"deposit_daily_limit,omitempty" example:"100"`
	DepositWeeklyLimit  *int64 `json:"deposit_weekly_limit,omitempty" example:"500"`
	DepositMonthlyLimit *int64 `json:"deposit_monthly_limit,omitempty" example:"2000"`
	LossDailyLimit      *int64 `json:"loss_daily_limit,omitempty" example:"50"`
	LossWeeklyLimit     *int64 `json:"loss_weekly_limit,omitempty" example:"250"`
	LossMonthlyLimit    *int64 `json:"loss_monthly_limit,omitempty" example:"1000"`
}

type LimitFieldDTO struct {
	Current           *decimal.Decimal `json:"current,omitempty" example:"100"`
	Pending           *decimal.Decimal `json:"pending,omitempty" example:"300"`
	PendingActivation *time.Time       `json:"pending_activation,omitempty" example:"2024-02-23T00:00:00Z"`
}

type LimitsResponseDTO struct {
	DepositDaily   LimitFieldDTO `json:"deposit_daily"`
	DepositWeekly  LimitFieldDTO `json:"deposit_weekly"`
	DepositMonthly LimitFieldDTO `json:"deposit_monthly"`
	LossDaily      LimitFieldDTO `json:"loss_daily"`
	LossWeekly     LimitFieldDTO `json:"loss_weekly"`
	LossMonthly    LimitFieldDTO `json:"loss_monthly"`
}
