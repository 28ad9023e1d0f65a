package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeDeposit  TransactionType = "DEPOSIT"
	TypeWithdraw TransactionType = "WITHDRAW"
	TypeBet      TransactionType = "BET"
	TypeWin      TransactionType = "WIN"
	TypeTax      TransactionType = "TAX"
	TypeBonus    TransactionType = "BONUS"
)

// RequestableTypes are the types a caller may submit; TAX rows are only ever
// produced internally alongside a win.
var RequestableTypes = []TransactionType{TypeDeposit, TypeWithdraw, TypeBet, TypeWin, TypeBonus}

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusFailed    TransactionStatus = "FAILED"
)

type LimitCategory string

const (
	CategoryDeposit LimitCategory = "DEPOSIT"
	CategoryLoss    LimitCategory = "LOSS"
)

type LimitPeriod string

const (
	PeriodDaily   LimitPeriod = "daily"
	PeriodWeekly  LimitPeriod = "weekly"
	PeriodMonthly LimitPeriod = "monthly"
)

type ExclusionPeriod string

const (
	ExclusionSixMonths ExclusionPeriod = "SIX_MONTHS"
	ExclusionOneYear   ExclusionPeriod = "ONE_YEAR"
	ExclusionFiveYears ExclusionPeriod = "FIVE_YEARS"
	ExclusionPermanent ExclusionPeriod = "PERMANENT"
)

// End computes the exclusion end date for a temporary period; permanent
// periods have none.
func (p ExclusionPeriod) End(from time.Time) *time.Time {
	var end time.Time
	switch p {
	case ExclusionSixMonths:
		end = from.AddDate(0, 6, 0)
	case ExclusionOneYear:
		end = from.AddDate(1, 0, 0)
	case ExclusionFiveYears:
		end = from.AddDate(5, 0, 0)
	default:
		return nil
	}
	return &end
}

func (p ExclusionPeriod) Valid() bool {
	switch p {
	case ExclusionSixMonths, ExclusionOneYear, ExclusionFiveYears, ExclusionPermanent:
		return true
	}
	return false
}

type Player struct {
	ID              int              `db:"id"`
	Login           string           `db:"login"`
	PasswordHash    string           `db:"password_hash"`
	KYCVerified     bool             `db:"kyc_verified"`
	IsActive        bool             `db:"is_active"`
	SelfExcluded    bool             `db:"self_excluded"`
	ExclusionPeriod *ExclusionPeriod `db:"exclusion_period"`
	ExclusionStart  *time.Time       `db:"exclusion_start"`
	ExclusionEnd    *time.Time       `db:"exclusion_end"`
	CreatedAt       time.Time        `db:"created_at"`
}

// ExcludedAt reports whether a self-exclusion is in force at the given
// instant. A nil end means the exclusion is permanent.
func (p *Player) ExcludedAt(now time.Time) bool {
	if !p.SelfExcluded {
		return false
	}
	return p.ExclusionEnd == nil || p.ExclusionEnd.After(now)
}

func (p *Player) PermanentlyExcluded() bool {
	return p.SelfExcluded && p.ExclusionEnd == nil
}

type Account struct {
	ID       int             `db:"id"`
	PlayerID int             `db:"player_id"`
	Balance  decimal.Decimal `db:"balance"`
	Currency string          `db:"currency"`
}

type Game struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

type Transaction struct {
	ID             int               `db:"id"`
	UID            uuid.UUID         `db:"uid"`
	SequenceNumber int64             `db:"sequence_number"`
	AccountID      int               `db:"account_id"`
	Type           TransactionType   `db:"type"`
	Status         TransactionStatus `db:"status"`
	Amount         decimal.Decimal   `db:"amount"`
	Currency       string            `db:"currency"`
	OldBalance     decimal.Decimal   `db:"old_balance"`
	NewBalance     decimal.Decimal   `db:"new_balance"`
	GameID         *int              `db:"game_id"`
	GameName       *string           `db:"game_name"`
	GameRoundID    *string           `db:"game_round_id"`
	InsertedAt     time.Time         `db:"inserted_at"`
}

type PlayerLimit struct {
	PlayerID int `db:"player_id"`

	DepositDaily   *decimal.Decimal `db:"deposit_daily"`
	DepositWeekly  *decimal.Decimal `db:"deposit_weekly"`
	DepositMonthly *decimal.Decimal `db:"deposit_monthly"`
	LossDaily      *decimal.Decimal `db:"loss_daily"`
	LossWeekly     *decimal.Decimal `db:"loss_weekly"`
	LossMonthly    *decimal.Decimal `db:"loss_monthly"`

	PendingDepositDaily     *decimal.Decimal `db:"pending_deposit_daily"`
	PendingDepositDailyAt   *time.Time       `db:"pending_deposit_daily_at"`
	PendingDepositWeekly    *decimal.Decimal `db:"pending_deposit_weekly"`
	PendingDepositWeeklyAt  *time.Time       `db:"pending_deposit_weekly_at"`
	PendingDepositMonthly   *decimal.Decimal `db:"pending_deposit_monthly"`
	PendingDepositMonthlyAt *time.Time       `db:"pending_deposit_monthly_at"`
	PendingLossDaily        *decimal.Decimal `db:"pending_loss_daily"`
	PendingLossDailyAt      *time.Time       `db:"pending_loss_daily_at"`
	PendingLossWeekly       *decimal.Decimal `db:"pending_loss_weekly"`
	PendingLossWeeklyAt     *time.Time       `db:"pending_loss_weekly_at"`
	PendingLossMonthly      *decimal.Decimal `db:"pending_loss_monthly"`
	PendingLossMonthlyAt    *time.Time       `db:"pending_loss_monthly_at"`
}

type AuditKind string

const (
	AuditDetail        AuditKind = "DETAIL"
	AuditLimit         AuditKind = "LIMIT"
	AuditBan           AuditKind = "BAN"
	AuditSelfExclusion AuditKind = "SELF_EXCLUSION"
)

type AuditEvent struct {
	ID        int       `db:"id"`
	PlayerID  int       `db:"player_id"`
	Kind      AuditKind `db:"kind"`
	Field     string    `db:"field"`
	OldValue  string    `db:"old_value"`
	NewValue  string    `db:"new_value"`
	ChangedBy string    `db:"changed_by"`
	Comment   string    `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
}
