package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionRequestDTO struct {
	Type        string           `json:"type" example:"DEPOSIT"`
	Amount      decimal.Decimal  `json:"amount" example:"100"`
	Currency    string           `json:"currency" example:"EUR"`
	GameID      *int             `json:"game_id,omitempty" example:"1"`
	GameRoundID *string          `json:"game_round_id,omitempty" example:"round-42"`
	BetAmount   *decimal.Decimal `json:"bet_amount,omitempty" example:"50"`
}

type TransactionResponseDTO struct {
	ID             int             `json:"id" example:"1"`
	UID            string          `json:"uid" example:"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`
	SequenceNumber int64           `json:"sequence_number" example:"1024"`
	Type           string          `json:"type" example:"DEPOSIT"`
	Status         string          `json:"status" example:"COMPLETED"`
	Amount         decimal.Decimal `json:"amount" example:"100"`
	Currency       string          `json:"currency" example:"EUR"`
	OldBalance     decimal.Decimal `json:"old_balance" example:"500"`
	NewBalance     decimal.Decimal `json:"new_balance" example:"600"`
	GameID         *int            `json:"game_id,omitempty" example:"1"`
	GameName       *string         `json:"game_name,omitempty" example:"Book of Gold"`
	GameRoundID    *string         `json:"game_round_id,omitempty" example:"round-42"`
	InsertedAt     time.Time       `json:"inserted_at" example:"2024-02-09T16:09:57+03:00"`
}
