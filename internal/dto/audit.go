package dto

import "time"

type AuditEventResponseDTO struct {
	ID        int       `json:"id" example:"1"`
	Kind      string    `json:"kind" example:"LIMIT"`
	Field     string    `json:"field" example:"deposit_daily_limit"`
	OldValue  string    `json:"old_value,omitempty" example:"100"`
	NewValue  string    `json:"new_value" example:"50"`
	ChangedBy string    `json:"changed_by" example:"player"`
	Comment   string    `json:"comment,omitempty" example:"pending limit increase activated"`
	CreatedAt time.Time `json:"created_at" example:"2024-02-09T16:09:57+03:00"`
}
