package dto

import "time"

type SelfExclusionRequestDTO struct {
	Period string `json:"period" example:"SIX_MONTHS"`
}

type SelfExclusionResponseDTO struct {
	Period string     `json:"period" example:"SIX_MONTHS"`
	Start  time.Time  `json:"start" example:"2024-02-09T16:09:57+03:00"`
	End    *time.Time `json:"end,omitempty" example:"2024-08-09T16:09:57+03:00"`
}
