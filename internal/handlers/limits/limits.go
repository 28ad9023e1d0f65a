package limits

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/grandbay/casino-core/internal/domain"
	"github.com/grandbay/casino-core/internal/dto"
	"github.com/grandbay/casino-core/pkg/auth"
	"github.com/grandbay/casino-core/pkg/utils"
)

type Service interface {
	GetLimits(ctx context.Context, playerID int) (*domain.PlayerLimit, error)
	Update(ctx context.Context, playerID int, req dto.LimitUpdateRequestDTO) (*domain.PlayerLimit, error)
}

type LimitHandler struct {
	limitService Service
}

func New(limitService Service) *LimitHandler {
	return &LimitHandler{
		limitService: limitService,
	}
}

// GetLimits godoc
//
//	@Summary		Get responsible-gambling limits
//	@Description	Current and pending deposit/loss limits for the authenticated player
//	@Tags			Limits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.LimitsResponseDTO
//	@Failure		401	{object}	utils.Response	"Player not authorized"
//	@Failure		404	{object}	utils.Response	"Limits not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/player/limits [get]
func (h *LimitHandler) GetLimits(w http.ResponseWriter, r *http.Request) {
	playerID := r.Context().Value(auth.PlayerIDKey).(int)

	limits, err := h.limitService.GetLimits(r.Context(), playerID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(limits))
}

// Update godoc
//
//	@Summary		Update responsible-gambling limits
//	@Description	Partial update of the six limit fields. Decreases apply immediately; increases activate after the configured delay.
//	@Tags			Limits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LimitUpdateRequestDTO	true	"Limit update payload"
//	@Success		200		{object}	dto.LimitsResponseDTO		"Updated limits"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"Player not authorized"
//	@Failure		409		{object}	utils.Response				"A pending increase blocks the category"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/player/limits [patch]
func (h *LimitHandler) Update(w http.ResponseWriter, r *http.Request) {
	playerID := r.Context().Value(auth.PlayerIDKey).(int)

	var req dto.LimitUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	limits, err := h.limitService.Update(r.Context(), playerID, req)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(limits))
}

func toResponseDTO(l *domain.PlayerLimit) dto.LimitsResponseDTO {
	return dto.LimitsResponseDTO{
		DepositDaily:   dto.LimitFieldDTO{Current: l.DepositDaily, Pending: l.PendingDepositDaily, PendingActivation: l.PendingDepositDailyAt},
		DepositWeekly:  dto.LimitFieldDTO{Current: l.DepositWeekly, Pending: l.PendingDepositWeekly, PendingActivation: l.PendingDepositWeeklyAt},
		DepositMonthly: dto.LimitFieldDTO{Current: l.DepositMonthly, Pending: l.PendingDepositMonthly, PendingActivation: l.PendingDepositMonthlyAt},
		LossDaily:      dto.LimitFieldDTO{Current: l.LossDaily, Pending: l.PendingLossDaily, PendingActivation: l.PendingLossDailyAt},
		LossWeekly:     dto.LimitFieldDTO{Current: l.LossWeekly, Pending: l.PendingLossWeekly, PendingActivation: l.PendingLossWeeklyAt},
		LossMonthly:    dto.LimitFieldDTO{Current: l.LossMonthly, Pending: l.PendingLossMonthly, PendingActivation: l.PendingLossMonthlyAt},
	}
}

func respondDomainError(w http.ResponseWriter, err error) {
	code, ok := domain.CodeOf(err)
	if !ok {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	switch code {
	case domain.CodeNotFound:
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case domain.CodeDomainConflict:
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case domain.CodeSystemConfiguration:
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
	}
}
