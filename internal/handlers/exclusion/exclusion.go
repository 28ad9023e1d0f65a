package exclusion

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
	Apply(ctx context.Context, playerID int, period domain.ExclusionPeriod) (*domain.Player, error)
}

type ExclusionHandler struct {
	exclusionService Service
}

func New(exclusionService Service) *ExclusionHandler {
	return &ExclusionHandler{
		exclusionService: exclusionService,
	}
}

// Apply godoc
//
//	@Summary		Self-exclude
//	@Description	Enter or extend a self-exclusion period. Temporary exclusions can only be extended; permanent exclusion is terminal and deactivates the account.
//	@Tags			SelfExclusion
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SelfExclusionRequestDTO	true	"Self-exclusion payload"
//	@Success		200		{object}	dto.SelfExclusionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"Player not authorized"
//	@Failure		422		{object}	utils.Response	"Transition not allowed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/player/self-exclusion [post]
func (h *ExclusionHandler) Apply(w http.ResponseWriter, r *http.Request) {
	playerID := r.Context().Value(auth.PlayerIDKey).(int)

	var req dto.SelfExclusionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	player, err := h.exclusionService.Apply(r.Context(), playerID, domain.ExclusionPeriod(req.Period))
	if err != nil {
		code, ok := domain.CodeOf(err)
		if !ok {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		switch code {
		case domain.CodeNotFound:
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case domain.CodeInvalidArgument:
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case domain.CodeDomainValidation:
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	resp := dto.SelfExclusionResponseDTO{
		Period: string(*player.ExclusionPeriod),
		End:    player.ExclusionEnd,
	}
	if player.ExclusionStart != nil {
		resp.Start = *player.ExclusionStart
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
