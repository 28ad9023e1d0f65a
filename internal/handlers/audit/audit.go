package audit

import (
	"context"
	"net/http"

	"github.com/grandbay/casino-core/internal/domain"
	"github.com/grandbay/casino-core/internal/dto"
	"github.com/grandbay/casino-core/pkg/auth"
	"github.com/grandbay/casino-core/pkg/utils"
)

type Service interface {
	AuditTrail(ctx context.Context, playerID int) ([]domain.AuditEvent, error)
}

type AuditHandler struct {
	playerService Service
}

func New(playerService Service) *AuditHandler {
	return &AuditHandler{
		playerService: playerService,
	}
}

// History godoc
//
//	@Summary		Get the audit trail
//	@Description	Every recorded change to the player's profile, limits and self-exclusion state, newest first
//	@Tags			Audit
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AuditEventResponseDTO
//	@Success		204	{object}	utils.Response	"No audit events"
//	@Failure		401	{object}	utils.Response	"Player not authorized"
//	@Failure		404	{object}	utils.Response	"Player not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/player/audit [get]
func (h *AuditHandler) History(w http.ResponseWriter, r *http.Request) {
	playerID := r.Context().Value(auth.PlayerIDKey).(int)

	events, err := h.playerService.AuditTrail(r.Context(), playerID)
	if err != nil {
		if code, ok := domain.CodeOf(err); ok && code == domain.CodeNotFound {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(events) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Audit events not found")
		return
	}

	response := make([]dto.AuditEventResponseDTO, len(events))
	for i, ev := range events {
		response[i] = dto.AuditEventResponseDTO{
			ID:        ev.ID,
			Kind:      string(ev.Kind),
			Field:     ev.Field,
			OldValue:  ev.OldValue,
			NewValue:  ev.NewValue,
			ChangedBy: ev.ChangedBy,
			Comment:   ev.Comment,
			CreatedAt: ev.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
