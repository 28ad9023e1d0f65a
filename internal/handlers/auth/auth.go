package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/grandbay/casino-core/internal/domain"
	"github.com/grandbay/casino-core/internal/dto"
	"github.com/grandbay/casino-core/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, login, password string) (*domain.Player, error)
	Authenticate(ctx context.Context, login, password string) (*domain.Player, error)
	GenerateToken(playerID int) (string, error)
}

type AuthHandler struct {
	playerService Service
}

func New(playerService Service) *AuthHandler {
	return &AuthHandler{
		playerService: playerService,
	}
}

// Register godoc
//
//	@Summary		Register a new player
//	@Description	Create a new player account with login and password; grants the configured signup bonus.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Player already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/player/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	player, err := h.playerService.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		if code, ok := domain.CodeOf(err); ok && code == domain.CodeDomainConflict {
			utils.RespondWithError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	token, err := h.playerService.GenerateToken(player.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Message: "Player successfully registered",
	})
}

// Login godoc
//
//	@Summary		Authenticate player
//	@Description	Log in with a player account and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/player/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	player, err := h.playerService.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		var domainErr *domain.Error
		if errors.As(err, &domainErr) {
			utils.RespondWithError(w, http.StatusUnauthorized, domainErr.Message)
			return
		}
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.playerService.GenerateToken(player.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "Player successfully authenticated",
	})
}
