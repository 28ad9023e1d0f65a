package transactions

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/grandbay/casino-core/internal/domain"
	"github.com/grandbay/casino-core/internal/dto"
	"github.com/grandbay/casino-core/pkg/auth"
	"github.com/grandbay/casino-core/pkg/utils"
	"github.com/grandbay/casino-core/pkg/validate"
)

type Service interface {
	Process(ctx context.Context, playerID int, req dto.TransactionRequestDTO) (*domain.Transaction, error)
	History(ctx context.Context, playerID int) ([]domain.Transaction, error)
}

type TransactionHandler struct {
	transactionService Service
}

func New(transactionService Service) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// Process godoc
//
//	@Summary		Process a balance-affecting operation
//	@Description	Apply a deposit, withdrawal, bet, win or bonus to the player's account, enforcing responsible-gambling limits.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransactionRequestDTO	true	"Transaction request payload"
//	@Success		200		{object}	dto.TransactionResponseDTO	"The produced ledger entry"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		402		{object}	utils.Response				"Insufficient balance"
//	@Failure		403		{object}	utils.Response				"Player not allowed to transact"
//	@Failure		404		{object}	utils.Response				"Account, player or game not found"
//	@Failure		422		{object}	utils.Response				"Limit or amount rule violated"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/player/transactions [post]
func (h *TransactionHandler) Process(w http.ResponseWriter, r *http.Request) {
	playerID := r.Context().Value(auth.PlayerIDKey).(int)

	var req dto.TransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validate.IsCurrencyCode(req.Currency) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid currency code")
		return
	}

	transaction, err := h.transactionService.Process(r.Context(), playerID, req)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(transaction))
}

// History godoc
//
//	@Summary		Get transaction history
//	@Description	Get the player's ledger entries ordered by sequence number descending
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Ledger entries"
//	@Success		204	{object}	utils.Response				"No transactions"
//	@Failure		401	{object}	utils.Response				"Player not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/player/transactions [get]
func (h *TransactionHandler) History(w http.ResponseWriter, r *http.Request) {
	playerID := r.Context().Value(auth.PlayerIDKey).(int)

	transactions, err := h.transactionService.History(r.Context(), playerID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, tx := range transactions {
		tx := tx
		response[i] = toResponseDTO(&tx)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toResponseDTO(tx *domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:             tx.ID,
		UID:            tx.UID.String(),
		SequenceNumber: tx.SequenceNumber,
		Type:           string(tx.Type),
		Status:         string(tx.Status),
		Amount:         tx.Amount,
		Currency:       tx.Currency,
		OldBalance:     tx.OldBalance,
		NewBalance:     tx.NewBalance,
		GameID:         tx.GameID,
		GameName:       tx.GameName,
		GameRoundID:    tx.GameRoundID,
		InsertedAt:     tx.InsertedAt,
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
	case domain.CodeInvalidArgument:
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case domain.CodeForbidden:
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case domain.CodeInsufficientBalance:
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case domain.CodeDomainValidation:
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case domain.CodeDomainConflict:
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
	}
}
