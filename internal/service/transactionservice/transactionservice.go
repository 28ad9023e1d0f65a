package transactionservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/grandbay/casino-core/internal/domain"
	"github.com/grandbay/casino-core/internal/dto"
	"github.com/grandbay/casino-core/internal/pg"
	"github.com/grandbay/casino-core/internal/service/settingsservice"
	"github.com/grandbay/casino-core/pkg/tax"
)

type AccountRepo interface {
	GetByPlayerID(ctx context.Context, playerID int) (*domain.Account, error)
	GetByPlayerIDForUpdate(ctx context.Context, playerID int) (*domain.Account, error)
	Create(ctx context.Context, playerID int, currency string) (*domain.Account, error)
	UpdateBalance(ctx context.Context, accountID int, balance decimal.Decimal) error
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	ListByAccountID(ctx context.Context, accountID int) ([]domain.Transaction, error)
	FindGameByID(ctx context.Context, id int) (*domain.Game, error)
}

type PlayerRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Player, error)
}

type LimitChecker interface {
	CheckDepositLimits(ctx context.Context, playerID, accountID int, amount decimal.Decimal, now time.Time) error
	CheckLossLimits(ctx context.Context, playerID, accountID int, amount decimal.Decimal, now time.Time) error
}

type Settings interface {
	String(ctx context.Context, key string) (string, error)
	Decimal(ctx context.Context, key string) (decimal.Decimal, error)
}

type Service struct {
	accountRepo     AccountRepo
	transactionRepo TransactionRepo
	playerRepo      PlayerRepo
	limits          LimitChecker
	settings        Settings
	txManager       pg.TXManager
}

func New(accountRepo AccountRepo, transactionRepo TransactionRepo, playerRepo PlayerRepo, limits LimitChecker, settings Settings, txManager pg.TXManager) *Service {
	return &Service{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		playerRepo:      playerRepo,
		limits:          limits,
		settings:        settings,
		txManager:       txManager,
	}
}

// Process runs one balance-affecting operation end to end: preconditions,
// the type-specific rules, the ledger append(s) and the balance write, all in
// one database transaction under an exclusive lock on the account row. On
// success the returned entry is the one matching the request; for a taxed win
// that is the win entry, never the tax entry.
func (s *Service) Process(ctx context.Context, playerID int, req dto.TransactionRequestDTO) (*domain.Transaction, error) {
	player, err := s.playerRepo.FindByID(ctx, playerID)
	if err != nil {
		zap.L().Error("failed to load player", zap.Error(err))
		return nil, err
	}
	if player == nil {
		return nil, domain.NotFound("player %d not found", playerID)
	}

	var result *domain.Transaction
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.GetByPlayerIDForUpdate(ctx, playerID)
		if err != nil {
			return err
		}
		if account == nil {
			return domain.NotFound("account for player %d not found", playerID)
		}

		op := operation{request: req, transactionType: domain.TransactionType(req.Type)}
		if !requestable(op.transactionType) {
			return domain.InvalidArgument("unsupported transaction type: %q", req.Type)
		}

		systemCurrency, err := s.settings.String(ctx, settingsservice.KeySystemCurrency)
		if err != nil {
			return err
		}
		if req.Currency != systemCurrency {
			return domain.InvalidArgument("unsupported currency: %q", req.Currency)
		}
		if !req.Amount.IsPositive() {
			return domain.InvalidArgument("amount must be positive")
		}

		if req.GameID != nil {
			game, err := s.transactionRepo.FindGameByID(ctx, *req.GameID)
			if err != nil {
				return err
			}
			if game == nil {
				return domain.NotFound("game %d not found", *req.GameID)
			}
			op.gameName = &game.Name
		}
		op.now = time.Now().UTC()

		result, err = s.dispatch(ctx, player, account, op)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// operation carries the validated request through the per-type handlers.
type operation struct {
	request         dto.TransactionRequestDTO
	transactionType domain.TransactionType
	gameName        *string
	now             time.Time
}

func requestable(t domain.TransactionType) bool {
	for _, rt := range domain.RequestableTypes {
		if t == rt {
			return true
		}
	}
	return false
}

// dispatch is a closed switch over the requestable types; each handler owns
// its own pre- and postconditions.
func (s *Service) dispatch(ctx context.Context, player *domain.Player, account *domain.Account, op operation) (*domain.Transaction, error) {
	switch op.transactionType {
	case domain.TypeDeposit:
		return s.processDeposit(ctx, player, account, op)
	case domain.TypeWithdraw:
		return s.processWithdraw(ctx, account, op)
	case domain.TypeBet:
		return s.processBet(ctx, player, account, op)
	case domain.TypeWin:
		return s.processWin(ctx, account, op)
	case domain.TypeBonus:
		return s.processBonus(ctx, account, op)
	}
	return nil, domain.InvalidArgument("unsupported transaction type: %q", op.transactionType)
}

func (s *Service) processDeposit(ctx context.Context, player *domain.Player, account *domain.Account, op operation) (*domain.Transaction, error) {
	if !player.KYCVerified {
		return nil, domain.Forbidden("player is not KYC verified")
	}
	if player.ExcludedAt(op.now) {
		return nil, domain.Forbidden("player is self-excluded")
	}

	minAmount, err := s.settings.Decimal(ctx, settingsservice.KeyMinDepositAmount)
	if err != nil {
		return nil, err
	}
	maxAmount, err := s.settings.Decimal(ctx, settingsservice.KeyMaxDepositAmount)
	if err != nil {
		return nil, err
	}
	amount := op.request.Amount
	if amount.LessThan(minAmount) || amount.GreaterThan(maxAmount) {
		return nil, domain.DomainValidation("deposit amount must be between %s and %s", minAmount, maxAmount)
	}

	if err := s.limits.CheckDepositLimits(ctx, player.ID, account.ID, amount, op.now); err != nil {
		return nil, err
	}

	return s.credit(ctx, account, op, domain.TypeDeposit, amount)
}

func (s *Service) processWithdraw(ctx context.Context, account *domain.Account, op operation) (*domain.Transaction, error) {
	amount := op.request.Amount
	if account.Balance.LessThan(amount) {
		return nil, domain.InsufficientBalance("insufficient balance")
	}
	return s.debit(ctx, account, op, domain.TypeWithdraw, amount)
}

func (s *Service) processBet(ctx context.Context, player *domain.Player, account *domain.Account, op operation) (*domain.Transaction, error) {
	amount := op.request.Amount
	if err := s.limits.CheckLossLimits(ctx, player.ID, account.ID, amount, op.now); err != nil {
		return nil, err
	}
	if account.Balance.LessThan(amount) {
		return nil, domain.InsufficientBalance("insufficient balance")
	}
	return s.debit(ctx, account, op, domain.TypeBet, amount)
}

func (s *Service) processWin(ctx context.Context, account *domain.Account, op operation) (*domain.Transaction, error) {
	if op.request.BetAmount == nil {
		return nil, domain.InvalidArgument("bet_amount is required for a win")
	}

	winEntry, err := s.credit(ctx, account, op, domain.TypeWin, op.request.Amount)
	if err != nil {
		return nil, err
	}

	taxAmount, applies := tax.Compute(*op.request.BetAmount, op.request.Amount)
	if !applies {
		return winEntry, nil
	}

	// The tax entry debits the same balance chain: its old balance is the
	// win's new balance.
	if _, err := s.debit(ctx, account, op, domain.TypeTax, taxAmount); err != nil {
		return nil, err
	}
	return winEntry, nil
}

func (s *Service) processBonus(ctx context.Context, account *domain.Account, op operation) (*domain.Transaction, error) {
	return s.credit(ctx, account, op, domain.TypeBonus, op.request.Amount)
}

func (s *Service) credit(ctx context.Context, account *domain.Account, op operation, t domain.TransactionType, amount decimal.Decimal) (*domain.Transaction, error) {
	return s.append(ctx, account, op, t, amount, account.Balance.Add(amount))
}

func (s *Service) debit(ctx context.Context, account *domain.Account, op operation, t domain.TransactionType, amount decimal.Decimal) (*domain.Transaction, error) {
	return s.append(ctx, account, op, t, amount, account.Balance.Sub(amount))
}

// append writes one ledger row bracketing the balance change and moves the
// account balance to the new value. The caller's account struct tracks the
// running balance so chained entries (win then tax) stay consistent.
func (s *Service) append(ctx context.Context, account *domain.Account, op operation, t domain.TransactionType, amount, newBalance decimal.Decimal) (*domain.Transaction, error) {
	entry := &domain.Transaction{
		AccountID:   account.ID,
		Type:        t,
		Status:      domain.StatusCompleted,
		Amount:      amount,
		Currency:    account.Currency,
		OldBalance:  account.Balance,
		NewBalance:  newBalance,
		GameID:      op.request.GameID,
		GameName:    op.gameName,
		GameRoundID: op.request.GameRoundID,
		InsertedAt:  op.now,
	}
	entry, err := s.transactionRepo.Create(ctx, entry)
	if err != nil {
		zap.L().Error("failed to append ledger entry", zap.Error(err))
		return nil, err
	}
	if err := s.accountRepo.UpdateBalance(ctx, account.ID, newBalance); err != nil {
		zap.L().Error("failed to update balance", zap.Error(err))
		return nil, err
	}
	account.Balance = newBalance
	return entry, nil
}

func (s *Service) History(ctx context.Context, playerID int) ([]domain.Transaction, error) {
	account, err := s.accountRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, domain.NotFound("account for player %d not found", playerID)
	}
	transactions, err := s.transactionRepo.ListByAccountID(ctx, account.ID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

func (s *Service) CreateAccount(ctx context.Context, playerID int) (*domain.Account, error) {
	currency, err := s.settings.String(ctx, settingsservice.KeySystemCurrency)
	if err != nil {
		return nil, err
	}
	account, err := s.accountRepo.Create(ctx, playerID, currency)
	if err != nil {
		zap.L().Error("failed to create account", zap.Error(err))
		return nil, err
	}
	return account, nil
}
