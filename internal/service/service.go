package service

import (
	"github.com/grandbay/casino-core/internal/handlers/audit"
	"github.com/grandbay/casino-core/internal/handlers/auth"
	"github.com/grandbay/casino-core/internal/handlers/exclusion"
	"github.com/grandbay/casino-core/internal/handlers/limits"
	"github.com/grandbay/casino-core/internal/handlers/transactions"

	pkgauth "github.com/grandbay/casino-core/pkg/auth"

	"github.com/grandbay/casino-core/internal/pg"
	"github.com/grandbay/casino-core/internal/repo"
	"github.com/grandbay/casino-core/internal/service/exclusionservice"
	"github.com/grandbay/casino-core/internal/service/limitservice"
	"github.com/grandbay/casino-core/internal/service/playerservice"
	"github.com/grandbay/casino-core/internal/service/settingsservice"
	"github.com/grandbay/casino-core/internal/service/transactionservice"
)

type Services struct {
	PlayerService      auth.Service
	TransactionService transactions.Service
	LimitService       limits.Service
	ExclusionService   exclusion.Service
	AuditService       audit.Service

	// Concrete engines the reconciler drives directly.
	LimitEngine     *limitservice.Service
	ExclusionEngine *exclusionservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	settingsService := settingsservice.New(repo.SettingsRepo)
	limitService := limitservice.New(repo.LimitRepo, repo.TransactionRepo, repo.AuditRepo, settingsService, txManager)
	transactionService := transactionservice.New(repo.AccountRepo, repo.TransactionRepo, repo.PlayerRepo, limitService, settingsService, txManager)
	exclusionService := exclusionservice.New(repo.PlayerRepo, repo.AuditRepo, txManager)
	playerService := playerservice.New(repo.PlayerRepo, transactionService, limitService, repo.AuditRepo, settingsService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		PlayerService:      playerService,
		TransactionService: transactionService,
		LimitService:       limitService,
		ExclusionService:   exclusionService,
		AuditService:       playerService,
		LimitEngine:        limitService,
		ExclusionEngine:    exclusionService,
	}
}
