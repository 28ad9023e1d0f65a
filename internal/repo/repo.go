package repo

import (
	"github.com/grandbay/casino-core/internal/pg"
	accountrepo "github.com/grandbay/casino-core/internal/repo/account-repo"
	auditrepo "github.com/grandbay/casino-core/internal/repo/audit-repo"
	limitrepo "github.com/grandbay/casino-core/internal/repo/limit-repo"
	playerrepo "github.com/grandbay/casino-core/internal/repo/player-repo"
	settingsrepo "github.com/grandbay/casino-core/internal/repo/settings-repo"
	transactionrepo "github.com/grandbay/casino-core/internal/repo/transaction-repo"
)

type Repositories struct {
	PlayerRepo      *playerrepo.Repository
	AccountRepo     *accountrepo.Repository
	TransactionRepo *transactionrepo.Repository
	LimitRepo       *limitrepo.Repository
	AuditRepo       *auditrepo.Repository
	SettingsRepo    *settingsrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		PlayerRepo:      playerrepo.New(conn),
		AccountRepo:     accountrepo.New(conn, txManager),
		TransactionRepo: transactionrepo.New(conn),
		LimitRepo:       limitrepo.New(conn, txManager),
		AuditRepo:       auditrepo.New(conn),
		SettingsRepo:    settingsrepo.New(conn),
	}
}
