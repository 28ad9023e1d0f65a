package playerservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/grandbay/casino-core/internal/domain"
	"github.com/grandbay/casino-core/internal/dto"
	"github.com/grandbay/casino-core/internal/service/settingsservice"
	"github.com/grandbay/casino-core/pkg/auth"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Player, error)
	FindByLogin(ctx context.Context, login string) (*domain.Player, error)
	Create(ctx context.Context, player *domain.Player) (*domain.Player, error)
	SetKYCVerified(ctx context.Context, playerID int, verified bool) error
}

type AccountService interface {
	CreateAccount(ctx context.Context, playerID int) (*domain.Account, error)
	Process(ctx context.Context, playerID int, req dto.TransactionRequestDTO) (*domain.Transaction, error)
}

type LimitService interface {
	CreateLimits(ctx context.Context, playerID int) (*domain.PlayerLimit, error)
}

type AuditRepo interface {
	Create(ctx context.Context, event *domain.AuditEvent) error
	ListByPlayerID(ctx context.Context, playerID int) ([]domain.AuditEvent, error)
}

type Settings interface {
	String(ctx context.Context, key string) (string, error)
	Decimal(ctx context.Context, key string) (decimal.Decimal, error)
}

type Service struct {
	playerRepo     Repo
	accountService AccountService
	limitService   LimitService
	auditRepo      AuditRepo
	settings       Settings
	hashService    auth.HashServiceInterface
	jwtService     auth.JWTServiceInterface
}

func New(repo Repo, accountService AccountService, limitService LimitService, auditRepo AuditRepo, settings Settings, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		playerRepo:     repo,
		accountService: accountService,
		limitService:   limitService,
		auditRepo:      auditRepo,
		settings:       settings,
		hashService:    hashService,
		jwtService:     jwtService,
	}
}

// Register creates the player with their account and limits row, then grants
// the configured signup bonus as a BONUS ledger entry.
func (s *Service) Register(ctx context.Context, login, password string) (*domain.Player, error) {
	existing, err := s.playerRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find player: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("player already exists, login: ", zap.String("login", login))
		return nil, domain.DomainConflict("login already taken")
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	player := &domain.Player{
		Login:        login,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}
	player, err = s.playerRepo.Create(ctx, player)
	if err != nil {
		zap.L().Error("can't create player: ", zap.Error(err))
		return nil, err
	}

	if _, err := s.accountService.CreateAccount(ctx, player.ID); err != nil {
		zap.L().Error("can't create account: ", zap.Error(err))
		return nil, err
	}
	if _, err := s.limitService.CreateLimits(ctx, player.ID); err != nil {
		zap.L().Error("can't create limits: ", zap.Error(err))
		return nil, err
	}
	if err := s.grantSignupBonus(ctx, player.ID); err != nil {
		zap.L().Error("can't grant signup bonus: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("player successfully registered", zap.String("login", login))
	return player, nil
}

func (s *Service) grantSignupBonus(ctx context.Context, playerID int) error {
	bonus, err := s.settings.Decimal(ctx, settingsservice.KeyDefaultSignupBonus)
	if err != nil {
		return err
	}
	if !bonus.IsPositive() {
		return nil
	}
	currency, err := s.settings.String(ctx, settingsservice.KeySystemCurrency)
	if err != nil {
		return err
	}
	_, err = s.accountService.Process(ctx, playerID, dto.TransactionRequestDTO{
		Type:     string(domain.TypeBonus),
		Amount:   bonus,
		Currency: currency,
	})
	return err
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Player, error) {
	player, err := s.playerRepo.FindByLogin(ctx, login)
	if err != nil || player == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, domain.Forbidden("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(player.PasswordHash, password); !ok {
		return nil, domain.Forbidden("invalid credentials")
	}
	if !player.IsActive {
		return nil, domain.Forbidden("account is inactive")
	}
	zap.L().Info("player successfully authenticated", zap.String("login", login))
	return player, nil
}

func (s *Service) GenerateToken(playerID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(playerID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// SetKYCVerified flips the verification flag and writes a detail audit row.
func (s *Service) SetKYCVerified(ctx context.Context, playerID int, verified bool, changedBy string) error {
	player, err := s.playerRepo.FindByID(ctx, playerID)
	if err != nil {
		return err
	}
	if player == nil {
		return domain.NotFound("player %d not found", playerID)
	}
	if player.KYCVerified == verified {
		return nil
	}
	if err := s.playerRepo.SetKYCVerified(ctx, playerID, verified); err != nil {
		return err
	}
	return s.auditRepo.Create(ctx, &domain.AuditEvent{
		PlayerID:  playerID,
		Kind:      domain.AuditDetail,
		Field:     "kyc_verified",
		OldValue:  boolString(player.KYCVerified),
		NewValue:  boolString(verified),
		ChangedBy: changedBy,
		CreatedAt: time.Now().UTC(),
	})
}

// AuditTrail lists every recorded change to the player's profile, limits and
// self-exclusion state, newest first.
func (s *Service) AuditTrail(ctx context.Context, playerID int) ([]domain.AuditEvent, error) {
	player, err := s.playerRepo.FindByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, domain.NotFound("player %d not found", playerID)
	}
	return s.auditRepo.ListByPlayerID(ctx, playerID)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
