package settingsservice

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/grandbay/casino-core/internal/domain"
)

// Keys of the read-only platform settings the engine consumes.
const (
	KeySystemCurrency         = "SystemCurrency"
	KeyMinDepositAmount       = "MinDepositAmount"
	KeyMaxDepositAmount       = "MaxDepositAmount"
	KeyDefaultSignupBonus     = "DefaultSignupBonus"
	KeyLimitIncreaseDelayDays = "LimitIncreaseDelayDays"
)

type Repo interface {
	Get(ctx context.Context, key string) (*string, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) String(ctx context.Context, key string) (string, error) {
	value, err := s.repo.Get(ctx, key)
	if err != nil {
		zap.L().Error("failed to read setting", zap.String("key", key), zap.Error(err))
		return "", err
	}
	if value == nil {
		return "", domain.SystemConfiguration("setting %s is missing", key)
	}
	return *value, nil
}

func (s *Service) Decimal(ctx context.Context, key string) (decimal.Decimal, error) {
	value, err := s.String(ctx, key)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, domain.SystemConfiguration("setting %s is not a valid decimal: %s", key, value)
	}
	return d, nil
}

func (s *Service) Int(ctx context.Context, key string) (int, error) {
	value, err := s.String(ctx, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, domain.SystemConfiguration("setting %s is not a valid integer: %s", key, value)
	}
	return n, nil
}
