package playerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/grandbay/casino-core/internal/domain"
	"github.com/grandbay/casino-core/internal/dto"
	"github.com/grandbay/casino-core/internal/service/settingsservice"
	"github.com/grandbay/casino-core/pkg/auth"
)

type mocks struct {
	playerRepo     *MockRepo
	accountService *MockAccountService
	limitService   *MockLimitService
	auditRepo      *MockAuditRepo
	settings       *MockSettings
	hashService    *auth.MockHashServiceInterface
	jwtService     *auth.MockJWTServiceInterface
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		playerRepo:     NewMockRepo(ctrl),
		accountService: NewMockAccountService(ctrl),
		limitService:   NewMockLimitService(ctrl),
		auditRepo:      NewMockAuditRepo(ctrl),
		settings:       NewMockSettings(ctrl),
		hashService:    auth.NewMockHashServiceInterface(ctrl),
		jwtService:     auth.NewMockJWTServiceInterface(ctrl),
	}
	service := New(m.playerRepo, m.accountService, m.limitService, m.auditRepo, m.settings, m.hashService, m.jwtService)
	defer ctrl.Finish()
	return service, m
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
		expectedCode  domain.ErrorCode
	}{
		{
			name: "Successful registration with signup bonus",
			prepareMock: func(m *mocks) {
				m.playerRepo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(nil, nil)
				m.hashService.EXPECT().HashPassword("secretpassword").Return("hashedpassword", nil)
				m.playerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, player *domain.Player) (*domain.Player, error) {
						player.ID = 1
						return player, nil
					},
				)
				m.accountService.EXPECT().CreateAccount(gomock.Any(), 1).Return(&domain.Account{ID: 10, PlayerID: 1}, nil)
				m.limitService.EXPECT().CreateLimits(gomock.Any(), 1).Return(&domain.PlayerLimit{PlayerID: 1}, nil)
				m.settings.EXPECT().Decimal(gomock.Any(), settingsservice.KeyDefaultSignupBonus).Return(decimal.NewFromInt(20), nil)
				m.settings.EXPECT().String(gomock.Any(), settingsservice.KeySystemCurrency).Return("EUR", nil)
				m.accountService.EXPECT().Process(gomock.Any(), 1, dto.TransactionRequestDTO{
					Type:     "BONUS",
					Amount:   decimal.NewFromInt(20),
					Currency: "EUR",
				}).Return(&domain.Transaction{ID: 1, Type: domain.TypeBonus}, nil)
			},
		},
		{
			name: "No bonus is granted when the setting is zero",
			prepareMock: func(m *mocks) {
				m.playerRepo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(nil, nil)
				m.hashService.EXPECT().HashPassword("secretpassword").Return("hashedpassword", nil)
				m.playerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, player *domain.Player) (*domain.Player, error) {
						player.ID = 1
						return player, nil
					},
				)
				m.accountService.EXPECT().CreateAccount(gomock.Any(), 1).Return(&domain.Account{ID: 10, PlayerID: 1}, nil)
				m.limitService.EXPECT().CreateLimits(gomock.Any(), 1).Return(&domain.PlayerLimit{PlayerID: 1}, nil)
				m.settings.EXPECT().Decimal(gomock.Any(), settingsservice.KeyDefaultSignupBonus).Return(decimal.Zero, nil)
			},
		},
		{
			name: "Login already taken",
			prepareMock: func(m *mocks) {
				m.playerRepo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(&domain.Player{Login: "alice"}, nil)
			},
			expectedCode: domain.CodeDomainConflict,
		},
		{
			name: "Error finding player",
			prepareMock: func(m *mocks) {
				m.playerRepo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name: "Error hashing password",
			prepareMock: func(m *mocks) {
				m.playerRepo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(nil, nil)
				m.hashService.EXPECT().HashPassword("secretpassword").Return("", errors.New("hash error"))
			},
			expectedError: errors.New("hash error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			player, err := service.Register(context.Background(), "alice", "secretpassword")
			if tt.expectedCode != "" {
				code, ok := domain.CodeOf(err)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedCode, code)
				return
			}
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, player.ID)
			assert.Equal(t, "alice", player.Login)
			assert.Equal(t, "hashedpassword", player.PasswordHash)
			assert.True(t, player.IsActive)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name         string
		prepareMock  func(m *mocks)
		expectedCode domain.ErrorCode
	}{
		{
			name: "Valid credentials",
			prepareMock: func(m *mocks) {
				m.playerRepo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(&domain.Player{
					ID: 1, Login: "alice", PasswordHash: "hashedpassword", IsActive: true,
				}, nil)
				m.hashService.EXPECT().ComparePassword("hashedpassword", "secretpassword").Return(true)
			},
		},
		{
			name: "Unknown login",
			prepareMock: func(m *mocks) {
				m.playerRepo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(nil, nil)
			},
			expectedCode: domain.CodeForbidden,
		},
		{
			name: "Wrong password",
			prepareMock: func(m *mocks) {
				m.playerRepo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(&domain.Player{
					ID: 1, Login: "alice", PasswordHash: "hashedpassword", IsActive: true,
				}, nil)
				m.hashService.EXPECT().ComparePassword("hashedpassword", "secretpassword").Return(false)
			},
			expectedCode: domain.CodeForbidden,
		},
		{
			name: "Inactive account",
			prepareMock: func(m *mocks) {
				m.playerRepo.EXPECT().FindByLogin(gomock.Any(), "alice").Return(&domain.Player{
					ID: 1, Login: "alice", PasswordHash: "hashedpassword", IsActive: false,
				}, nil)
				m.hashService.EXPECT().ComparePassword("hashedpassword", "secretpassword").Return(true)
			},
			expectedCode: domain.CodeForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			player, err := service.Authenticate(context.Background(), "alice", "secretpassword")
			if tt.expectedCode != "" {
				code, _ := domain.CodeOf(err)
				assert.Equal(t, tt.expectedCode, code)
				assert.Nil(t, player)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, player.ID)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	t.Run("Token generated", func(t *testing.T) {
		service, m := NewMock(t)
		m.jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("token", nil)

		token, err := service.GenerateToken(1)
		assert.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("Generation fails", func(t *testing.T) {
		service, m := NewMock(t)
		m.jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("", errors.New("sign error"))

		_, err := service.GenerateToken(1)
		assert.Error(t, err)
	})
}

func TestSetKYCVerified(t *testing.T) {
	t.Run("Flag flipped and audited", func(t *testing.T) {
		service, m := NewMock(t)
		m.playerRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Player{ID: 1, KYCVerified: false}, nil)
		m.playerRepo.EXPECT().SetKYCVerified(gomock.Any(), 1, true).Return(nil)

		var audit *domain.AuditEvent
		m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, event *domain.AuditEvent) error {
				audit = event
				return nil
			},
		)

		err := service.SetKYCVerified(context.Background(), 1, true, "backoffice")
		assert.NoError(t, err)
		assert.Equal(t, domain.AuditDetail, audit.Kind)
		assert.Equal(t, "kyc_verified", audit.Field)
		assert.Equal(t, "false", audit.OldValue)
		assert.Equal(t, "true", audit.NewValue)
		assert.Equal(t, "backoffice", audit.ChangedBy)
	})

	t.Run("Unchanged flag is a no-op", func(t *testing.T) {
		service, m := NewMock(t)
		m.playerRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Player{ID: 1, KYCVerified: true}, nil)

		err := service.SetKYCVerified(context.Background(), 1, true, "backoffice")
		assert.NoError(t, err)
	})

	t.Run("Unknown player", func(t *testing.T) {
		service, m := NewMock(t)
		m.playerRepo.EXPECT().FindByID(gomock.Any(), 42).Return(nil, nil)

		err := service.SetKYCVerified(context.Background(), 42, true, "backoffice")
		code, _ := domain.CodeOf(err)
		assert.Equal(t, domain.CodeNotFound, code)
	})
}

func TestAuditTrail(t *testing.T) {
	t.Run("Events returned newest first", func(t *testing.T) {
		service, m := NewMock(t)
		m.playerRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Player{ID: 1, IsActive: true}, nil)
		m.auditRepo.EXPECT().ListByPlayerID(gomock.Any(), 1).Return([]domain.AuditEvent{
			{ID: 2, PlayerID: 1, Kind: domain.AuditSelfExclusion, Field: "self_exclusion"},
			{ID: 1, PlayerID: 1, Kind: domain.AuditLimit, Field: "deposit_daily_limit"},
		}, nil)

		events, err := service.AuditTrail(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, events, 2)
		assert.Equal(t, domain.AuditSelfExclusion, events[0].Kind)
	})

	t.Run("Unknown player", func(t *testing.T) {
		service, m := NewMock(t)
		m.playerRepo.EXPECT().FindByID(gomock.Any(), 42).Return(nil, nil)

		_, err := service.AuditTrail(context.Background(), 42)
		code, _ := domain.CodeOf(err)
		assert.Equal(t, domain.CodeNotFound, code)
	})

	t.Run("Repository error", func(t *testing.T) {
		service, m := NewMock(t)
		m.playerRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Player{ID: 1, IsActive: true}, nil)
		m.auditRepo.EXPECT().ListByPlayerID(gomock.Any(), 1).Return(nil, errors.New("database error"))

		_, err := service.AuditTrail(context.Background(), 1)
		assert.Error(t, err)
	})
}
