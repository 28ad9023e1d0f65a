package limitservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/grandbay/casino-core/internal/domain"
	"github.com/grandbay/casino-core/internal/dto"
	"github.com/grandbay/casino-core/internal/pg"
	"github.com/grandbay/casino-core/internal/service/settingsservice"
)

type mocks struct {
	limitRepo  *MockLimitRepo
	ledgerRepo *MockLedgerRepo
	auditRepo  *MockAuditRepo
	settings   *MockSettings
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		limitRepo:  NewMockLimitRepo(ctrl),
		ledgerRepo: NewMockLedgerRepo(ctrl),
		auditRepo:  NewMockAuditRepo(ctrl),
		settings:   NewMockSettings(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) },
	).AnyTimes()

	service := New(m.limitRepo, m.ledgerRepo, m.auditRepo, m.settings, txManager)
	defer ctrl.Finish()
	return service, m
}

func dec(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func int64Ptr(v int64) *int64 { return &v }

func TestGetLimits(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "Limits found",
			prepareMock: func(m *mocks) {
				m.limitRepo.EXPECT().GetByPlayerID(gomock.Any(), 1).Return(&domain.PlayerLimit{PlayerID: 1}, nil)
			},
		},
		{
			name: "No limits row",
			prepareMock: func(m *mocks) {
				m.limitRepo.EXPECT().GetByPlayerID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: domain.NotFound("limits for player 1 not found"),
		},
		{
			name: "Repo error",
			prepareMock: func(m *mocks) {
				m.limitRepo.EXPECT().GetByPlayerID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			limits, err := service.GetLimits(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, limits.PlayerID)
		})
	}
}

func TestUpdate_DecreaseAppliesImmediately(t *testing.T) {
	service, m := NewMock(t)
	m.limitRepo.EXPECT().GetByPlayerIDForUpdate(gomock.Any(), 1).Return(&domain.PlayerLimit{
		PlayerID:     1,
		DepositDaily: dec("100"),
	}, nil)
	m.limitRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	var audit *domain.AuditEvent
	m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event *domain.AuditEvent) error {
			audit = event
			return nil
		},
	)

	updated, err := service.Update(context.Background(), 1, dto.LimitUpdateRequestDTO{
		DepositDailyLimit: int64Ptr(50),
	})
	assert.NoError(t, err)
	assert.True(t, updated.DepositDaily.Equal(decimal.NewFromInt(50)))
	assert.Nil(t, updated.PendingDepositDaily)

	assert.Equal(t, "deposit_daily_limit", audit.Field)
	assert.Equal(t, "100", audit.OldValue)
	assert.Equal(t, "50", audit.NewValue)
	assert.Equal(t, "player", audit.ChangedBy)
}

func TestUpdate_IncreaseIsParkedAsPending(t *testing.T) {
	service, m := NewMock(t)
	m.limitRepo.EXPECT().GetByPlayerIDForUpdate(gomock.Any(), 1).Return(&domain.PlayerLimit{
		PlayerID:     1,
		DepositDaily: dec("100"),
	}, nil)
	m.settings.EXPECT().Int(gomock.Any(), settingsservice.KeyLimitIncreaseDelayDays).Return(14, nil)
	m.limitRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := service.Update(context.Background(), 1, dto.LimitUpdateRequestDTO{
		DepositDailyLimit: int64Ptr(300),
	})
	assert.NoError(t, err)
	// The current limit stays in force until the delay elapses.
	assert.True(t, updated.DepositDaily.Equal(decimal.NewFromInt(100)))
	assert.True(t, updated.PendingDepositDaily.Equal(decimal.NewFromInt(300)))
	assert.WithinDuration(t, time.Now().UTC().AddDate(0, 0, 14), *updated.PendingDepositDailyAt, 5*time.Second)
}

func TestUpdate_FirstLimitAppliesImmediately(t *testing.T) {
	service, m := NewMock(t)
	m.limitRepo.EXPECT().GetByPlayerIDForUpdate(gomock.Any(), 1).Return(&domain.PlayerLimit{PlayerID: 1}, nil)
	m.limitRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := service.Update(context.Background(), 1, dto.LimitUpdateRequestDTO{
		LossMonthlyLimit: int64Ptr(1000),
	})
	assert.NoError(t, err)
	assert.True(t, updated.LossMonthly.Equal(decimal.NewFromInt(1000)))
	assert.Nil(t, updated.PendingLossMonthly)
}

func TestUpdate_RejectsWhileCategoryHasPending(t *testing.T) {
	service, m := NewMock(t)
	pendingAt := time.Now().UTC().AddDate(0, 0, 7)
	m.limitRepo.EXPECT().GetByPlayerIDForUpdate(gomock.Any(), 1).Return(&domain.PlayerLimit{
		PlayerID:               1,
		DepositDaily:           dec("100"),
		PendingDepositWeekly:   dec("700"),
		PendingDepositWeeklyAt: &pendingAt,
	}, nil)

	_, err := service.Update(context.Background(), 1, dto.LimitUpdateRequestDTO{
		DepositDailyLimit: int64Ptr(50),
	})
	code, _ := domain.CodeOf(err)
	assert.Equal(t, domain.CodeDomainConflict, code)
}

func TestUpdate_MixedRequestDoesNotSelfConflict(t *testing.T) {
	// A decrease and an increase in the same request are judged against the
	// state before the call, so the new pending entry cannot block its own
	// sibling.
	service, m := NewMock(t)
	m.limitRepo.EXPECT().GetByPlayerIDForUpdate(gomock.Any(), 1).Return(&domain.PlayerLimit{
		PlayerID:      1,
		DepositDaily:  dec("100"),
		DepositWeekly: dec("400"),
	}, nil)
	m.settings.EXPECT().Int(gomock.Any(), settingsservice.KeyLimitIncreaseDelayDays).Return(14, nil)
	m.limitRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := service.Update(context.Background(), 1, dto.LimitUpdateRequestDTO{
		DepositDailyLimit:  int64Ptr(50),
		DepositWeeklyLimit: int64Ptr(800),
	})
	assert.NoError(t, err)
	assert.True(t, updated.DepositDaily.Equal(decimal.NewFromInt(50)))
	assert.True(t, updated.DepositWeekly.Equal(decimal.NewFromInt(400)))
	assert.True(t, updated.PendingDepositWeekly.Equal(decimal.NewFromInt(800)))
}

func TestUpdate_NoLimitsRow(t *testing.T) {
	service, m := NewMock(t)
	m.limitRepo.EXPECT().GetByPlayerIDForUpdate(gomock.Any(), 1).Return(nil, nil)

	_, err := service.Update(context.Background(), 1, dto.LimitUpdateRequestDTO{
		DepositDailyLimit: int64Ptr(50),
	})
	code, _ := domain.CodeOf(err)
	assert.Equal(t, domain.CodeNotFound, code)
}

func TestCheckDepositLimits(t *testing.T) {
	// Wednesday afternoon: day starts the 14th, ISO week Monday the 12th,
	// month the 1st.
	now := time.Date(2024, 2, 14, 15, 30, 0, 0, time.UTC)

	t.Run("Daily window violation wins", func(t *testing.T) {
		service, m := NewMock(t)
		m.limitRepo.EXPECT().GetByPlayerID(gomock.Any(), 1).Return(&domain.PlayerLimit{
			PlayerID:      1,
			DepositDaily:  dec("100"),
			DepositWeekly: dec("500"),
		}, nil)
		m.ledgerRepo.EXPECT().
			SumCompletedByType(gomock.Any(), 10, domain.TypeDeposit, time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)).
			Return(decimal.NewFromInt(80), nil)

		err := service.CheckDepositLimits(context.Background(), 1, 10, decimal.NewFromInt(30), now)
		code, _ := domain.CodeOf(err)
		assert.Equal(t, domain.CodeDomainValidation, code)
		assert.Contains(t, err.Error(), "daily")
	})

	t.Run("All windows within limits", func(t *testing.T) {
		service, m := NewMock(t)
		m.limitRepo.EXPECT().GetByPlayerID(gomock.Any(), 1).Return(&domain.PlayerLimit{
			PlayerID:       1,
			DepositDaily:   dec("100"),
			DepositWeekly:  dec("500"),
			DepositMonthly: dec("2000"),
		}, nil)
		m.ledgerRepo.EXPECT().
			SumCompletedByType(gomock.Any(), 10, domain.TypeDeposit, time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)).
			Return(decimal.NewFromInt(40), nil)
		m.ledgerRepo.EXPECT().
			SumCompletedByType(gomock.Any(), 10, domain.TypeDeposit, time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC)).
			Return(decimal.NewFromInt(200), nil)
		m.ledgerRepo.EXPECT().
			SumCompletedByType(gomock.Any(), 10, domain.TypeDeposit, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)).
			Return(decimal.NewFromInt(900), nil)

		err := service.CheckDepositLimits(context.Background(), 1, 10, decimal.NewFromInt(30), now)
		assert.NoError(t, err)
	})

	t.Run("Unset limits are unlimited", func(t *testing.T) {
		service, m := NewMock(t)
		m.limitRepo.EXPECT().GetByPlayerID(gomock.Any(), 1).Return(&domain.PlayerLimit{
			PlayerID: 1,
		}, nil)

		err := service.CheckDepositLimits(context.Background(), 1, 10, decimal.NewFromInt(9999), now)
		assert.NoError(t, err)
	})

	t.Run("Set window still enforced when others are unset", func(t *testing.T) {
		service, m := NewMock(t)
		m.limitRepo.EXPECT().GetByPlayerID(gomock.Any(), 1).Return(&domain.PlayerLimit{
			PlayerID:      1,
			DepositWeekly: dec("500"),
		}, nil)
		m.ledgerRepo.EXPECT().
			SumCompletedByType(gomock.Any(), 10, domain.TypeDeposit, time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC)).
			Return(decimal.NewFromInt(0), nil)

		err := service.CheckDepositLimits(context.Background(), 1, 10, decimal.NewFromInt(9999), now)
		code, _ := domain.CodeOf(err)
		assert.Equal(t, domain.CodeDomainValidation, code)
		assert.Contains(t, err.Error(), "weekly")
	})

	t.Run("No limits row passes", func(t *testing.T) {
		service, m := NewMock(t)
		m.limitRepo.EXPECT().GetByPlayerID(gomock.Any(), 1).Return(nil, nil)

		err := service.CheckDepositLimits(context.Background(), 1, 10, decimal.NewFromInt(9999), now)
		assert.NoError(t, err)
	})
}

func TestCheckLossLimits(t *testing.T) {
	now := time.Date(2024, 2, 14, 15, 30, 0, 0, time.UTC)

	t.Run("Negative running loss is not clamped", func(t *testing.T) {
		service, m := NewMock(t)
		m.limitRepo.EXPECT().GetByPlayerID(gomock.Any(), 1).Return(&domain.PlayerLimit{
			PlayerID:  1,
			LossDaily: dec("50"),
		}, nil)
		m.ledgerRepo.EXPECT().
			SumCompletedByType(gomock.Any(), 10, domain.TypeBet, gomock.Any()).
			Return(decimal.NewFromInt(50), nil)
		m.ledgerRepo.EXPECT().
			SumCompletedByType(gomock.Any(), 10, domain.TypeWin, gomock.Any()).
			Return(decimal.NewFromInt(200), nil)

		// Running loss is -150, so a 100 bet still fits a 50 limit.
		err := service.CheckLossLimits(context.Background(), 1, 10, decimal.NewFromInt(100), now)
		assert.NoError(t, err)
	})

	t.Run("Weekly loss limit exceeded", func(t *testing.T) {
		service, m := NewMock(t)
		m.limitRepo.EXPECT().GetByPlayerID(gomock.Any(), 1).Return(&domain.PlayerLimit{
			PlayerID:   1,
			LossWeekly: dec("100"),
		}, nil)
		m.ledgerRepo.EXPECT().
			SumCompletedByType(gomock.Any(), 10, domain.TypeBet, time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC)).
			Return(decimal.NewFromInt(90), nil)
		m.ledgerRepo.EXPECT().
			SumCompletedByType(gomock.Any(), 10, domain.TypeWin, time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC)).
			Return(decimal.NewFromInt(0), nil)

		err := service.CheckLossLimits(context.Background(), 1, 10, decimal.NewFromInt(20), now)
		code, _ := domain.CodeOf(err)
		assert.Equal(t, domain.CodeDomainValidation, code)
		assert.Contains(t, err.Error(), "weekly")
	})
}

func TestActivatePlayer(t *testing.T) {
	now := time.Date(2024, 3, 1, 4, 0, 0, 0, time.UTC)

	t.Run("Matured pending becomes current", func(t *testing.T) {
		service, m := NewMock(t)
		matured := now.Add(-time.Hour)
		notYet := now.Add(time.Hour)
		m.limitRepo.EXPECT().GetByPlayerIDForUpdate(gomock.Any(), 1).Return(&domain.PlayerLimit{
			PlayerID:               1,
			DepositDaily:           dec("100"),
			PendingDepositDaily:    dec("300"),
			PendingDepositDailyAt:  &matured,
			LossDaily:              dec("50"),
			PendingLossDaily:       dec("80"),
			PendingLossDailyAt:     &notYet,
		}, nil)

		var audit *domain.AuditEvent
		m.auditRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, event *domain.AuditEvent) error {
				audit = event
				return nil
			},
		)

		var saved *domain.PlayerLimit
		m.limitRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l *domain.PlayerLimit) error {
				saved = l
				return nil
			},
		)

		err := service.ActivatePlayer(context.Background(), 1, now)
		assert.NoError(t, err)

		assert.True(t, saved.DepositDaily.Equal(decimal.NewFromInt(300)))
		assert.Nil(t, saved.PendingDepositDaily)
		assert.Nil(t, saved.PendingDepositDailyAt)
		// The loss limit has not matured and must be untouched.
		assert.True(t, saved.LossDaily.Equal(decimal.NewFromInt(50)))
		assert.True(t, saved.PendingLossDaily.Equal(decimal.NewFromInt(80)))

		assert.Equal(t, "deposit_daily_limit", audit.Field)
		assert.Equal(t, "system", audit.ChangedBy)
		assert.Equal(t, "100", audit.OldValue)
		assert.Equal(t, "300", audit.NewValue)
	})

	t.Run("Nothing matured writes nothing", func(t *testing.T) {
		service, m := NewMock(t)
		notYet := now.Add(time.Hour)
		m.limitRepo.EXPECT().GetByPlayerIDForUpdate(gomock.Any(), 1).Return(&domain.PlayerLimit{
			PlayerID:              1,
			PendingDepositDaily:   dec("300"),
			PendingDepositDailyAt: &notYet,
		}, nil)

		err := service.ActivatePlayer(context.Background(), 1, now)
		assert.NoError(t, err)
	})

	t.Run("Missing row is a no-op", func(t *testing.T) {
		service, m := NewMock(t)
		m.limitRepo.EXPECT().GetByPlayerIDForUpdate(gomock.Any(), 1).Return(nil, nil)

		err := service.ActivatePlayer(context.Background(), 1, now)
		assert.NoError(t, err)
	})
}

func TestFindMatured(t *testing.T) {
	service, m := NewMock(t)
	now := time.Now().UTC()
	m.limitRepo.EXPECT().FindMaturedPending(gomock.Any(), now, uint32(100)).
		Return([]domain.PlayerLimit{{PlayerID: 1}, {PlayerID: 2}}, nil)

	rows, err := service.FindMatured(context.Background(), now, 100)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
}
