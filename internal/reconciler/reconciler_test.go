package reconciler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/grandbay/casino-core/internal/config"
	"github.com/grandbay/casino-core/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockLimitEngine, *MockExclusionEngine) {
	cfg := &config.Config{ReconcileInterval: time.Minute}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limits := NewMockLimitEngine(ctrl)
	exclusions := NewMockExclusionEngine(ctrl)
	service := New(cfg, limits, exclusions)
	return service, limits, exclusions
}

func TestService_Start(t *testing.T) {
	service, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_activateLimits(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name            string
		mockFindMatured func(ctx context.Context, now time.Time, limit uint32) ([]domain.PlayerLimit, error)
		activations     []int
		expectedErr     error
	}{
		{
			name: "activates each matured player once",
			mockFindMatured: func(ctx context.Context, now time.Time, limit uint32) ([]domain.PlayerLimit, error) {
				return []domain.PlayerLimit{
					{PlayerID: 101},
					{PlayerID: 102},
				}, nil
			},
			activations: []int{101, 102},
		},
		{
			name: "fails when fetching matured limits",
			mockFindMatured: func(ctx context.Context, now time.Time, limit uint32) ([]domain.PlayerLimit, error) {
				return nil, fmt.Errorf("failed to fetch matured pending limits")
			},
			expectedErr: fmt.Errorf("failed to fetch matured pending limits"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			limits := NewMockLimitEngine(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			limits.EXPECT().
				FindMatured(gomock.Any(), now, uint32(2)).
				DoAndReturn(tt.mockFindMatured).
				Times(1)
			for _, playerID := range tt.activations {
				limits.EXPECT().ActivatePlayer(gomock.Any(), playerID, now).Return(nil)
			}
			workerPool.EXPECT().
				AddTask(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, task Task) error {
					return task()
				}).
				AnyTimes()

			service := &Service{
				limits:     limits,
				workerPool: workerPool,
				limit:      2,
			}

			logger := zap.NewExample()
			zap.ReplaceGlobals(logger)

			ctx := context.Background()
			service.activateLimits(ctx, now)

			if tt.expectedErr != nil {
				assert.Error(t, tt.expectedErr, tt.expectedErr)
			}
		})
	}
}

func TestService_activateLimits_skipsInFlightPlayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	limits := NewMockLimitEngine(ctrl)
	workerPool := NewMockWorkerPoolI(ctrl)

	reconcilingPlayers.Store("limit:201", struct{}{})
	defer reconcilingPlayers.Delete("limit:201")

	limits.EXPECT().
		FindMatured(gomock.Any(), now, uint32(2)).
		Return([]domain.PlayerLimit{{PlayerID: 201}}, nil)

	service := &Service{
		limits:     limits,
		workerPool: workerPool,
		limit:      2,
	}

	service.activateLimits(context.Background(), now)
}

func TestService_liftExclusions(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name            string
		mockFindExpired func(ctx context.Context, now time.Time, limit uint32) ([]domain.Player, error)
		lifted          []int
		expectedErr     error
	}{
		{
			name: "lifts each expired exclusion once",
			mockFindExpired: func(ctx context.Context, now time.Time, limit uint32) ([]domain.Player, error) {
				return []domain.Player{
					{ID: 301, SelfExcluded: true},
					{ID: 302, SelfExcluded: true},
				}, nil
			},
			lifted: []int{301, 302},
		},
		{
			name: "fails when fetching expired exclusions",
			mockFindExpired: func(ctx context.Context, now time.Time, limit uint32) ([]domain.Player, error) {
				return nil, fmt.Errorf("failed to fetch expired exclusions")
			},
			expectedErr: fmt.Errorf("failed to fetch expired exclusions"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			exclusions := NewMockExclusionEngine(ctrl)
			workerPool := NewMockWorkerPoolI(ctrl)

			exclusions.EXPECT().
				FindExpired(gomock.Any(), now, uint32(2)).
				DoAndReturn(tt.mockFindExpired).
				Times(1)
			if len(tt.lifted) > 0 {
				exclusions.EXPECT().
					LiftPlayer(gomock.Any(), gomock.Any(), now).
					Return(nil).
					Times(len(tt.lifted))
			}
			workerPool.EXPECT().
				AddTask(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, task Task) error {
					return task()
				}).
				AnyTimes()

			service := &Service{
				exclusions: exclusions,
				workerPool: workerPool,
				limit:      2,
			}

			logger := zap.NewExample()
			zap.ReplaceGlobals(logger)

			ctx := context.Background()
			service.liftExclusions(ctx, now)

			if tt.expectedErr != nil {
				assert.Error(t, tt.expectedErr, tt.expectedErr)
			}
		})
	}
}
