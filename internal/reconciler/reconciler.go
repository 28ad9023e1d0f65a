package reconciler

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grandbay/casino-core/internal/config"
	"github.com/grandbay/casino-core/internal/domain"
)

var reconcilingPlayers sync.Map

type LimitEngine interface {
	FindMatured(ctx context.Context, now time.Time, limit uint32) ([]domain.PlayerLimit, error)
	ActivatePlayer(ctx context.Context, playerID int, now time.Time) error
}

type ExclusionEngine interface {
	FindExpired(ctx context.Context, now time.Time, limit uint32) ([]domain.Player, error)
	LiftPlayer(ctx context.Context, player domain.Player, now time.Time) error
}

type Service struct {
	limits        LimitEngine
	exclusions    ExclusionEngine
	limit         uint32
	workerPool    WorkerPoolI
	sweepInterval time.Duration
}

func New(cfg *config.Config, limits LimitEngine, exclusions ExclusionEngine) *Service {
	return &Service{
		limits:        limits,
		exclusions:    exclusions,
		limit:         1000,
		workerPool:    NewWorkerPool(10),
		sweepInterval: cfg.ReconcileInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Reconciler started", zap.Duration("interval", s.sweepInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			s.workerPool.Close()
			return
		case <-ticker.C:
			now := time.Now().UTC()
			s.activateLimits(ctx, now)
			s.liftExclusions(ctx, now)
		}
	}
}

func (s *Service) activateLimits(ctx context.Context, now time.Time) {
	rows, err := s.limits.FindMatured(ctx, now, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch matured pending limits", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, row := range rows {
		row := row
		key := "limit:" + strconv.Itoa(row.PlayerID)

		if _, loaded := reconcilingPlayers.LoadOrStore(key, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer reconcilingPlayers.Delete(key)
				return s.limits.ActivatePlayer(ctx, row.PlayerID, now)
			})
			if err != nil {
				reconcilingPlayers.Delete(key)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error activating pending limits", zap.Error(err))
	}
}

func (s *Service) liftExclusions(ctx context.Context, now time.Time) {
	players, err := s.exclusions.FindExpired(ctx, now, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch expired exclusions", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, player := range players {
		player := player
		key := "exclusion:" + strconv.Itoa(player.ID)

		if _, loaded := reconcilingPlayers.LoadOrStore(key, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer reconcilingPlayers.Delete(key)
				return s.exclusions.LiftPlayer(ctx, player, now)
			})
			if err != nil {
				reconcilingPlayers.Delete(key)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error lifting expired exclusions", zap.Error(err))
	}
}
