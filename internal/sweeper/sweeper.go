// Package sweeper frees vehicles whose reservation window ran out and
// drops stale verification codes. Holds themselves expire inside the
// session store, so only the relational side needs the periodic pass.
package sweeper

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const sweepInterval = 15 * time.Minute

type VehicleRepo interface {
	ReleaseExpired(ctx context.Context) (int64, error)
}

type VerificationRepo interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

type Sweeper struct {
	vehicleRepo      VehicleRepo
	verificationRepo VerificationRepo
	interval         time.Duration
}

func New(vehicleRepo VehicleRepo, verificationRepo VerificationRepo) *Sweeper {
	return &Sweeper{
		vehicleRepo:      vehicleRepo,
		verificationRepo: verificationRepo,
		interval:         sweepInterval,
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				zap.L().Error("sweep failed", zap.Error(err))
			}
		}
	}
}

// Sweep runs both cleanups; a failure in one does not stop the other.
func (s *Sweeper) Sweep(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		released, err := s.vehicleRepo.ReleaseExpired(gCtx)
		if err != nil {
			return err
		}
		if released > 0 {
			zap.L().Info("released expired reservations", zap.Int64("count", released))
		}
		return nil
	})

	g.Go(func() error {
		purged, err := s.verificationRepo.PurgeExpired(gCtx)
		if err != nil {
			return err
		}
		if purged > 0 {
			zap.L().Info("purged stale verification codes", zap.Int64("count", purged))
		}
		return nil
	})

	return g.Wait()
}
