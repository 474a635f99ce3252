package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/memoix/internal/model"
	"github.com/five82/memoix/internal/state"
	"github.com/five82/memoix/internal/store"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// Lister reads the collection. *store.Store satisfies it.
type Lister interface {
	List(ctx context.Context, f store.Filter) ([]model.Record, error)
}

// Refresher keeps a state.Store in step with the database. Imports that
// arrive through a share link or the CLI land in the UI on the next tick, or
// immediately after Trigger.
type Refresher struct {
	snap     *state.Store
	lister   Lister
	interval time.Duration
	log      *zap.Logger
	trigger  chan struct{}
}

// NewRefresher returns a refresher publishing into snap. A non-positive
// interval uses the default of two seconds.
func NewRefresher(snap *state.Store, lister Lister, interval time.Duration, log *zap.Logger) *Refresher {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Refresher{
		snap:     snap,
		lister:   lister,
		interval: interval,
		log:      log.Named("refresh"),
		trigger:  make(chan struct{}, 1),
	}
}

// Start launches the background loop and returns immediately. The returned
// channel is closed once the loop has exited after ctx is cancelled.
func (r *Refresher) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_ = r.Refresh(ctx)
			wait := calculateBackoff(r.snap.Snapshot().ConsecutiveFailures, r.interval)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-r.trigger:
				timer.Stop()
			case <-timer.C:
			}
		}
	}()
	return done
}

// Trigger asks the loop to refresh now. It never blocks.
func (r *Refresher) Trigger() {
	select {
	case r.trigger <- struct{}{}:
	default:
	}
}

// Refresh reads the full list once and publishes it.
func (r *Refresher) Refresh(ctx context.Context) error {
	records, err := r.lister.List(ctx, store.Filter{})
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		r.snap.Update(nil, err)
		r.log.Warn("list failed",
			zap.Error(err),
			zap.Int("failures", r.snap.Snapshot().ConsecutiveFailures))
		return err
	}
	r.snap.Update(records, nil)
	return nil
}

// calculateBackoff doubles the wait per consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	if failures > 16 {
		return maxBackoff
	}
	backoff := base << failures
	if backoff > maxBackoff || backoff <= 0 {
		return maxBackoff
	}
	return backoff
}
