package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"kindlyrss/internal/logger"
	"kindlyrss/internal/service"
)

// Syncer is the part of service.SyncService the scheduler drives.
type Syncer interface {
	SyncAll(ctx context.Context) error
}

// Scheduler syncs every stale feed on a fixed interval in the background.
type Scheduler struct {
	syncer     Syncer
	interval   time.Duration
	stopCh     chan struct{}
	wg         sync.WaitGroup
	cancelFunc context.CancelFunc // cancels the current sync
	mu         sync.Mutex         // protects cancelFunc
}

func New(syncer Syncer, interval time.Duration) *Scheduler {
	return &Scheduler{
		syncer:   syncer,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "sync", "resource", "feed", "result", "ok", "interval_ms", s.interval.Milliseconds())
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped", "module", "scheduler", "action", "sync", "resource", "feed", "result", "ok")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	s.sync()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sync()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) sync() {
	// A run never outlives the next tick.
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	logger.Info("scheduled sync started", "module", "scheduler", "action", "sync", "resource", "feed", "result", "ok")
	if err := s.syncer.SyncAll(ctx); err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadySyncing):
			logger.Info("scheduled sync skipped", "module", "scheduler", "action", "sync", "resource", "feed", "result", "skipped")
		case ctx.Err() != nil:
			logger.Warn("scheduled sync cancelled", "module", "scheduler", "action", "sync", "resource", "feed", "result", "cancelled")
		default:
			logger.Error("scheduled sync failed", "module", "scheduler", "action", "sync", "resource", "feed", "result", "failed", "error", err)
		}
		return
	}
	logger.Info("scheduled sync completed", "module", "scheduler", "action", "sync", "resource", "feed", "result", "ok")
}
