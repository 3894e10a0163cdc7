package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pin-vault/internal/logger"
)

const defaultWatchInterval = 30 * time.Second

type healthWatchJob struct {
	backups  BackupService
	onChange func(healthy bool, err error)
	logger   *logger.Logger

	mu          sync.Mutex
	cancel      context.CancelFunc
	done        chan struct{}
	lastHealthy *bool
}

// NewHealthWatchJob creates a job that probes the backup server on a ticker
// and reports reachability transitions through onChange (may be nil). The
// job is idle until Start is called.
func NewHealthWatchJob(backups BackupService, onChange func(healthy bool, err error), log *logger.Logger) HealthWatchJob {
	return &healthWatchJob{backups: backups, onChange: onChange, logger: log}
}

// Start implements [HealthWatchJob]. It stops any previously running
// watcher, then launches a background goroutine probing every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *healthWatchJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultWatchInterval
	}

	j.mu.Lock()
	prevCancel, prevDone := j.cancel, j.done
	jobCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	j.cancel, j.done = cancel, done
	j.mu.Unlock()

	if prevCancel != nil {
		prevCancel()
		<-prevDone
	}

	go func() {
		defer close(done)
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.checkOnce(jobCtx)
			}
		}
	}()
}

// Stop implements [HealthWatchJob]. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *healthWatchJob) Stop() {
	j.mu.Lock()
	cancel, done := j.cancel, j.done
	j.cancel, j.done = nil, nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// checkOnce probes once and fires onChange when reachability flips. The
// first probe after Start always reports.
func (j *healthWatchJob) checkOnce(ctx context.Context) {
	err := j.backups.CheckHealth(ctx)
	healthy := err == nil

	j.mu.Lock()
	changed := j.lastHealthy == nil || *j.lastHealthy != healthy
	j.lastHealthy = &healthy
	j.mu.Unlock()

	if !changed {
		return
	}

	if healthy {
		j.logger.Info().Str("func", "checkOnce").Msg("backup server reachable")
	} else {
		j.logger.Warn().Str("func", "checkOnce").Err(err).Msg("backup server unreachable")
	}

	if j.onChange != nil {
		j.onChange(healthy, err)
	}
}
