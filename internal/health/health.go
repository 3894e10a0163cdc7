// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package health bounds reachability checks against the backup server.
//
// Probe races one health call against a timer. Whichever settles first wins;
// the loser is abandoned, not cancelled: a late health result is discarded
// into a buffered channel and the underlying HTTP call runs to completion on
// its own, bounded by the client's request timeout. The leak is accepted and
// lasts at most one HTTP call.
package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pin-vault/models"
)

// DefaultProbeTimeout bounds a probe when the caller passes no positive
// timeout.
const DefaultProbeTimeout = 3 * time.Second

// ErrProbeTimeout is returned when the timer wins the race.
var ErrProbeTimeout = errors.New("health probe timed out")

// Checker performs one reachability check. The backup API satisfies it.
type Checker interface {
	Health(ctx context.Context) (models.HealthResponse, error)
}

// Probe runs one bounded health check. It returns nil when the server
// answers ok within timeout, ErrProbeTimeout (wrapped) when the timer wins,
// and the checker's own error otherwise (transport failures pass through
// untranslated).
func Probe(ctx context.Context, checker Checker, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	// buffered so the losing branch can deposit its result and exit
	result := make(chan error, 1)

	go func() {
		resp, err := checker.Health(ctx)
		if err != nil {
			result <- err
			return
		}
		if resp.Status != models.HealthStatusOK {
			result <- fmt.Errorf("unexpected health status %q", resp.Status)
			return
		}
		result <- nil
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-result:
		return err
	case <-timer.C:
		return fmt.Errorf("%w after %s", ErrProbeTimeout, timeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}
