// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reveal

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pin-vault/internal/config"
	"github.com/MKhiriev/go-pin-vault/internal/logger"
	"github.com/MKhiriev/go-pin-vault/models"
)

// Fallbacks when the config carries no positive durations.
const (
	defaultVisibleFor = 3000 * time.Millisecond
	defaultTick       = 50 * time.Millisecond
)

// Prompt text shown by the identity check.
const (
	verifyReason = "Authenticate to reveal PIN"
	verifyTitle  = "PIN Vault"
)

// Controller owns the single reveal session. Safe for concurrent use;
// timer callbacks and user-triggered calls serialise on one mutex.
type Controller struct {
	items    ItemSource
	gate     Gate
	listener Listener
	logger   *logger.Logger

	visibleFor time.Duration
	tick       time.Duration

	mu         sync.Mutex
	state      State
	generation uint64
	item       models.PinItem
	startedAt  time.Time
	progress   float64
	hideTimer  *time.Timer
	ticker     *time.Ticker
	tickerDone chan struct{}
}

// NewController returns a masked controller. Durations come from cfg;
// non-positive values fall back to 3000ms visibility with a 50ms tick.
func NewController(cfg config.ClientReveal, items ItemSource, gate Gate, listener Listener, log *logger.Logger) *Controller {
	visibleFor := cfg.VisibleFor
	if visibleFor <= 0 {
		visibleFor = defaultVisibleFor
	}
	tick := cfg.Tick
	if tick <= 0 {
		tick = defaultTick
	}

	return &Controller{
		items:      items,
		gate:       gate,
		listener:   listener,
		logger:     log,
		visibleFor: visibleFor,
		tick:       tick,
	}
}

// Toggle flips the reveal for the named item. While masked it resolves the
// item, runs the identity check (without holding the lock; the prompt is a
// suspension point) and on success reveals for the visibility window. While
// revealed it hides immediately. While the identity prompt is up it does
// nothing.
func (c *Controller) Toggle(ctx context.Context, name string) {
	c.mu.Lock()
	switch c.state {
	case StateRevealed:
		c.maskLocked()
		c.mu.Unlock()
		return
	case StateAwaitingBiometric:
		c.mu.Unlock()
		return
	}

	item, err := c.items.Get(name)
	if err != nil {
		c.mu.Unlock()
		c.listener.Notice("no saved PIN named " + name)
		return
	}

	c.state = StateAwaitingBiometric
	c.mu.Unlock()

	granted := c.gate.Verify(ctx, verifyReason, verifyTitle, item.Name)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateAwaitingBiometric {
		// torn down while the prompt was up; a late grant changes nothing
		return
	}
	if !granted {
		c.state = StateMasked
		c.progress = 0
		c.listener.Notice("PIN stays hidden: verification failed")
		c.logger.Debug().Str("func", "Toggle").Str("name", item.Name).Msg("reveal denied")
		return
	}

	c.revealLocked(item)
}

// Hide re-masks immediately. A no-op unless something is revealed.
func (c *Controller) Hide() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateRevealed {
		return
	}
	c.maskLocked()
}

// Close tears the controller down: unconditionally disarms and masks.
// An identity prompt still in flight is abandoned. Safe to call repeatedly.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.maskLocked()
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Progress returns the remaining share of the visibility window, in [0,1].
// Zero whenever nothing is revealed.
func (c *Controller) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.progress
}

// revealLocked starts a session for item: disarms whatever pair might still
// be armed, then arms a fresh one. Callers must hold c.mu.
func (c *Controller) revealLocked(item models.PinItem) {
	c.disarmLocked()
	gen := c.generation

	c.state = StateRevealed
	c.item = item
	c.startedAt = time.Now()
	c.progress = 1

	c.listener.RevealStarted(item)
	c.listener.Progress(1)

	c.hideTimer = time.AfterFunc(c.visibleFor, func() { c.deadlineFired(gen) })

	c.ticker = time.NewTicker(c.tick)
	c.tickerDone = make(chan struct{})
	go c.tickLoop(gen, c.ticker, c.tickerDone)

	c.logger.Debug().Str("func", "revealLocked").Str("name", item.Name).Dur("visible_for", c.visibleFor).Msg("pin revealed")
}

// maskLocked ends any active session: disarms both guards and resets to
// StateMasked. Callers must hold c.mu.
func (c *Controller) maskLocked() {
	c.disarmLocked()

	wasRevealed := c.state == StateRevealed
	c.state = StateMasked
	c.item = models.PinItem{}
	c.progress = 0

	if wasRevealed {
		c.listener.Progress(0)
		c.listener.Masked()
		c.logger.Debug().Str("func", "maskLocked").Msg("pin masked")
	}
}

// disarmLocked stops both guards and advances the generation so their
// in-flight callbacks are recognised as stale. It never waits for the
// ticker goroutine; the goroutine observes the stale generation and exits
// on its own. Callers must hold c.mu.
func (c *Controller) disarmLocked() {
	c.generation++

	if c.hideTimer != nil {
		c.hideTimer.Stop()
		c.hideTimer = nil
	}
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	if c.tickerDone != nil {
		close(c.tickerDone)
		c.tickerDone = nil
	}
}

// deadlineFired is the terminal guard: at the full visibility window it
// re-masks, unless the session it belongs to was already disarmed.
func (c *Controller) deadlineFired(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateRevealed || gen != c.generation {
		return
	}
	c.maskLocked()
}

func (c *Controller) tickLoop(gen uint64, ticker *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if !c.tickOnce(gen) {
				return
			}
		}
	}
}

// tickOnce recomputes progress for the session identified by gen. It
// reports false once the session is over, ending the tick loop. Should the
// terminal timer misfire, the remaining-time check here re-masks on its
// own; either guard is sufficient.
func (c *Controller) tickOnce(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateRevealed || gen != c.generation {
		return false
	}

	remaining := c.visibleFor - time.Since(c.startedAt)
	progress := float64(remaining) / float64(c.visibleFor)
	if progress <= 0 {
		c.maskLocked()
		return false
	}
	if progress > 1 {
		progress = 1
	}

	c.progress = progress
	c.listener.Progress(progress)
	return true
}
