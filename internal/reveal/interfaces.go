// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reveal drives the masked/revealed lifecycle of a single PIN.
//
// At most one reveal session exists per controller. A session is armed with
// a pair of guards against the same deadline: a terminal timer at the full
// visibility window and a fine-grained ticker that recomputes progress and
// can re-mask on its own should the terminal timer misfire. Whichever guard
// fires first wins; re-masking always disarms the other. Sessions carry a
// generation token so a callback from a disarmed pair is recognised as stale
// and ignored.
package reveal

import (
	"context"

	"github.com/MKhiriev/go-pin-vault/models"
)

// ItemSource resolves one named credential. The vault store satisfies it.
type ItemSource interface {
	Get(name string) (models.PinItem, error)
}

// Gate runs the identity check in front of a reveal. The biometric gate
// satisfies it; the boolean collapses every failure mode into denied.
type Gate interface {
	Verify(ctx context.Context, reason, title, subtitle string) bool
}

// Listener observes the reveal lifecycle. Callbacks run on the controller's
// goroutines while internal state is held; implementations must return
// quickly and must not call back into the controller.
type Listener interface {
	// RevealStarted fires on entry to StateRevealed with the resolved item.
	RevealStarted(item models.PinItem)

	// Progress reports the remaining share of the visibility window,
	// always within [0,1].
	Progress(progress float64)

	// Masked fires when an active reveal ends, after a final Progress(0).
	Masked()

	// Notice carries a short user-facing message, e.g. a denied
	// verification or an unknown item name.
	Notice(text string)
}
