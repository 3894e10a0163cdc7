package biometric

import (
	"context"

	"github.com/MKhiriev/go-pin-vault/internal/logger"
)

// Gate wraps a Verifier and collapses all failure modes to false.
type Gate struct {
	verifier Verifier
	logger   *logger.Logger
}

// NewGate returns a Gate over verifier. A nil verifier yields a gate that
// always denies.
func NewGate(verifier Verifier, log *logger.Logger) *Gate {
	return &Gate{verifier: verifier, logger: log}
}

// Verify runs one identity check and reports only pass or fail. Unavailable
// capability, user cancel and hardware errors are all logged and returned
// as false; callers see a single denied outcome.
func (g *Gate) Verify(ctx context.Context, reason, title, subtitle string) bool {
	if g.verifier == nil || !g.verifier.Available(ctx) {
		g.logger.Debug().Str("func", "Verify").Msg("verification capability unavailable")
		return false
	}

	ok, err := g.verifier.Verify(ctx, Prompt{Reason: reason, Title: title, Subtitle: subtitle})
	if err != nil {
		g.logger.Debug().Str("func", "Verify").Err(err).Msg("verification failed to run")
		return false
	}

	return ok
}
