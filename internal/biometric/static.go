package biometric

import "context"

// StaticVerifier answers every check with a fixed result. Meant for tests
// and headless runs where no interactive verification is possible.
type StaticVerifier struct {
	Result bool
}

// Available implements [Verifier].
func (StaticVerifier) Available(ctx context.Context) bool { return true }

// Verify implements [Verifier].
func (s StaticVerifier) Verify(ctx context.Context, prompt Prompt) (bool, error) {
	return s.Result, nil
}
