// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package biometric gates PIN reveals behind an operator identity check.
//
// The platform capability lives behind [Verifier]; the [Gate] on top of it
// collapses every failure mode (capability unavailable, user cancel,
// hardware or storage error) into a plain false, so callers branch on one
// boolean and can never leak the reason a verification failed.
package biometric

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/verifier_mock.go -package=mock

// Prompt is the user-facing text shown by a verifier.
type Prompt struct {
	// Reason states why the check is happening, e.g. "Authenticate to reveal PIN".
	Reason string

	// Title and Subtitle caption the prompt where the platform renders one.
	Title    string
	Subtitle string
}

// Verifier is one platform identity-check capability.
type Verifier interface {
	// Available reports whether the capability can run right now.
	Available(ctx context.Context) bool

	// Verify prompts the operator and reports the outcome. An error means
	// the check itself could not run; it never carries secret material.
	Verify(ctx context.Context, prompt Prompt) (bool, error)
}
