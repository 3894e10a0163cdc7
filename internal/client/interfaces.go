// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is the lifecycle contract of the vault client runtime. [App]
// satisfies it.
type Client interface {
	// Run starts the client and blocks until the REPL exits.
	Run() error
}
