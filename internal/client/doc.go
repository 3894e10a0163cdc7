// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the SQLite-backed stores, the backup services, the reveal
// controller and the terminal REPL into a single process lifecycle.
package client
