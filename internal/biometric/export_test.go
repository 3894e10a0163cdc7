// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package biometric

// ReadPassword exposes the terminal-read hook to external tests.
var ReadPassword = &readPassword
