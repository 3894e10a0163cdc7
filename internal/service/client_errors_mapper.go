// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pin-vault/internal/adapter"
	"github.com/MKhiriev/go-pin-vault/internal/connection"
)

// mapAdapterError translates transport-layer errors into the closed business
// taxonomy. Anything without a more specific meaning collapses into
// ErrTransport, so callers never inspect raw transport errors.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, connection.ErrUnconfigured):
		return ErrServerUnconfigured

	case errors.Is(err, adapter.ErrMalformedPayload):
		return fmt.Errorf("%w: %v", ErrMalformedBackup, err)

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return ErrInvalidAPIKey

	case errors.Is(err, adapter.ErrNotFound):
		return ErrBackupNotFound

	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %v", ErrRejectedByServer, err)

	default:
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
}
