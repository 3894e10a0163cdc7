// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// backup server handlers.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgAppParameterRequired is returned when a listing endpoint is called
	// without the app query parameter that scopes the listing.
	MsgAppParameterRequired = "app query parameter is required"

	// MsgAppRequired is returned when an export request does not name the
	// application the backup belongs to.
	MsgAppRequired = "app is required"

	// MsgAppAndPathRequired is returned when an import request omits the
	// application name or the stored file path.
	MsgAppAndPathRequired = "app and path are required"

	// MsgPayloadNotImportable is returned when an export payload fails the
	// shape check, i.e. it does not carry an items array and could never be
	// imported back.
	MsgPayloadNotImportable = "payload must carry an items array"

	// MsgPathNotABackupName is returned when an import path is not a bare
	// stored backup name (empty, contains separators, or tries to climb out
	// of the backup root).
	MsgPathNotABackupName = "path is not a stored backup name"

	// MsgBackupNotFound is returned when an import request targets a backup
	// that does not exist for the requesting application.
	MsgBackupNotFound = "backup not found"

	// MsgBackupStored is the success message carried in the export response
	// next to the stored file descriptor.
	MsgBackupStored = "backup stored"
)
