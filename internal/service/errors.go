package service

import "errors"

var (
	// ErrServerUnconfigured means a backup operation ran before an
	// endpoint was set.
	ErrServerUnconfigured = errors.New("backup server is not configured")

	// ErrTransport covers network failures and server-side errors that
	// carry no more specific meaning for the user.
	ErrTransport = errors.New("backup server unreachable")

	// ErrInvalidAPIKey means the server rejected our API key.
	ErrInvalidAPIKey = errors.New("backup server rejected the API key")

	// ErrBackupNotFound means the requested backup path does not exist
	// on the server.
	ErrBackupNotFound = errors.New("backup not found on server")

	// ErrNoBackups means the server holds no backups for this app yet.
	ErrNoBackups = errors.New("no backups on the server")

	// ErrMalformedBackup means a backup document failed the payload
	// shape check and was rejected without touching local state.
	ErrMalformedBackup = errors.New("backup payload is malformed")

	// ErrRejectedByServer means the server refused the request as
	// invalid (HTTP 400).
	ErrRejectedByServer = errors.New("request rejected by backup server")
)
