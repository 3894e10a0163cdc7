package cli

import "errors"

var (
	// errEntriesDoNotMatch is returned by readSecretTwice when the
	// confirmation does not match the first entry.
	errEntriesDoNotMatch = errors.New("entries do not match")

	// errVaultEmpty is returned by pickItem when there is nothing to select.
	errVaultEmpty = errors.New("the vault is empty")
)
