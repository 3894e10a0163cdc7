package vault

import "errors"

// Business errors of the credential store. All of them are user-facing and
// none is fatal: a failed operation leaves the store unchanged.
var (
	// ErrDuplicateName indicates that another item already claims the same
	// normalized (trimmed, lowercased) name.
	ErrDuplicateName = errors.New("an item with this name already exists")
	// ErrItemNotFound indicates that no item matches the requested name.
	ErrItemNotFound = errors.New("item not found")
	// ErrInvalidPIN indicates a PIN that is not 4 to 8 numeric digits.
	ErrInvalidPIN = errors.New("PIN must be 4-8 digits")
	// ErrEmptyName indicates a name that is empty after trimming.
	ErrEmptyName = errors.New("item name must not be empty")
)
