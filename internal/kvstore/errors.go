package kvstore

import "errors"

// ErrKeyNotFound is returned by Get when the requested key has never been
// stored (or was removed). Delete is idempotent and does not report it.
var ErrKeyNotFound = errors.New("key not found")
