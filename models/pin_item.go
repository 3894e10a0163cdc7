package models

import "strings"

// PinItem represents a single named numeric credential stored in the local
// vault. The PIN value is kept in plain form inside the process; protecting
// its display is the job of the reveal controller, not of this model.
type PinItem struct {
	// Name is the human-readable label of the credential ("garage door",
	// "SIM card", ...). Uniqueness is enforced on the normalized form,
	// see NormalizeName.
	Name string `json:"name"`

	// PIN is the credential value: 4–8 numeric digits.
	PIN string `json:"pin"`
}

// NormalizeName returns the canonical form of an item name used for the
// uniqueness invariant: surrounding whitespace removed, lowercased.
// Two items whose names collapse to the same normalized form are considered
// the same item.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
