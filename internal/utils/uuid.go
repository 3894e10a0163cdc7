package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered UUID strings for trace IDs, device
// identifiers and backup file names.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 if the
// system clock refuses to cooperate.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// GenerateShort returns the first 8 characters of a generated UUID. Short IDs
// are used as collision-avoidance suffixes in backup file names.
func (g *UUIDGenerator) GenerateShort() string {
	return g.Generate()[:8]
}
