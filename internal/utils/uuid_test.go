package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	id := g.Generate()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected a parseable UUID, got %q: %v", id, err)
	}
}

func TestUUIDGenerator_GenerateUnique(t *testing.T) {
	g := NewUUIDGenerator()

	if g.Generate() == g.Generate() {
		t.Fatal("expected consecutive UUIDs to differ")
	}
}

func TestUUIDGenerator_GenerateShort(t *testing.T) {
	g := NewUUIDGenerator()

	short := g.GenerateShort()
	if len(short) != 8 {
		t.Fatalf("expected 8-character short ID, got %q (len %d)", short, len(short))
	}
}
