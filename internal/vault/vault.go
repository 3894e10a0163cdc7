// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault owns the list of named PIN credentials. Items live in memory
// for fast reads and are persisted as a single JSON array in the key-value
// store; every mutation persists the candidate list first and commits the
// in-memory state only after the write succeeded, so a storage failure never
// leaves the two views disagreeing.
package vault

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pin-vault/internal/kvstore"
	"github.com/MKhiriev/go-pin-vault/internal/logger"
	"github.com/MKhiriev/go-pin-vault/models"
)

// pinItemsKey is the key-value store key holding the serialized item list.
const pinItemsKey = "pin_items"

var pinPattern = regexp.MustCompile(`^[0-9]{4,8}$`)

// Store holds the named PIN items. Names are unique after normalization
// (trim + lowercase); insertion order is preserved for listing.
// Safe for concurrent use.
type Store struct {
	kv     kvstore.Store
	logger *logger.Logger

	mu    sync.RWMutex
	items []models.PinItem
}

// NewStore loads the persisted item list (an absent key means an empty
// vault) and returns a ready Store.
func NewStore(ctx context.Context, kv kvstore.Store, log *logger.Logger) (*Store, error) {
	s := &Store{
		kv:     kv,
		logger: log,
	}

	raw, err := kv.Get(ctx, pinItemsKey)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading pin items: %w", err)
	}

	var items []models.PinItem
	if err = json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("error decoding pin items: %w", err)
	}
	s.items = items

	return s, nil
}

// Add validates item and appends it. Fails with ErrDuplicateName when the
// normalized name is already taken; the store is unchanged on any failure.
func (s *Store) Add(ctx context.Context, item models.PinItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if err := validateItem(item); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(item.Name) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateName, item.Name)
	}

	candidate := make([]models.PinItem, len(s.items), len(s.items)+1)
	copy(candidate, s.items)
	candidate = append(candidate, item)

	if err := s.persist(ctx, candidate); err != nil {
		return err
	}
	s.items = candidate

	s.logger.Debug().Str("func", "Add").Str("name", item.Name).Msg("pin item added")
	return nil
}

// Update replaces the item known under name with updated (rename and/or
// re-pin). A rename that collides with a different existing item fails with
// ErrDuplicateName; the store is unchanged on any failure.
func (s *Store) Update(ctx context.Context, name string, updated models.PinItem) error {
	updated.Name = strings.TrimSpace(updated.Name)
	if err := validateItem(updated); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, name)
	}

	if other := s.indexOf(updated.Name); other >= 0 && other != idx {
		return fmt.Errorf("%w: %s", ErrDuplicateName, updated.Name)
	}

	candidate := make([]models.PinItem, len(s.items))
	copy(candidate, s.items)
	candidate[idx] = updated

	if err := s.persist(ctx, candidate); err != nil {
		return err
	}
	s.items = candidate

	s.logger.Debug().Str("func", "Update").Str("name", updated.Name).Msg("pin item updated")
	return nil
}

// Remove deletes the item known under name, or fails with ErrItemNotFound.
func (s *Store) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, name)
	}

	candidate := make([]models.PinItem, 0, len(s.items)-1)
	candidate = append(candidate, s.items[:idx]...)
	candidate = append(candidate, s.items[idx+1:]...)

	if err := s.persist(ctx, candidate); err != nil {
		return err
	}
	s.items = candidate

	s.logger.Debug().Str("func", "Remove").Str("name", name).Msg("pin item removed")
	return nil
}

// Get returns the item matching name by normalized comparison.
func (s *Store) Get(name string) (models.PinItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(name)
	if idx < 0 {
		return models.PinItem{}, fmt.Errorf("%w: %s", ErrItemNotFound, name)
	}

	return s.items[idx], nil
}

// List returns a copy of all items in insertion order.
func (s *Store) List() []models.PinItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.PinItem, len(s.items))
	copy(items, s.items)
	return items
}

// ReplaceAll swaps the whole item list, validating every entry and the
// uniqueness invariant first. Used when adopting an imported backup.
func (s *Store) ReplaceAll(ctx context.Context, items []models.PinItem) error {
	candidate := make([]models.PinItem, len(items))
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		item.Name = strings.TrimSpace(item.Name)
		if err := validateItem(item); err != nil {
			return err
		}

		normalized := models.NormalizeName(item.Name)
		if _, ok := seen[normalized]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateName, item.Name)
		}
		seen[normalized] = struct{}{}
		candidate[i] = item
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, candidate); err != nil {
		return err
	}
	s.items = candidate

	s.logger.Debug().Str("func", "ReplaceAll").Int("count", len(candidate)).Msg("pin items replaced")
	return nil
}

// Len returns the number of stored items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// indexOf resolves name to an item index by normalized comparison.
// Callers must hold s.mu.
func (s *Store) indexOf(name string) int {
	normalized := models.NormalizeName(name)
	for i, item := range s.items {
		if models.NormalizeName(item.Name) == normalized {
			return i
		}
	}
	return -1
}

// persist writes candidate to the key-value store. Callers must hold s.mu.
func (s *Store) persist(ctx context.Context, candidate []models.PinItem) error {
	payload, err := json.Marshal(candidate)
	if err != nil {
		return fmt.Errorf("error encoding pin items: %w", err)
	}

	if err = s.kv.Set(ctx, pinItemsKey, string(payload)); err != nil {
		s.logger.Err(err).Str("func", "persist").Msg("error persisting pin items")
		return fmt.Errorf("error persisting pin items: %w", err)
	}

	return nil
}

func validateItem(item models.PinItem) error {
	if item.Name == "" {
		return ErrEmptyName
	}
	if !pinPattern.MatchString(item.PIN) {
		return fmt.Errorf("%w (item %s)", ErrInvalidPIN, item.Name)
	}

	return nil
}
