// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package connection owns the backup-server endpoint. The endpoint lives in
// the key-value store under server_ip and server_port and is mirrored in
// memory for cheap reads; Set persists both keys before rebuilding the
// in-memory base URL, so a half-written endpoint is never served.
package connection

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pin-vault/internal/kvstore"
	"github.com/MKhiriev/go-pin-vault/internal/logger"
	"github.com/MKhiriev/go-pin-vault/models"
)

// Key-value store keys holding the endpoint fields.
const (
	serverIPKey   = "server_ip"
	serverPortKey = "server_port"
)

// Store holds the active backup-server endpoint. Safe for concurrent use.
type Store struct {
	kv     kvstore.Store
	logger *logger.Logger

	mu       sync.RWMutex
	endpoint models.Endpoint
	baseURL  string
}

// NewStore loads the persisted endpoint (absent keys mean unconfigured)
// and returns a ready Store.
func NewStore(ctx context.Context, kv kvstore.Store, log *logger.Logger) (*Store, error) {
	s := &Store{
		kv:     kv,
		logger: log,
	}

	ip, err := loadField(ctx, kv, serverIPKey)
	if err != nil {
		return nil, err
	}
	port, err := loadField(ctx, kv, serverPortKey)
	if err != nil {
		return nil, err
	}

	s.endpoint = models.Endpoint{IP: ip, Port: port}
	if s.endpoint.IsConfigured() {
		s.baseURL = formatBaseURL(s.endpoint)
	}

	return s, nil
}

// Get returns the current endpoint. Both fields are empty until the first
// successful Set.
func (s *Store) Get() models.Endpoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.endpoint
}

// Set validates and activates a new endpoint. The ip must be a private-range
// IPv4 address (10.0.0.0/8, 172.16.0.0/12 or 192.168.0.0/16) and the port an
// integer in [1,65535]; anything else fails with ErrValidation before any
// write. Both keys are persisted before the in-memory endpoint and base URL
// change, and this is the only path that changes them.
func (s *Store) Set(ctx context.Context, ip, port string) error {
	ip = strings.TrimSpace(ip)
	port = strings.TrimSpace(port)

	if err := validateIP(ip); err != nil {
		return err
	}
	if err := validatePort(port); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Set(ctx, serverIPKey, ip); err != nil {
		s.logger.Err(err).Str("func", "Set").Msg("error persisting server ip")
		return fmt.Errorf("error persisting server ip: %w", err)
	}
	if err := s.kv.Set(ctx, serverPortKey, port); err != nil {
		s.logger.Err(err).Str("func", "Set").Msg("error persisting server port")
		return fmt.Errorf("error persisting server port: %w", err)
	}

	s.endpoint = models.Endpoint{IP: ip, Port: port}
	s.baseURL = formatBaseURL(s.endpoint)

	s.logger.Debug().Str("func", "Set").Str("base_url", s.baseURL).Msg("backup server endpoint changed")
	return nil
}

// BaseURL returns `http://{ip}:{port}/api`, or ErrUnconfigured while either
// endpoint field is missing.
func (s *Store) BaseURL() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.baseURL == "" {
		return "", ErrUnconfigured
	}

	return s.baseURL, nil
}

func loadField(ctx context.Context, kv kvstore.Store, key string) (string, error) {
	value, err := kv.Get(ctx, key)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error loading %s: %w", key, err)
	}

	return value, nil
}

func formatBaseURL(e models.Endpoint) string {
	return fmt.Sprintf("http://%s:%s/api", e.IP, e.Port)
}

// validateIP accepts IPv4 addresses inside the private ranges only.
func validateIP(ip string) error {
	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.To4() == nil {
		return fmt.Errorf("%w: %q is not an IPv4 address", ErrValidation, ip)
	}
	if !parsed.IsPrivate() {
		return fmt.Errorf("%w: %s is not a private-range address", ErrValidation, ip)
	}

	return nil
}

func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("%w: port %q is not in [1,65535]", ErrValidation, port)
	}

	return nil
}
