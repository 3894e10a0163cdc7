// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pin-vault/internal/kvstore"
	"github.com/MKhiriev/go-pin-vault/internal/logger"
	"github.com/MKhiriev/go-pin-vault/internal/mock"
)

func newTestStore(t *testing.T) (*Store, *kvstore.Memory) {
	t.Helper()
	kv := kvstore.NewMemory()
	s, err := NewStore(context.Background(), kv, logger.Nop())
	require.NoError(t, err)
	return s, kv
}

// ── Construction ─────────────────────────────────────────────────────────────

func TestNewStore_EmptyStoreIsUnconfigured(t *testing.T) {
	s, _ := newTestStore(t)

	assert.Empty(t, s.Get().IP)
	assert.Empty(t, s.Get().Port)

	_, err := s.BaseURL()
	assert.ErrorIs(t, err, ErrUnconfigured)
}

func TestNewStore_LoadsPersistedEndpoint(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	require.NoError(t, kv.Set(ctx, "server_ip", "192.168.1.5"))
	require.NoError(t, kv.Set(ctx, "server_port", "8080"))

	s, err := NewStore(ctx, kv, logger.Nop())
	require.NoError(t, err)

	base, err := s.BaseURL()
	require.NoError(t, err)
	assert.Equal(t, "http://192.168.1.5:8080/api", base)
}

func TestNewStore_PartialEndpointIsUnconfigured(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	require.NoError(t, kv.Set(ctx, "server_ip", "192.168.1.5"))

	s, err := NewStore(ctx, kv, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.5", s.Get().IP)
	_, err = s.BaseURL()
	assert.ErrorIs(t, err, ErrUnconfigured)
}

func TestNewStore_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockStore(ctrl)
	kv.EXPECT().Get(gomock.Any(), "server_ip").Return("", assert.AnError)

	_, err := NewStore(context.Background(), kv, logger.Nop())
	assert.Error(t, err)
}

// ── Set ──────────────────────────────────────────────────────────────────────

func TestSet_Success(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore(t)

	err := s.Set(ctx, "192.168.1.5", "8080")
	require.NoError(t, err)

	base, err := s.BaseURL()
	require.NoError(t, err)
	assert.Equal(t, "http://192.168.1.5:8080/api", base)

	// both fields are durable in the key-value store
	ip, err := kv.Get(ctx, "server_ip")
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.5", ip)
	port, err := kv.Get(ctx, "server_port")
	require.NoError(t, err)
	assert.Equal(t, "8080", port)
}

func TestSet_TrimsInput(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Set(context.Background(), "  10.0.0.7 ", " 9000  "))

	base, err := s.BaseURL()
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.7:9000/api", base)
}

func TestSet_ReplacesPreviousEndpoint(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	require.NoError(t, s.Set(ctx, "192.168.1.5", "8080"))
	require.NoError(t, s.Set(ctx, "172.16.0.20", "9090"))

	base, err := s.BaseURL()
	require.NoError(t, err)
	assert.Equal(t, "http://172.16.0.20:9090/api", base)
}

func TestSet_Validation(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		port string
	}{
		{name: "public address", ip: "8.8.8.8", port: "8080"},
		{name: "port above range", ip: "192.168.1.5", port: "70000"},
		{name: "port zero", ip: "192.168.1.5", port: "0"},
		{name: "negative port", ip: "192.168.1.5", port: "-1"},
		{name: "non-numeric port", ip: "192.168.1.5", port: "http"},
		{name: "empty port", ip: "192.168.1.5", port: ""},
		{name: "loopback address", ip: "127.0.0.1", port: "8080"},
		{name: "just outside 172.16/12", ip: "172.32.0.1", port: "8080"},
		{name: "just outside 192.168/16", ip: "192.169.0.1", port: "8080"},
		{name: "ipv6 unique local", ip: "fd00::1", port: "8080"},
		{name: "hostname instead of ip", ip: "backup.local", port: "8080"},
		{name: "empty ip", ip: "", port: "8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, kv := newTestStore(t)

			err := s.Set(context.Background(), tt.ip, tt.port)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)

			// nothing persisted, nothing activated
			_, err = s.BaseURL()
			assert.ErrorIs(t, err, ErrUnconfigured)
			_, err = kv.Get(context.Background(), "server_ip")
			assert.ErrorIs(t, err, kvstore.ErrKeyNotFound)
		})
	}
}

func TestSet_AcceptsAllPrivateRanges(t *testing.T) {
	tests := []struct {
		name string
		ip   string
	}{
		{name: "10/8", ip: "10.0.0.1"},
		{name: "10/8 upper edge", ip: "10.255.255.254"},
		{name: "172.16/12 lower edge", ip: "172.16.0.1"},
		{name: "172.16/12 upper edge", ip: "172.31.255.254"},
		{name: "192.168/16", ip: "192.168.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStore(t)

			require.NoError(t, s.Set(context.Background(), tt.ip, "8080"))

			base, err := s.BaseURL()
			require.NoError(t, err)
			assert.Equal(t, "http://"+tt.ip+":8080/api", base)
		})
	}
}

func TestSet_FailedValidationKeepsPreviousEndpoint(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	require.NoError(t, s.Set(ctx, "192.168.1.5", "8080"))

	err := s.Set(ctx, "8.8.8.8", "8080")
	assert.ErrorIs(t, err, ErrValidation)

	base, err := s.BaseURL()
	require.NoError(t, err)
	assert.Equal(t, "http://192.168.1.5:8080/api", base)
}

// ── Write-then-activate ──────────────────────────────────────────────────────

func TestSet_IPWriteFailureActivatesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockStore(ctrl)
	kv.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", kvstore.ErrKeyNotFound).Times(2)
	// the port write must never happen when the ip write fails
	kv.EXPECT().Set(gomock.Any(), "server_ip", "192.168.1.5").Return(assert.AnError)

	s, err := NewStore(context.Background(), kv, logger.Nop())
	require.NoError(t, err)

	err = s.Set(context.Background(), "192.168.1.5", "8080")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)

	_, err = s.BaseURL()
	assert.ErrorIs(t, err, ErrUnconfigured)
}

func TestSet_PortWriteFailureActivatesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockStore(ctrl)
	kv.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", kvstore.ErrKeyNotFound).Times(2)
	gomock.InOrder(
		kv.EXPECT().Set(gomock.Any(), "server_ip", "192.168.1.5").Return(nil),
		kv.EXPECT().Set(gomock.Any(), "server_port", "8080").Return(assert.AnError),
	)

	s, err := NewStore(context.Background(), kv, logger.Nop())
	require.NoError(t, err)

	err = s.Set(context.Background(), "192.168.1.5", "8080")
	require.Error(t, err)

	// the in-memory endpoint stays unconfigured even though the ip key
	// was written; only a fully persisted pair is activated
	assert.Empty(t, s.Get().IP)
	_, err = s.BaseURL()
	assert.ErrorIs(t, err, ErrUnconfigured)
}
