package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pin-vault/internal/kvstore"
	"github.com/MKhiriev/go-pin-vault/internal/utils"
)

// deviceIDKey is the key-value store key holding the device identity.
const deviceIDKey = "device_id"

// DeviceIdentity owns the stable per-device identifier written into backup
// envelopes. The identifier is created lazily on first use and persisted.
type DeviceIdentity struct {
	kv   kvstore.Store
	uuid utils.UUIDGenerator
}

// NewDeviceIdentity returns an identity backed by kv.
func NewDeviceIdentity(kv kvstore.Store) *DeviceIdentity {
	return &DeviceIdentity{kv: kv}
}

// DeviceID returns the persisted identifier, minting and storing a new one
// the first time it is asked for.
func (d *DeviceIdentity) DeviceID(ctx context.Context) (string, error) {
	id, err := d.kv.Get(ctx, deviceIDKey)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, kvstore.ErrKeyNotFound) {
		return "", fmt.Errorf("load device id: %w", err)
	}

	id = d.uuid.Generate()
	if err = d.kv.Set(ctx, deviceIDKey, id); err != nil {
		return "", fmt.Errorf("store device id: %w", err)
	}

	return id, nil
}
