// Package kvstore provides the secure local key-value persistence used by
// the vault client for credentials, the device PIN, the configured endpoint
// and the device identity.
package kvstore

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/kv_store_mock.go -package=mock

// Store is a small key-value persistence contract. Missing keys are reported
// with [ErrKeyNotFound]; Set overwrites existing values.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}
