package service

import (
	"github.com/MKhiriev/go-pin-vault/internal/adapter"
	"github.com/MKhiriev/go-pin-vault/internal/config"
	"github.com/MKhiriev/go-pin-vault/internal/kvstore"
	"github.com/MKhiriev/go-pin-vault/internal/logger"
)

// ClientServices bundles the client-side services for the composition root.
type ClientServices struct {
	BackupService BackupService
	HealthWatch   HealthWatchJob
}

// NewClientServices wires the backup service and the health watcher.
// onHealthChange receives reachability transitions from the watcher and may
// be nil.
func NewClientServices(vault CredentialVault, api adapter.BackupAPI, kv kvstore.Store, appCfg config.ClientApp, healthCfg config.ClientHealth, onHealthChange func(healthy bool, err error), log *logger.Logger) *ClientServices {
	identity := NewDeviceIdentity(kv)
	backupSvc := NewClientBackupService(vault, api, identity, appCfg.Name, appCfg.Version, healthCfg.ProbeTimeout, log)

	return &ClientServices{
		BackupService: backupSvc,
		HealthWatch:   NewHealthWatchJob(backupSvc, onHealthChange, log),
	}
}
