// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pin-vault/internal/adapter"
	"github.com/MKhiriev/go-pin-vault/internal/biometric"
	"github.com/MKhiriev/go-pin-vault/internal/cli"
	"github.com/MKhiriev/go-pin-vault/internal/config"
	"github.com/MKhiriev/go-pin-vault/internal/connection"
	"github.com/MKhiriev/go-pin-vault/internal/kvstore"
	"github.com/MKhiriev/go-pin-vault/internal/logger"
	"github.com/MKhiriev/go-pin-vault/internal/reveal"
	"github.com/MKhiriev/go-pin-vault/internal/service"
	"github.com/MKhiriev/go-pin-vault/internal/vault"
	"github.com/MKhiriev/go-pin-vault/models"
)

// App is the client runtime assembled by NewApp.
type App struct {
	services *service.ClientServices
	revealer *reveal.Controller
	ui       *cli.CLI
	kv       kvstore.Store

	watchInterval time.Duration
	logger        *logger.Logger
}

// NewApp wires the full client from cfg: the SQLite key-value store, the
// vault and connection stores on top of it, the HTTP backup adapter, the
// device PIN gate with the reveal controller, and the REPL driving them.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	ctx := context.Background()

	kv, err := kvstore.NewSQLite(ctx, cfg.Storage.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("open key-value store: %w", err)
	}

	vaultStore, err := vault.NewStore(ctx, kv, log)
	if err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("load vault: %w", err)
	}

	connStore, err := connection.NewStore(ctx, kv, log)
	if err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("load server connection: %w", err)
	}

	api := adapter.NewHTTPBackupAPI(cfg.Adapter, cfg.App, connStore, log)

	verifier := biometric.NewDevicePINVerifier(kv, nil, log)
	gate := biometric.NewGate(verifier, log)

	app := &App{
		kv:            kv,
		watchInterval: cfg.Health.WatchInterval,
		logger:        log,
	}

	// The services and the controller report into the REPL, which in turn
	// drives them. Late-bound relays through app break the construction
	// cycle; nothing fires before Run, when app.ui is set.
	onHealthChange := func(healthy bool, err error) {
		if ui := app.ui; ui != nil {
			ui.HealthChanged(healthy, err)
		}
	}
	app.services = service.NewClientServices(vaultStore, api, kv, cfg.App, cfg.Health, onHealthChange, log)

	app.revealer = reveal.NewController(cfg.Reveal, vaultStore, gate, &revealRelay{app: app}, log)

	app.ui = cli.New(cli.Deps{
		Vault:       vaultStore,
		Connection:  connStore,
		Backups:     app.services.BackupService,
		Revealer:    app.revealer,
		PINVerifier: verifier,
		KV:          kv,
		App:         cfg.App,
	}, log)

	return app, nil
}

// Run starts the background health watcher and hands the terminal to the
// REPL. It blocks until the user exits, then tears the runtime down.
func (a *App) Run() error {
	ctx := context.Background()

	defer func() {
		if err := a.kv.Close(); err != nil {
			a.logger.Err(err).Str("func", "Run").Msg("closing key-value store")
		}
	}()

	a.services.HealthWatch.Start(ctx, a.watchInterval)
	defer a.services.HealthWatch.Stop()
	defer a.revealer.Close()

	return a.ui.Run(ctx)
}

// revealRelay forwards reveal lifecycle callbacks to the REPL once it
// exists.
type revealRelay struct {
	app *App
}

func (r *revealRelay) RevealStarted(item models.PinItem) {
	if ui := r.app.ui; ui != nil {
		ui.RevealStarted(item)
	}
}

func (r *revealRelay) Progress(progress float64) {
	if ui := r.app.ui; ui != nil {
		ui.Progress(progress)
	}
}

func (r *revealRelay) Masked() {
	if ui := r.app.ui; ui != nil {
		ui.Masked()
	}
}

func (r *revealRelay) Notice(text string) {
	if ui := r.app.ui; ui != nil {
		ui.Notice(text)
	}
}
