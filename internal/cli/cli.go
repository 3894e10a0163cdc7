// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pin-vault/internal/biometric"
	"github.com/MKhiriev/go-pin-vault/internal/config"
	"github.com/MKhiriev/go-pin-vault/internal/kvstore"
	"github.com/MKhiriev/go-pin-vault/internal/logger"
	"github.com/MKhiriev/go-pin-vault/internal/reveal"
	"github.com/MKhiriev/go-pin-vault/internal/service"
	"github.com/MKhiriev/go-pin-vault/models"
)

// Vault is the credential surface the REPL drives.
type Vault interface {
	Add(ctx context.Context, item models.PinItem) error
	Update(ctx context.Context, name string, updated models.PinItem) error
	Remove(ctx context.Context, name string) error
	Get(name string) (models.PinItem, error)
	List() []models.PinItem
	Len() int
}

// ConnectionStore is the backup server address surface.
type ConnectionStore interface {
	Get() models.Endpoint
	Set(ctx context.Context, ip, port string) error
}

// Revealer is the reveal session surface.
type Revealer interface {
	Toggle(ctx context.Context, name string)
	Hide()
	State() reveal.State
}

// Deps bundles the collaborators the REPL needs. All fields are required.
type Deps struct {
	Vault       Vault
	Connection  ConnectionStore
	Backups     service.BackupService
	Revealer    Revealer
	PINVerifier biometric.Verifier
	KV          kvstore.Store
	App         config.ClientApp
}

type CLI struct {
	vault    Vault
	conn     ConnectionStore
	backups  service.BackupService
	revealer Revealer
	pin      biometric.Verifier
	kv       kvstore.Store
	app      config.ClientApp

	reader *bufio.Reader
	logger *logger.Logger

	// mu serializes writes to out: reveal countdown frames and health
	// notices arrive from background goroutines while the REPL owns the
	// terminal.
	mu  sync.Mutex
	out io.Writer

	// revealSession is present while the reveal command owns the terminal.
	// Whichever side detaches it, the Enter handler or the auto-mask
	// callback, also wipes the clipboard.
	revealSession *revealSession
}

func New(deps Deps, log *logger.Logger) *CLI {
	return &CLI{
		vault:    deps.Vault,
		conn:     deps.Connection,
		backups:  deps.Backups,
		revealer: deps.Revealer,
		pin:      deps.PINVerifier,
		kv:       deps.KV,
		app:      deps.App,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		logger:   log,
	}
}

// Run starts the read-eval-print loop and blocks until the user exits or
// input reaches EOF. Command handlers print their own errors; the loop only
// cares about I/O.
func (c *CLI) Run(ctx context.Context) error {
	c.printf("pin-vault %s - type help for commands\n", c.app.Version)

	for {
		c.printf("pin-vault> ")

		line, err := c.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.printf("\n")
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			c.help()
		case "status":
			c.status(ctx)
		case "add":
			c.addItem(ctx)
		case "l", "list":
			c.listItems()
		case "update":
			c.updateItem(ctx, args)
		case "remove", "rm":
			c.removeItem(ctx, args)
		case "r", "reveal":
			c.revealItem(ctx, args)
		case "setconn":
			c.setConnection(ctx)
		case "setpin":
			c.setDevicePIN(ctx)
		case "export":
			c.exportBackup(ctx)
		case "import":
			c.importBackup(ctx, args)
		case "backups":
			c.listBackups(ctx)
		case "health":
			c.checkHealth(ctx)
		case "exit", "quit":
			c.printf("Bye!\n")
			return nil
		default:
			c.printf("Unknown command: %s (try help)\n", cmd)
		}
	}
}

func (c *CLI) help() {
	c.printf(`Available commands:
  status          show vault and backup server state
  add             save a new PIN
  list            list saved PINs (values stay hidden)
  reveal [name]   show one PIN for a few seconds
  update [name]   replace the PIN of a saved item
  remove [name]   delete a saved item
  setpin          enroll the device PIN that confirms reveals
  setconn         configure the backup server address
  export          push a backup to the server
  import [path]   restore the latest (or a named) backup
  backups         list backups stored on the server
  health          probe the backup server
  exit            leave
`)
}

func (c *CLI) status(ctx context.Context) {
	c.printf("%s %s\n", c.app.Name, c.app.Version)
	c.printf("  saved PINs:    %d\n", c.vault.Len())

	if endpoint := c.conn.Get(); endpoint.IsConfigured() {
		c.printf("  backup server: %s:%s\n", endpoint.IP, endpoint.Port)
	} else {
		c.printf("  backup server: not configured (run setconn)\n")
	}

	if c.pin.Available(ctx) {
		c.printf("  device PIN:    enrolled\n")
	} else {
		c.printf("  device PIN:    not enrolled (run setpin)\n")
	}
}

// printf is the single funnel for terminal output. Background callbacks
// (reveal frames, health notices) go through it too, so lines never tear.
func (c *CLI) printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, format, args...)
}
