package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-pin-vault/internal/health"
	"github.com/MKhiriev/go-pin-vault/internal/service"
)

// backupListDisplayCap bounds how many server backups the backups command
// prints. The server keeps everything; the terminal shows the newest few.
const backupListDisplayCap = 10

func (c *CLI) exportBackup(ctx context.Context) {
	info, err := c.backups.ExportAll(ctx)
	if err != nil {
		c.printBackupError(err)
		return
	}

	c.printf("Backup stored on the server as %s (%d bytes).\n", info.Filename, info.Bytes)
}

func (c *CLI) importBackup(ctx context.Context, args []string) {
	var (
		count int
		err   error
	)

	if len(args) == 0 {
		count, err = c.backups.ImportLatest(ctx)
	} else {
		count, err = c.backups.ImportFrom(ctx, strings.Join(args, " "))
	}
	if err != nil {
		c.printBackupError(err)
		return
	}

	c.printf("Restored %d saved PIN(s) from the backup.\n", count)
}

func (c *CLI) listBackups(ctx context.Context) {
	items, err := c.backups.List(ctx)
	if err != nil {
		c.printBackupError(err)
		return
	}

	if len(items) == 0 {
		c.printf("The server holds no backups yet. Use export to create one.\n")
		return
	}

	shown := items
	if len(shown) > backupListDisplayCap {
		shown = shown[:backupListDisplayCap]
	}

	for i, item := range shown {
		c.printf("%2d. %-48s %8d bytes  %s\n",
			i+1, item.Filename, item.Bytes, item.ModifiedAt.Local().Format("2006-01-02 15:04:05"))
	}
	if rest := len(items) - len(shown); rest > 0 {
		c.printf("    ... and %d older backup(s)\n", rest)
	}
}

func (c *CLI) checkHealth(ctx context.Context) {
	if err := c.backups.CheckHealth(ctx); err != nil {
		c.printBackupError(err)
		return
	}

	c.printf("Backup server is healthy.\n")
}

// HealthChanged is invoked by the background health watcher on reachability
// transitions. It runs on the watcher goroutine, never on the REPL one.
func (c *CLI) HealthChanged(healthy bool, err error) {
	if healthy {
		c.printf("\n[backup server is reachable again]\n")
		return
	}
	c.printf("\n[backup server went offline: %v]\n", err)
}

func (c *CLI) printBackupError(err error) {
	switch {
	case errors.Is(err, service.ErrServerUnconfigured):
		c.printf("The backup server is not configured. Run setconn first.\n")
	case errors.Is(err, health.ErrProbeTimeout):
		c.printf("The backup server did not answer in time: %v.\n", err)
	case errors.Is(err, service.ErrInvalidAPIKey):
		c.printf("The backup server rejected the API key. Check the client configuration.\n")
	case errors.Is(err, service.ErrNoBackups):
		c.printf("The server holds no backups yet. Use export to create one.\n")
	case errors.Is(err, service.ErrBackupNotFound):
		c.printf("No backup with this path on the server. Use backups to list stored ones.\n")
	case errors.Is(err, service.ErrMalformedBackup):
		c.printf("The server returned a malformed backup. Local PINs are unchanged.\n")
	case errors.Is(err, service.ErrTransport):
		c.printf("The backup server is unreachable: %v.\n", err)
	default:
		c.printf("error: %v\n", err)
	}
}
