package cli

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pin-vault/internal/biometric"
	"github.com/MKhiriev/go-pin-vault/internal/connection"
)

func (c *CLI) setConnection(ctx context.Context) {
	ip, err := c.readLine("Server IP (private network, e.g. 192.168.1.10)")
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}

	port, err := c.readLine("Server port (1-65535)")
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}

	if err := c.conn.Set(ctx, ip, port); err != nil {
		if errors.Is(err, connection.ErrValidation) {
			c.printf("Rejected: %v.\nThe address must be a private IPv4 (10.x, 172.16-31.x, 192.168.x) and the port 1-65535.\n", err)
			return
		}
		c.printf("error: %v\n", err)
		return
	}

	endpoint := c.conn.Get()
	c.printf("Backup server set to %s:%s.\n", endpoint.IP, endpoint.Port)

	// probe the endpoint right away so a typo surfaces here, not on the
	// first export
	if err := c.backups.CheckHealth(ctx); err != nil {
		c.printf("Warning: the new endpoint did not answer the health probe. The address is kept.\n")
		c.printBackupError(err)
		return
	}
	c.printf("Health probe OK, the server is reachable.\n")
}

func (c *CLI) setDevicePIN(ctx context.Context) {
	pin, err := c.readSecretTwice("Device PIN (exactly 4 digits)")
	if err != nil {
		c.printf("error: %v\n", err)
		return
	}

	if err := biometric.EnrollDevicePIN(ctx, c.kv, pin); err != nil {
		if errors.Is(err, biometric.ErrInvalidDevicePIN) {
			c.printf("The device PIN must be exactly 4 digits.\n")
			return
		}
		c.printf("error: %v\n", err)
		return
	}

	c.printf("Device PIN enrolled. reveal will ask for it from now on.\n")
}
