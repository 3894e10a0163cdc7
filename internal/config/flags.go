package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags reads the command line into a config layer.
//
// Flags:
//
//	-a server listen address in [host]:[port] form
//	-d local key-value database DSN
//	-f backup documents directory
//	-c/-config JSON config file path
//	-app-name application label used in backups
//	-api-key shared X-API-KEY token
//	-request-timeout inbound and outbound request timeout, e.g. 10s
//	-reveal-visible-for reveal countdown duration, e.g. 3s
//	-reveal-tick reveal progress tick interval, e.g. 50ms
//	-probe-timeout health probe bound, e.g. 3s
//	-watch-interval background health re-probe interval, e.g. 30s
//	-s3-bucket S3 bucket for backup documents, empty selects the disk store
//	-s3-region S3 region
//	-s3-endpoint S3 endpoint override, e.g. a MinIO URL
func ParseFlags() *StructuredConfig {
	cfg := new(StructuredConfig)
	var address NetAddress
	var requestTimeout time.Duration

	flag.Var(&address, "a", "Server listen address host:port")
	flag.StringVar(&cfg.Storage.DB.DSN, "d", "", "Local key-value database DSN")
	flag.StringVar(&cfg.Storage.Backups.Dir, "f", "", "Backup documents directory")
	flag.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	flag.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&cfg.App.Name, "app-name", "", "Application label used in backups")
	flag.StringVar(&cfg.App.APIKey, "api-key", "", "Shared X-API-KEY token")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	flag.DurationVar(&cfg.Reveal.VisibleFor, "reveal-visible-for", 0, "Reveal countdown duration (e.g., 3s)")
	flag.DurationVar(&cfg.Reveal.Tick, "reveal-tick", 0, "Reveal progress tick interval (e.g., 50ms)")
	flag.DurationVar(&cfg.Health.ProbeTimeout, "probe-timeout", 0, "Health probe bound (e.g., 3s)")
	flag.DurationVar(&cfg.Health.WatchInterval, "watch-interval", 0, "Background health re-probe interval (e.g., 30s)")
	flag.StringVar(&cfg.Storage.Backups.S3.Bucket, "s3-bucket", "", "S3 bucket for backup documents")
	flag.StringVar(&cfg.Storage.Backups.S3.Region, "s3-region", "", "S3 region")
	flag.StringVar(&cfg.Storage.Backups.S3.Endpoint, "s3-endpoint", "", "S3 endpoint override")

	flag.Parse()

	// The single request-timeout flag covers both sides: the server's
	// inbound bound and the client's outbound transport default.
	cfg.Server.HTTPAddress = address.String()
	cfg.Server.RequestTimeout = requestTimeout
	cfg.Adapter.RequestTimeout = requestTimeout

	return cfg
}

// String renders the address as host:port. An all-zero NetAddress renders
// as an empty string so the merge step treats the address as unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses a host:port string into the NetAddress. The host part may be
// empty (bind all interfaces), "localhost", or a literal IP address; the
// port must be a positive integer.
func (a *NetAddress) Set(s string) error {
	host, rawPort, ok := strings.Cut(s, ":")
	if !ok {
		return errors.New("address must be in host:port form")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}
	if port < 1 {
		return errors.New("port must be a positive integer")
	}

	switch host {
	case "", "localhost":
	default:
		if net.ParseIP(host) == nil {
			return errors.New("host must be an IP address or localhost")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
