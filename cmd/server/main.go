package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pin-vault/internal/config"
	httphandler "github.com/MKhiriev/go-pin-vault/internal/handler/http"
	"github.com/MKhiriev/go-pin-vault/internal/logger"
	"github.com/MKhiriev/go-pin-vault/internal/server"
	"github.com/MKhiriev/go-pin-vault/internal/store"
	"github.com/MKhiriev/go-pin-vault/internal/utils"
	"github.com/MKhiriev/go-pin-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pin-vault-server")

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.HTTP.Address).Bool("s3", cfg.UsesS3()).Msg("received configs")

	backups, err := newBackupStore(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating backup store")
	}

	handler := httphandler.NewHandler(backups, cfg.App, log)

	srv, err := server.NewServer(handler, cfg.HTTP, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func newBackupStore(cfg *config.ServerConfig, log *logger.Logger) (store.BackupStore, error) {
	uuid := utils.NewUUIDGenerator()

	if cfg.UsesS3() {
		return store.NewS3Store(context.Background(), cfg.Backups, uuid, log)
	}

	return store.NewDiskStore(cfg.Backups, uuid, log)
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
