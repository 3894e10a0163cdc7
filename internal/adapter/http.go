package adapter

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pin-vault/internal/config"
	"github.com/MKhiriev/go-pin-vault/internal/logger"
	"github.com/MKhiriev/go-pin-vault/internal/utils"
	"github.com/MKhiriev/go-pin-vault/models"
)

// apiKeyHeader authenticates every request against the backup server.
const apiKeyHeader = "X-API-KEY"

type httpBackupAPI struct {
	client *utils.HTTPClient
	base   BaseURLSource

	apiKey string

	logger *logger.Logger
}

// NewHTTPBackupAPI constructs the HTTP/JSON implementation of [BackupAPI].
// The request timeout comes from adapterCfg and the API key from appCfg;
// the base URL is not fixed here but resolved from base on every call, so
// requests fail with the connection store's unconfigured error until an
// endpoint has been set.
func NewHTTPBackupAPI(adapterCfg config.ClientAdapter, appCfg config.ClientApp, base BaseURLSource, logger *logger.Logger) BackupAPI {
	client := utils.NewHTTPClient()
	client.SetTimeout(adapterCfg.RequestTimeout)

	return &httpBackupAPI{client: client, base: base, apiKey: appCfg.APIKey, logger: logger}
}

// List implements [BackupAPI]. It GETs {base}/backups/?app=<app> and returns
// the decoded file list in server order (newest first).
func (h *httpBackupAPI) List(ctx context.Context, app string) ([]models.FileInfo, error) {
	req, base, err := h.newRequest(ctx)
	if err != nil {
		return nil, err
	}

	var listResp models.ListBackupsResponse
	resp, err := req.
		SetQueryParam("app", app).
		SetResult(&listResp).
		Get(base + "/backups/")
	if err != nil {
		return nil, fmt.Errorf("list backups request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return listResp.Items, nil
}

// Latest implements [BackupAPI]. It GETs {base}/backups/latest/?app=<app>.
// A server with no backups for app answers {"latest": null}, which decodes
// to a nil FileInfo; that is a valid result, not an error.
func (h *httpBackupAPI) Latest(ctx context.Context, app string) (*models.FileInfo, error) {
	req, base, err := h.newRequest(ctx)
	if err != nil {
		return nil, err
	}

	var latestResp models.LatestBackupResponse
	resp, err := req.
		SetQueryParam("app", app).
		SetResult(&latestResp).
		Get(base + "/backups/latest/")
	if err != nil {
		return nil, fmt.Errorf("latest backup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return latestResp.Latest, nil
}

// Export implements [BackupAPI]. It POSTs the export request to
// {base}/backups/export/ and returns the FileInfo the server stored the
// document under.
func (h *httpBackupAPI) Export(ctx context.Context, req models.ExportRequest) (models.FileInfo, error) {
	httpReq, base, err := h.newRequest(ctx)
	if err != nil {
		return models.FileInfo{}, err
	}

	var exportResp models.ExportResponse
	resp, err := httpReq.
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&exportResp).
		Post(base + "/backups/export/")
	if err != nil {
		return models.FileInfo{}, fmt.Errorf("export backup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FileInfo{}, err
	}

	h.logger.Debug().Str("func", "Export").Str("file", exportResp.File.Filename).Msg("backup exported")
	return exportResp.File, nil
}

// Import implements [BackupAPI]. It POSTs {app, path} to
// {base}/backups/import/ and shape-checks the returned payload before
// handing it to the caller. A payload whose items field is not a JSON array
// fails with [ErrMalformedPayload]; nothing local changes in that case.
func (h *httpBackupAPI) Import(ctx context.Context, app string, path string) (models.BackupEnvelope, error) {
	req, base, err := h.newRequest(ctx)
	if err != nil {
		return models.BackupEnvelope{}, err
	}

	var importResp models.ImportResponse
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.ImportRequest{App: app, Path: path}).
		SetResult(&importResp).
		Post(base + "/backups/import/")
	if err != nil {
		return models.BackupEnvelope{}, fmt.Errorf("import backup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BackupEnvelope{}, err
	}

	payload, err := models.ParseEnvelopePayload(importResp.Payload)
	if err != nil {
		return models.BackupEnvelope{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	h.logger.Debug().Str("func", "Import").Str("path", path).Int("items", len(payload.Items)).Msg("backup imported")
	return models.BackupEnvelope{
		SchemaVersion: importResp.SchemaVersion,
		Payload:       payload,
	}, nil
}

// Health implements [BackupAPI]. It GETs {base}/health.
func (h *httpBackupAPI) Health(ctx context.Context) (models.HealthResponse, error) {
	req, base, err := h.newRequest(ctx)
	if err != nil {
		return models.HealthResponse{}, err
	}

	var healthResp models.HealthResponse
	resp, err := req.
		SetResult(&healthResp).
		Get(base + "/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return healthResp, nil
}

// newRequest resolves the current base URL and prepares a request carrying
// the API-key header. The unresolved-endpoint error passes through wrapped
// so callers can recognise it with errors.Is.
func (h *httpBackupAPI) newRequest(ctx context.Context) (*resty.Request, string, error) {
	base, err := h.base.BaseURL()
	if err != nil {
		return nil, "", fmt.Errorf("resolve backup server url: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(apiKeyHeader, h.apiKey)

	return req, base, nil
}
