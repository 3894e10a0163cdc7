// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pin-vault/internal/config"
	"github.com/MKhiriev/go-pin-vault/internal/logger"
	"github.com/MKhiriev/go-pin-vault/internal/mock"
	"github.com/MKhiriev/go-pin-vault/internal/store"
	"github.com/MKhiriev/go-pin-vault/internal/utils"
	"github.com/MKhiriev/go-pin-vault/models"
)

const testAPIKey = "test-api-key"

// ---- Helpers ----

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	backups, err := store.NewDiskStore(config.ServerBackups{Dir: t.TempDir()}, utils.NewUUIDGenerator(), logger.Nop())
	require.NoError(t, err)

	return NewHandler(backups, config.ServerApp{Version: "test", APIKey: testAPIKey}, logger.Nop())
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(newTestHandler(t).Init())
	t.Cleanup(srv.Close)
	return srv
}

// doJSON sends a request with the test API key and an optional JSON body.
func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set(apiKeyHeader, testAPIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func exportRequest(app, payload string) models.ExportRequest {
	return models.ExportRequest{
		App:           app,
		SchemaVersion: models.EnvelopeSchemaVersion,
		Payload:       json.RawMessage(payload),
		Meta:          models.EnvelopeMeta{Device: "device-1", AppVersion: "1.0.0"},
	}
}

// ---- export + import ----

func TestExportImport_RoundTrip(t *testing.T) {
	srv := newTestServer(t)

	payload := `{"items":[{"name":"sim","pin":"1234"},{"name":"garage","pin":"55555"}]}`
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/backups/export/", exportRequest("pin-vault", payload))
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var exported models.ExportResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&exported))
	assert.NotEmpty(t, exported.File.Path)
	assert.Contains(t, exported.File.Filename, "pin-vault-")

	importResp := doJSON(t, http.MethodPost, srv.URL+"/api/backups/import/",
		models.ImportRequest{App: "pin-vault", Path: exported.File.Path})
	defer importResp.Body.Close()

	require.Equal(t, http.StatusOK, importResp.StatusCode)

	var imported models.ImportResponse
	require.NoError(t, json.NewDecoder(importResp.Body).Decode(&imported))
	assert.Equal(t, "pin-vault", imported.App)
	assert.Equal(t, models.EnvelopeSchemaVersion, imported.SchemaVersion)
	assert.WithinDuration(t, time.Now(), imported.ExportedAt, 5*time.Second)
	assert.JSONEq(t, payload, string(imported.Payload))
}

func TestExport_RejectsBadRequests(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body any
	}{
		{name: "payload items not an array", body: exportRequest("pin-vault", `{"items":"not-an-array"}`)},
		{name: "payload missing", body: exportRequest("pin-vault", ``)},
		{name: "payload without items", body: exportRequest("pin-vault", `{}`)},
		{name: "app missing", body: exportRequest("", `{"items":[]}`)},
		{name: "body is not json", body: "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, http.MethodPost, srv.URL+"/api/backups/export/", tt.body)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestImport_RejectsTraversalPaths(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"../escape.json", "/etc/passwd", "sub/backup.json"} {
		resp := doJSON(t, http.MethodPost, srv.URL+"/api/backups/import/",
			models.ImportRequest{App: "pin-vault", Path: path})
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "path %q", path)
	}
}

func TestImport_MissingBackup(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/backups/import/",
		models.ImportRequest{App: "pin-vault", Path: "pin-vault-20260825T000000Z-deadbeef.json"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestImport_RequiresAppAndPath(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/backups/import/", models.ImportRequest{App: "pin-vault"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ---- list + latest ----

func TestListBackups_NewestFirst(t *testing.T) {
	srv := newTestServer(t)

	first := doJSON(t, http.MethodPost, srv.URL+"/api/backups/export/", exportRequest("pin-vault", `{"items":[]}`))
	first.Body.Close()
	time.Sleep(10 * time.Millisecond) // distinct mtimes
	second := doJSON(t, http.MethodPost, srv.URL+"/api/backups/export/", exportRequest("pin-vault", `{"items":[]}`))
	defer second.Body.Close()

	var exported models.ExportResponse
	require.NoError(t, json.NewDecoder(second.Body).Decode(&exported))

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/backups/?app=pin-vault", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list models.ListBackupsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list.Items, 2)
	assert.Equal(t, exported.File.Filename, list.Items[0].Filename)
}

func TestListBackups_RequiresApp(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/backups/", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLatestBackup_NullWhenEmpty(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/backups/latest/?app=pin-vault", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"latest":null}`, string(body))
}

func TestLatestBackup_ReturnsNewest(t *testing.T) {
	srv := newTestServer(t)

	first := doJSON(t, http.MethodPost, srv.URL+"/api/backups/export/", exportRequest("pin-vault", `{"items":[]}`))
	first.Body.Close()
	time.Sleep(10 * time.Millisecond)
	second := doJSON(t, http.MethodPost, srv.URL+"/api/backups/export/", exportRequest("pin-vault", `{"items":[]}`))
	defer second.Body.Close()

	var exported models.ExportResponse
	require.NoError(t, json.NewDecoder(second.Body).Decode(&exported))

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/backups/latest/?app=pin-vault", nil)
	defer resp.Body.Close()

	var latest models.LatestBackupResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&latest))
	require.NotNil(t, latest.Latest)
	assert.Equal(t, exported.File.Filename, latest.Latest.Filename)
}

// ---- store failures ----

func TestListBackups_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	backups := mock.NewMockBackupStore(ctrl)
	backups.EXPECT().List(gomock.Any(), "pin-vault").Return(nil, assert.AnError)

	h := NewHandler(backups, config.ServerApp{APIKey: testAPIKey}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/backups/?app=pin-vault", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestExportBackup_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	backups := mock.NewMockBackupStore(ctrl)
	backups.EXPECT().Save(gomock.Any(), gomock.Any()).Return(models.FileInfo{}, assert.AnError)

	h := NewHandler(backups, config.ServerApp{APIKey: testAPIKey}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/backups/export/", exportRequest("pin-vault", `{"items":[]}`))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
