// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-pin-vault/internal/app"
	"github.com/MKhiriev/go-pin-vault/internal/logger"
	"github.com/MKhiriev/go-pin-vault/internal/store"
	"github.com/MKhiriev/go-pin-vault/models"
)

func (h *Handler) listBackups(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	appName := r.URL.Query().Get("app")
	if appName == "" {
		log.Error().Str("func", "*Handler.listBackups").Msg("list request without app query parameter")
		http.Error(w, app.MsgAppParameterRequired, http.StatusBadRequest)
		return
	}

	items, err := h.backups.List(r.Context(), appName)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listBackups").Msg("error listing backups")
		status := statusFromError(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	h.writeJSON(w, r, http.StatusOK, models.ListBackupsResponse{Items: items})
}

func (h *Handler) latestBackup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	appName := r.URL.Query().Get("app")
	if appName == "" {
		log.Error().Str("func", "*Handler.latestBackup").Msg("latest request without app query parameter")
		http.Error(w, app.MsgAppParameterRequired, http.StatusBadRequest)
		return
	}

	latest, err := h.backups.Latest(r.Context(), appName)
	if err != nil {
		log.Err(err).Str("func", "*Handler.latestBackup").Msg("error resolving latest backup")
		status := statusFromError(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	// latest stays nil when the store holds no backups; the response
	// carries an explicit null so clients can tell "none" from an error
	h.writeJSON(w, r, http.StatusOK, models.LatestBackupResponse{Latest: latest})
}

func (h *Handler) exportBackup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.exportBackup").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if req.App == "" {
		log.Error().Str("func", "*Handler.exportBackup").Msg("export request without app")
		http.Error(w, app.MsgAppRequired, http.StatusBadRequest)
		return
	}

	// the payload must carry an items array; a backup that cannot be
	// imported back is refused up front
	if _, err := models.ParseEnvelopePayload(req.Payload); err != nil {
		log.Err(err).Str("func", "*Handler.exportBackup").Msg("export payload failed the shape check")
		http.Error(w, app.MsgPayloadNotImportable, http.StatusBadRequest)
		return
	}

	doc := models.NewBackupDocument(req, time.Now())
	info, err := h.backups.Save(r.Context(), doc)
	if err != nil {
		log.Err(err).Str("func", "*Handler.exportBackup").Msg("error storing backup")
		status := statusFromError(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, models.ExportResponse{
		Message: app.MsgBackupStored,
		File:    info,
	})
}

func (h *Handler) importBackup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.importBackup").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if req.App == "" || req.Path == "" {
		log.Error().Str("func", "*Handler.importBackup").Msg("import request without app or path")
		http.Error(w, app.MsgAppAndPathRequired, http.StatusBadRequest)
		return
	}

	doc, err := h.backups.Open(r.Context(), req.App, req.Path)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrPathEscapesRoot):
			log.Err(err).Str("func", "*Handler.importBackup").Msg("import path rejected")
			http.Error(w, app.MsgPathNotABackupName, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrBackupNotFound):
			log.Err(err).Str("func", "*Handler.importBackup").Msg("requested backup does not exist")
			http.Error(w, app.MsgBackupNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.importBackup").Msg("error opening backup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	h.writeJSON(w, r, http.StatusOK, doc.ImportResponse())
}
