package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pin-vault/internal/store"
	"github.com/MKhiriev/go-pin-vault/models"
)

var errorStatusMap = map[error]int{
	store.ErrBackupNotFound:   http.StatusNotFound,
	store.ErrPathEscapesRoot:  http.StatusBadRequest,
	models.ErrPayloadNotArray: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
