package http

import (
	"net/http"

	"github.com/MKhiriev/go-stego-keeper/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := h.services.HealthService.Check(r.Context())

	if _, err := utils.WriteJSON(w, status, http.StatusOK); err != nil {
		h.requestLogger(r).Err(err).Msg("error writing health response")
	}
}
