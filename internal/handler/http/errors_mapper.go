package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-stego-keeper/internal/app"
	"github.com/MKhiriev/go-stego-keeper/internal/crypto"
	"github.com/MKhiriev/go-stego-keeper/internal/imaging"
	"github.com/MKhiriev/go-stego-keeper/internal/service"
	"github.com/MKhiriev/go-stego-keeper/internal/stego"
	"github.com/MKhiriev/go-stego-keeper/internal/utils"
	"github.com/MKhiriev/go-stego-keeper/internal/validators"
	"github.com/MKhiriev/go-stego-keeper/models"
)

// errorMapping binds an error to a status and a client-facing message.
// An empty message means the target's own text is shown.
type errorMapping struct {
	target  error
	status  int
	message string
}

// errorStatusMap is checked in order; the first match wins.
var errorStatusMap = []errorMapping{
	{stego.ErrCapacity, http.StatusBadRequest, app.MsgCapacity},
	{stego.ErrFormat, http.StatusBadRequest, app.MsgDecryptFailed},
	{stego.ErrEmptyMessage, http.StatusBadRequest, ""},

	{validators.ErrEmptyImage, http.StatusBadRequest, ""},
	{validators.ErrEmptyMessage, http.StatusBadRequest, ""},
	{validators.ErrInvalidMessage, http.StatusBadRequest, ""},
	{validators.ErrEmptyPassphrase, http.StatusBadRequest, ""},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, ""},
	{crypto.ErrEmptyPassphrase, http.StatusBadRequest, ""},

	{imaging.ErrEmptyImage, http.StatusBadRequest, app.MsgBadImage},
	{imaging.ErrUnsupportedFormat, http.StatusBadRequest, app.MsgBadImage},
	{imaging.ErrCorruptImage, http.StatusBadRequest, app.MsgBadImage},
	{ErrInvalidForm, http.StatusBadRequest, ""},

	{imaging.ErrImageTooLarge, http.StatusRequestEntityTooLarge, app.MsgImageTooLarge},
	{ErrRequestTooLarge, http.StatusRequestEntityTooLarge, app.MsgImageTooLarge},
}

func statusFromError(err error) (int, string) {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.target) {
			if m.message == "" {
				return m.status, m.target.Error()
			}
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with the mapped status and a JSON
// error body. Internal details never reach the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := h.requestLogger(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, werr := utils.WriteJSON(w, models.ErrorResponse{Error: message}, status); werr != nil {
		log.Err(werr).Msg("error writing error response")
	}
}
