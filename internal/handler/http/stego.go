package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-stego-keeper/internal/logger"
	"github.com/MKhiriev/go-stego-keeper/internal/utils"
	"github.com/MKhiriev/go-stego-keeper/models"
)

// Multipart form field names shared with the browser UI. Text fields are
// read from the body only; the query string ends up in access logs.
const (
	formFieldImage   = "image"
	formFieldMessage = "message"
	formFieldKey     = "key"

	// multipartMemory is how much of a form is kept in memory before
	// file parts spill to disk.
	multipartMemory = 8 << 20

	encryptedFileName = "encrypted.png"
)

func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := h.requestLogger(r)

	image, err := readForm(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	out, err := h.services.StegoService.Hide(ctx, models.HideRequest{
		Image:      image,
		Message:    r.PostFormValue(formFieldMessage),
		Passphrase: r.PostFormValue(formFieldKey),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", encryptedFileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(out); err != nil {
		log.Err(err).Msg("error writing encrypted image")
	}
}

func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := h.requestLogger(r)

	image, err := readForm(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	message, err := h.services.StegoService.Reveal(ctx, models.RevealRequest{
		Image:      image,
		Passphrase: r.PostFormValue(formFieldKey),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.RevealResponse{Message: message}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing decrypt response")
	}
}

// readForm parses the multipart body and returns the uploaded image. A
// missing image part yields nil so the service validator reports it.
func readForm(r *http.Request) ([]byte, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if maxBytesErr := (*http.MaxBytesError)(nil); errors.As(err, &maxBytesErr) {
			return nil, fmt.Errorf("%w: limit %d bytes", ErrRequestTooLarge, maxBytesErr.Limit)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	file, _, err := r.FormFile(formFieldImage)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("error reading uploaded image: %w", err)
	}
	return data, nil
}

// requestLogger returns the logger attached by withTraceID, falling back
// to the handler's logger.
func (h *Handler) requestLogger(r *http.Request) *logger.Logger {
	return logger.FromContextOr(r.Context(), h.logger)
}
