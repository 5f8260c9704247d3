// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-stego-keeper/internal/app"
	"github.com/MKhiriev/go-stego-keeper/internal/crypto"
	"github.com/MKhiriev/go-stego-keeper/internal/imaging"
	"github.com/MKhiriev/go-stego-keeper/internal/service"
	"github.com/MKhiriev/go-stego-keeper/internal/stego"
	"github.com/MKhiriev/go-stego-keeper/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	invalid := func(err error) error {
		return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"capacity", fmt.Errorf("embed: %w", stego.ErrCapacity), http.StatusBadRequest, app.MsgCapacity},
		{"format", stego.ErrFormat, http.StatusBadRequest, app.MsgDecryptFailed},
		{"empty message from codec", stego.ErrEmptyMessage, http.StatusBadRequest, stego.ErrEmptyMessage.Error()},
		{"validator image", invalid(validators.ErrEmptyImage), http.StatusBadRequest, "image is required"},
		{"validator message", invalid(validators.ErrEmptyMessage), http.StatusBadRequest, "message is required"},
		{"validator utf8", invalid(validators.ErrInvalidMessage), http.StatusBadRequest, validators.ErrInvalidMessage.Error()},
		{"validator key", invalid(validators.ErrEmptyPassphrase), http.StatusBadRequest, "key is required"},
		{"invalid data only", invalid(validators.ErrUnsupportedType), http.StatusBadRequest, service.ErrInvalidDataProvided.Error()},
		{"empty passphrase", crypto.ErrEmptyPassphrase, http.StatusBadRequest, crypto.ErrEmptyPassphrase.Error()},
		{"unsupported format", fmt.Errorf("decode: %w", imaging.ErrUnsupportedFormat), http.StatusBadRequest, app.MsgBadImage},
		{"corrupt", imaging.ErrCorruptImage, http.StatusBadRequest, app.MsgBadImage},
		{"empty image", imaging.ErrEmptyImage, http.StatusBadRequest, app.MsgBadImage},
		{"invalid form", ErrInvalidForm, http.StatusBadRequest, ErrInvalidForm.Error()},
		{"too many pixels", imaging.ErrImageTooLarge, http.StatusRequestEntityTooLarge, app.MsgImageTooLarge},
		{"body too large", ErrRequestTooLarge, http.StatusRequestEntityTooLarge, app.MsgImageTooLarge},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
		{"invalid key size leaks nothing", crypto.ErrInvalidKeySize, http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/encrypt", nil)

	h.writeError(rec, req, errors.New("internal detail that must not leak"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}
