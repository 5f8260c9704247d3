package http

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-stego-keeper/internal/config"
	"github.com/MKhiriev/go-stego-keeper/internal/logger"
	"github.com/MKhiriev/go-stego-keeper/internal/metrics"
	"github.com/MKhiriev/go-stego-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testServerConfig() config.Server {
	return config.Server{
		HTTPAddress:     "localhost:8080",
		RequestTimeout:  5 * time.Second,
		MaxUploadSize:   1 << 20,
		ShutdownTimeout: time.Second,
	}
}

func newTestHandler() *Handler {
	return &Handler{
		services: &service.Services{},
		metrics:  metrics.NewMetrics(),
		cfg:      testServerConfig(),
		logger:   logger.Nop(),
	}
}

// newRealHandler wires the production service stack behind the handler.
func newRealHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := &config.StructuredConfig{
		App:    config.App{Version: "1.0.0"},
		Server: testServerConfig(),
		Stego:  config.Stego{MaxImagePixels: 1 << 20},
	}
	m := metrics.NewMetrics()
	services, err := service.NewServices(cfg, m, logger.Nop())
	require.NoError(t, err)

	return NewHandler(services, m, cfg.Server, logger.Nop())
}

func carrierPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 7), G: uint8(y * 13), B: uint8(x + y), A: 0xff})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// multipartRequest builds a form POST. A nil image omits the file part.
func multipartRequest(t *testing.T, target string, image []byte, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if image != nil {
		part, err := mw.CreateFormFile(formFieldImage, "carrier.png")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	services := &service.Services{}
	m := metrics.NewMetrics()
	cfg := testServerConfig()

	h := NewHandler(services, m, cfg, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Same(t, m, h.metrics)
	assert.Equal(t, cfg, h.cfg)
	assert.NotNil(t, h.logger)
}

func TestHandler_RequestLogger_FallsBackToHandlerLogger(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Same(t, h.logger, h.requestLogger(req))
}
