package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-stego-keeper/internal/config"
	"github.com/MKhiriev/go-stego-keeper/internal/logger"
	"github.com/MKhiriev/go-stego-keeper/internal/utils"
	"github.com/MKhiriev/go-stego-keeper/models"
)

const (
	encryptPath = "/encrypt"
	decryptPath = "/decrypt"
	versionPath = "/api/version/"

	carrierFileName = "carrier"
	pngContentType  = "image/png"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It normalises the base URL from cfg.HTTPAddress and configures the
// underlying resty client with it and with cfg.RequestTimeout.
//
// Returns [ErrInvalidAddress] if cfg.HTTPAddress is empty or is not a
// valid URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Hide implements [ServerAdapter]. The response body is returned as is
// once the server confirms it is a PNG.
func (h *httpServerAdapter) Hide(ctx context.Context, request models.HideRequest) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader("image", carrierFileName, bytes.NewReader(request.Image)).
		SetFormData(map[string]string{
			"message": request.Message,
			"key":     request.Passphrase,
		}).
		Post(encryptPath)
	if err != nil {
		return nil, fmt.Errorf("encrypt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, pngContentType) {
		return nil, fmt.Errorf("%w: content type %q", ErrUnexpectedResponse, ct)
	}

	h.logger.Debug().
		Int("carrier_bytes", len(request.Image)).
		Int("png_bytes", len(resp.Body())).
		Msg("server embedded message")

	return resp.Body(), nil
}

// Reveal implements [ServerAdapter].
func (h *httpServerAdapter) Reveal(ctx context.Context, request models.RevealRequest) (string, error) {
	var result models.RevealResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader("image", carrierFileName, bytes.NewReader(request.Image)).
		SetFormData(map[string]string{"key": request.Passphrase}).
		SetResult(&result).
		Post(decryptPath)
	if err != nil {
		return "", fmt.Errorf("decrypt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Message, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
