// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stego-keeper/internal/config"
	"github.com/MKhiriev/go-stego-keeper/internal/crypto"
	"github.com/MKhiriev/go-stego-keeper/internal/imaging"
	"github.com/MKhiriev/go-stego-keeper/internal/logger"
	"github.com/MKhiriev/go-stego-keeper/internal/stego"
	"github.com/MKhiriev/go-stego-keeper/models"
)

type stegoService struct {
	keyChain crypto.KeyChain
	codec    *stego.Codec
	decoder  *imaging.Decoder

	logger *logger.Logger
}

// NewStegoService wires the key chain, codec and image decoder into a
// [StegoService]. The key chain also supplies nonces to the codec.
func NewStegoService(keyChain crypto.KeyChain, cfg config.Stego, logger *logger.Logger) StegoService {
	return &stegoService{
		keyChain: keyChain,
		codec:    stego.NewCodec(keyChain),
		decoder:  imaging.NewDecoder(cfg.MaxImagePixels),
		logger:   logger,
	}
}

func (s *stegoService) Hide(ctx context.Context, request models.HideRequest) ([]byte, error) {
	key, err := s.keyChain.NormalizeKey(request.Passphrase)
	if err != nil {
		return nil, fmt.Errorf("error normalizing key: %w", err)
	}

	carrier, format, err := s.decoder.Decode(request.Image)
	if err != nil {
		return nil, fmt.Errorf("error decoding carrier: %w", err)
	}

	embedded, err := s.codec.Embed(carrier, []byte(request.Message), key)
	if err != nil {
		return nil, fmt.Errorf("error embedding message: %w", err)
	}

	out, err := imaging.EncodePNG(embedded)
	if err != nil {
		return nil, fmt.Errorf("error encoding png: %w", err)
	}

	s.log(ctx).Debug().
		Str("format", format).
		Int("rows", carrier.Rows).
		Int("cols", carrier.Cols).
		Int("message_bytes", len(request.Message)).
		Int("output_bytes", len(out)).
		Msg("message hidden")

	return out, nil
}

func (s *stegoService) Reveal(ctx context.Context, request models.RevealRequest) (string, error) {
	key, err := s.keyChain.NormalizeKey(request.Passphrase)
	if err != nil {
		return "", fmt.Errorf("error normalizing key: %w", err)
	}

	carrier, format, err := s.decoder.Decode(request.Image)
	if err != nil {
		return "", fmt.Errorf("error decoding carrier: %w", err)
	}

	message, err := s.codec.Extract(carrier, key)
	if err != nil {
		return "", fmt.Errorf("error extracting message: %w", err)
	}

	s.log(ctx).Debug().
		Str("format", format).
		Int("rows", carrier.Rows).
		Int("cols", carrier.Cols).
		Int("message_bytes", len(message)).
		Msg("message revealed")

	return message, nil
}

// log prefers the request-scoped logger carried by ctx.
func (s *stegoService) log(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, s.logger)
}
