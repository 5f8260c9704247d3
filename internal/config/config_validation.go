// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}

	if err := cfg.Server.validate(); err != nil {
		return err
	}

	return cfg.Stego.validate()
}

func (s Server) validate() error {
	switch {
	case s.HTTPAddress == "":
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	case s.RequestTimeout <= 0:
		return fmt.Errorf("%w: request timeout must be positive, got %s", ErrInvalidServerConfigs, s.RequestTimeout)
	case s.MaxUploadSize <= 0:
		return fmt.Errorf("%w: max upload size must be positive, got %d", ErrInvalidServerConfigs, s.MaxUploadSize)
	case s.ShutdownTimeout <= 0:
		return fmt.Errorf("%w: shutdown timeout must be positive, got %s", ErrInvalidServerConfigs, s.ShutdownTimeout)
	}
	return nil
}

func (s Stego) validate() error {
	if s.MaxImagePixels <= 0 {
		return fmt.Errorf("%w: max image pixels must be positive, got %d", ErrInvalidStegoConfigs, s.MaxImagePixels)
	}
	return nil
}

func (a Adapter) validate() error {
	if a.HTTPAddress == "" || a.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.Adapter.validate(); err != nil {
		return err
	}

	return cfg.Stego.validate()
}
