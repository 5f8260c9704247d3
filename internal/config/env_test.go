// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":  "30s",
		"SERVER_MAX_UPLOAD_SIZE":  "1048576",
		"SERVER_SHUTDOWN_TIMEOUT": "5s",

		"STEGO_MAX_IMAGE_PIXELS": "1000000",

		"ADAPTER_ADDRESS":         "http://127.0.0.1:8080",
		"ADAPTER_REQUEST_TIMEOUT": "1m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(1048576), cfg.Server.MaxUploadSize)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, 1000000, cfg.Stego.MaxImagePixels)

	assert.Equal(t, "http://127.0.0.1:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"SERVER_ADDRESS": "localhost:8080",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)
	assert.Zero(t, cfg.Server.MaxUploadSize)

	// Others untouched
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Stego{}, cfg.Stego)
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"duration", "SERVER_REQUEST_TIMEOUT", "invalid_duration"},
		{"upload size", "SERVER_MAX_UPLOAD_SIZE", "32MiB"},
		{"pixel limit", "STEGO_MAX_IMAGE_PIXELS", "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{tt.key: tt.val})

			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "env")
		})
	}
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_VERSION",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"SERVER_MAX_UPLOAD_SIZE",
		"SERVER_SHUTDOWN_TIMEOUT",

		"STEGO_MAX_IMAGE_PIXELS",

		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",
	}
	for _, k := range keys {
		// t.Setenv registers the restore; Unsetenv then hides the value
		// for the rest of the test.
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}

func TestParseEnv_EmptyValueCountsAsUnset(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("STEGO_MAX_IMAGE_PIXELS", "")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Zero(t, cfg.Stego.MaxImagePixels)
	assert.Zero(t, cfg.Server.RequestTimeout)
}
