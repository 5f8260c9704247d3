package config

import (
	"fmt"
	"time"
)

// ClientFlags carries values the CLI parsed itself. Non-zero values take
// priority over every other source.
type ClientFlags struct {
	ServerAddress  string
	RequestTimeout time.Duration
	JSONFilePath   string
}

// ClientConfig is the configuration view used by the CLI client.
type ClientConfig struct {
	// Adapter contains the remote server address and request timeout.
	Adapter Adapter
	// Stego contains carrier limits used in local mode.
	Stego Stego
}

// GetClientConfig builds and validates the client configuration.
//
// Sources in priority order: flags, environment variables, the JSON file
// and built-in defaults. The standard flag package is not consulted because
// the client parses its own command line.
func GetClientConfig(flags ClientFlags) (*ClientConfig, error) {
	overrides := &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    flags.ServerAddress,
			RequestTimeout: flags.RequestTimeout,
		},
		JSONFilePath: flags.JSONFilePath,
	}

	cfg, err := newConfigBuilder().
		withConfig(overrides).
		withEnv().
		withJSON().
		withDefaults("").
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: cfg.Adapter,
		Stego:   cfg.Stego,
	}

	return clientCfg, clientCfg.validate()
}
