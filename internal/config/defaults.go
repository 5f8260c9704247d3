package config

import "time"

// Built-in defaults applied after every other source.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultMaxUploadSize   = 32 << 20
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxImagePixels  = 40_000_000
	DefaultVersion         = "dev"
)

func defaults(buildVersion string) *StructuredConfig {
	version := buildVersion
	if version == "" {
		version = DefaultVersion
	}

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			MaxUploadSize:   DefaultMaxUploadSize,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Stego: Stego{
			MaxImagePixels: DefaultMaxImagePixels,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
