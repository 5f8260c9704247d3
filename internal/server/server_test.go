package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-stego-keeper/internal/config"
	"github.com/MKhiriev/go-stego-keeper/internal/handler"
	"github.com/MKhiriev/go-stego-keeper/internal/logger"
	"github.com/MKhiriev/go-stego-keeper/internal/metrics"
	"github.com/MKhiriev/go-stego-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(addr string) *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{Version: "test"},
		Server: config.Server{
			HTTPAddress:     addr,
			RequestTimeout:  time.Second,
			MaxUploadSize:   1 << 20,
			ShutdownTimeout: time.Second,
		},
		Stego: config.Stego{MaxImagePixels: 1 << 16},
	}
}

func newTestHandlers(t *testing.T, cfg *config.StructuredConfig) *handler.Handlers {
	t.Helper()

	m := metrics.NewMetrics()
	services, err := service.NewServices(cfg, m, logger.Nop())
	require.NoError(t, err)
	handlers, err := handler.NewHandlers(services, m, cfg.Server, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestServer_Run_NothingToRun(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.Run(context.Background()), errNoServersToRun)
}

func TestHTTPServer_ServesAndShutsDown(t *testing.T) {
	cfg := testConfig("127.0.0.1:0")
	handlers := newTestHandlers(t, cfg)

	hs := newHTTPServer(handlers.HTTP.Init(), cfg.Server, logger.Nop())
	ln, err := hs.listen()
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- hs.serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/version/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "test", string(body))

	hs.Shutdown()
	select {
	case err := <-done:
		assert.NoError(t, err, "graceful shutdown is not an error")
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_Run_StopsOnContextCancel(t *testing.T) {
	cfg := testConfig("127.0.0.1:0")
	s, err := NewServer(newTestHandlers(t, cfg), cfg.Server, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestServer_Run_ListenError(t *testing.T) {
	cfg := testConfig("256.0.0.1:1")
	s, err := NewServer(newTestHandlers(t, cfg), cfg.Server, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, s.Run(context.Background()))
}
