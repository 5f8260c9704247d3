package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-stego-keeper/internal/logger"
	"github.com/MKhiriev/go-stego-keeper/internal/service"
	"github.com/MKhiriev/go-stego-keeper/models"
)

// DefaultOutPath is where Hide writes when no output path is given.
const DefaultOutPath = "encrypted.png"

const outFileMode = 0o600

type HideOptions struct {
	ImagePath  string
	Message    string
	Passphrase string
	OutPath    string
	// Force allows overwriting an existing OutPath.
	Force bool
}

type RevealOptions struct {
	ImagePath  string
	Passphrase string
}

type App struct {
	stego  service.StegoService
	stdout io.Writer

	logger *logger.Logger
}

// NewApp returns a client that runs every operation through stego and
// prints revealed messages to stdout.
func NewApp(stego service.StegoService, stdout io.Writer, logger *logger.Logger) *App {
	return &App{
		stego:  stego,
		stdout: stdout,
		logger: logger,
	}
}

func (a *App) Hide(ctx context.Context, opts HideOptions) error {
	if opts.OutPath == "" {
		opts.OutPath = DefaultOutPath
	}
	if err := checkPaths(opts.ImagePath, opts.OutPath, opts.Force); err != nil {
		return err
	}

	carrier, err := readImage(opts.ImagePath)
	if err != nil {
		return err
	}

	out, err := a.stego.Hide(ctx, models.HideRequest{
		Image:      carrier,
		Message:    opts.Message,
		Passphrase: opts.Passphrase,
	})
	if err != nil {
		return fmt.Errorf("error hiding message: %w", err)
	}

	if err = os.WriteFile(opts.OutPath, out, outFileMode); err != nil {
		return fmt.Errorf("error writing %s: %w", opts.OutPath, err)
	}

	a.logger.Info().
		Str("out", opts.OutPath).
		Int("bytes", len(out)).
		Msg("message hidden")

	return nil
}

func (a *App) Reveal(ctx context.Context, opts RevealOptions) error {
	if opts.ImagePath == "" {
		return ErrNoImagePath
	}

	carrier, err := readImage(opts.ImagePath)
	if err != nil {
		return err
	}

	message, err := a.stego.Reveal(ctx, models.RevealRequest{
		Image:      carrier,
		Passphrase: opts.Passphrase,
	})
	if err != nil {
		return fmt.Errorf("error revealing message: %w", err)
	}

	a.logger.Debug().Int("bytes", len(message)).Msg("message revealed")

	_, err = fmt.Fprintln(a.stdout, message)
	return err
}

func readImage(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return data, nil
}

func checkPaths(in, out string, force bool) error {
	if in == "" {
		return ErrNoImagePath
	}

	inAbs, err := filepath.Abs(in)
	if err != nil {
		return fmt.Errorf("error resolving %s: %w", in, err)
	}
	outAbs, err := filepath.Abs(out)
	if err != nil {
		return fmt.Errorf("error resolving %s: %w", out, err)
	}
	if inAbs == outAbs {
		return ErrSameInOut
	}

	if force {
		return nil
	}
	if _, err = os.Stat(out); err == nil {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrOutputExists, out)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error checking %s: %w", out, err)
	}
	return nil
}
