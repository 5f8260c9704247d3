package main

import (
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-stego-keeper/internal/adapter"
	"github.com/MKhiriev/go-stego-keeper/internal/client"
	"github.com/MKhiriev/go-stego-keeper/internal/config"
	"github.com/MKhiriev/go-stego-keeper/internal/logger"
	"github.com/MKhiriev/go-stego-keeper/internal/service"
	"github.com/MKhiriev/go-stego-keeper/models"
	"github.com/spf13/cobra"
)

func newBuildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	server     string
	timeout    time.Duration
	configPath string
	local      bool
	verbose    bool
}

// cliState is assembled once the flags are parsed.
type cliState struct {
	app    *client.App
	remote adapter.ServerAdapter
	logger *logger.Logger
}

func newRootCommand(buildInfo models.AppBuildInfo, stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}
	rt := &cliState{}

	root := &cobra.Command{
		Use:          "stego-client",
		Short:        "Hide encrypted messages in images",
		Long:         "stego-client hides a ChaCha20-encrypted message in the least significant bits of an image, or reveals one.",
		Version:      buildInfo.BuildVersion(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.init(opts, stdout, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.server, "server", "", "server address (host:port or URL); env ADAPTER_ADDRESS")
	flags.DurationVar(&opts.timeout, "timeout", 0, "server request timeout; env ADAPTER_REQUEST_TIMEOUT")
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a JSON config file; env CONFIG")
	flags.BoolVar(&opts.local, "local", false, "run in-process instead of calling a server")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newHideCommand(rt),
		newRevealCommand(rt),
		newVersionCommand(rt, buildInfo, opts),
	)

	return root
}

func (rt *cliState) init(opts *rootOptions, stdout, stderr io.Writer) error {
	rt.logger = logger.NewClientLogger("go-stego-client", stderr, opts.verbose)

	cfg, err := config.GetClientConfig(config.ClientFlags{
		ServerAddress:  opts.server,
		RequestTimeout: opts.timeout,
		JSONFilePath:   opts.configPath,
	})
	if err != nil {
		return err
	}

	var stego service.StegoService
	if opts.local {
		stego = service.NewLocalStegoService(cfg.Stego, rt.logger)
		rt.logger.Debug().Msg("running in local mode")
	} else {
		rt.remote, err = adapter.NewHTTPServerAdapter(cfg.Adapter, rt.logger)
		if err != nil {
			return err
		}
		stego = rt.remote
		rt.logger.Debug().Str("server", cfg.Adapter.HTTPAddress).Msg("using remote server")
	}

	rt.app = client.NewApp(stego, stdout, rt.logger)
	return nil
}

func newHideCommand(rt *cliState) *cobra.Command {
	opts := client.HideOptions{}

	cmd := &cobra.Command{
		Use:   "hide",
		Short: "Encrypt a message and embed it in an image",
		Example: `  stego-client hide --image in.png --message "meet at noon" --key k --out out.png
  stego-client hide --local --image photo.jpg --message "..." --key k`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.app.Hide(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.ImagePath, "image", "i", "", "carrier image (png, jpeg, gif, bmp, tiff, webp)")
	f.StringVarP(&opts.Message, "message", "m", "", "message to hide")
	f.StringVarP(&opts.Passphrase, "key", "k", "", "passphrase")
	f.StringVarP(&opts.OutPath, "out", "o", client.DefaultOutPath, "output PNG path")
	f.BoolVarP(&opts.Force, "force", "f", false, "overwrite the output file")
	for _, name := range []string{"image", "message", "key"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newRevealCommand(rt *cliState) *cobra.Command {
	opts := client.RevealOptions{}

	cmd := &cobra.Command{
		Use:     "reveal",
		Short:   "Extract and decrypt a message from an image",
		Example: `  stego-client reveal --image out.png --key k`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return rt.app.Reveal(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.ImagePath, "image", "i", "", "PNG produced by hide")
	f.StringVarP(&opts.Passphrase, "key", "k", "", "passphrase")
	for _, name := range []string{"image", "key"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newVersionCommand(rt *cliState, buildInfo models.AppBuildInfo, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client build info and the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, buildInfo)

			if opts.local || rt.remote == nil {
				return nil
			}
			v, err := rt.remote.Version(cmd.Context())
			if err != nil {
				return fmt.Errorf("error getting server version: %w", err)
			}
			fmt.Fprintf(out, "Server version: %s\n", v)
			return nil
		},
	}
}
