package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zoobzio/unravel"
	"github.com/zoobzio/unravel/internal/config"
	"github.com/zoobzio/unravel/internal/logging"
)

// app holds the state shared by subcommands once flags are parsed.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	engine *unravel.Engine
}

// rootFlags are the persistent flags every subcommand accepts.
type rootFlags struct {
	configPath string
	clipboard  bool
	digest     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.NewNop()}
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "unravel",
		Short: "Decode hex, URL, Base64, UTF-16 Base64 and escaped text",
		Long: `unravel decodes text that has been wrapped in one or more layers of
hex, percent-encoding, Base64, PowerShell -EncodedCommand Base64 or \uXXXX
escapes.

Examples:
  # Peel every layer and show which ones were removed
  unravel smart '%5Cu4f60%5Cu597d'

  # Apply a single transform
  unravel decode hex 48656c6c6f

  # Decode the clipboard in place
  unravel smart --clipboard --body`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/unravel/config.yaml)")
	pf.BoolVar(&flags.clipboard, "clipboard", false, "read input from the clipboard and copy the result back")
	pf.StringVar(&flags.digest, "digest", "", "append a fingerprint of the result (sha256, sha512, sha3-256, blake2b-256)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log decode details to stderr")

	cmd.AddCommand(
		newSmartCmd(a),
		newDecodeCmd(a),
		newStripCmd(a),
		newTransformsCmd(),
	)
	return cmd
}

// setup loads config, applies flag overrides and builds the logger and engine.
func (a *app) setup(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("clipboard") {
		cfg.Clipboard = flags.clipboard
	}
	if cmd.Flags().Changed("digest") {
		cfg.Digest = flags.digest
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger
	a.engine = unravel.New(unravel.WithIndent(cfg.Indent))

	a.log.Debug("config loaded",
		zap.String("config", flags.configPath),
		zap.Int("indent", cfg.Indent),
		zap.Bool("clipboard", cfg.Clipboard),
		zap.String("digest", cfg.Digest),
	)
	return nil
}
