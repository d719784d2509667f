// Package cli provides the Cobra command structure for binpatch.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/binpatch/internal/configloader"
	"github.com/yaklabco/binpatch/internal/logging"
	"github.com/yaklabco/binpatch/internal/ui/pretty"
	"github.com/yaklabco/binpatch/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root binpatch command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var quiet bool
	var hexMode bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "binpatch",
		Short: "Locate, replace and insert raw byte patterns in binary files",
		Long: `binpatch works on raw bytes, so it handles binary files the same way it
handles text: locate reports the offsets where a byte pattern occurs,
replace substitutes matched regions (padding with a fill byte to preserve
the file size, unless a length change is allowed), and insert splices new
bytes at an explicit offset.

Matches may overlap: the scan resumes one byte after each match, so the
pattern "aa" occurs three times in "aaaa". Rewrites are written through a
temporary file and renamed into place, so a failed operation never leaves a
half-written destination.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// --version on the root prints a one-line summary; the version
	// subcommand keeps the structured form.
	rootCmd.Version = info.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("binpatch %s (commit %s, built %s)\n", info.Version, info.Commit, info.Date))

	// Global flags.
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&hexMode, "hex", false,
		"interpret pattern, replacement and payload arguments as hex strings")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newLocateCommand())
	rootCmd.AddCommand(newReplaceCommand())
	rootCmd.AddCommand(newInsertCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// runContext bundles the resolved configuration and output styling shared
// by every subcommand run.
type runContext struct {
	ctx    context.Context
	cfg    *config.Config
	styles *pretty.Styles
	quiet  bool
	hex    bool
}

// newRunContext loads the configuration and resolves the persistent flags
// against it. An explicitly set flag wins over a config file value.
func newRunContext(cmd *cobra.Command) (*runContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{ExplicitPath: configPath})
	if err != nil {
		return nil, err
	}
	cfg := loadResult.Config

	logger := logging.Default()
	if loadResult.LoadedFrom != "" {
		logger.Debug("loaded configuration", logging.FieldConfig, loadResult.LoadedFrom)
	}

	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("get quiet flag: %w", err)
	}
	if !cmd.Flags().Changed("quiet") {
		quiet = cfg.Quiet
	}

	color, err := cmd.Flags().GetString("color")
	if err != nil {
		return nil, fmt.Errorf("get color flag: %w", err)
	}
	if !cmd.Flags().Changed("color") {
		color = string(cfg.Color)
	}

	hexMode, err := cmd.Flags().GetBool("hex")
	if err != nil {
		return nil, fmt.Errorf("get hex flag: %w", err)
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(color, out))

	return &runContext{
		ctx:    ctx,
		cfg:    cfg,
		styles: styles,
		quiet:  quiet,
		hex:    hexMode,
	}, nil
}
