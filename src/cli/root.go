// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-bundle-editor/src/config"
	"github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/editor"
	"github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/x509-bundle-editor/src/logger"
)

var (
	// ErrInputFileRequired indicates that no bundle file was given.
	ErrInputFileRequired = errors.New("at least one FILE is required")

	// ErrNumberWithMultipleFiles indicates -n used together with more than one file.
	ErrNumberWithMultipleFiles = errors.New("-n may be specified only with a single file")
)

// DecodeName returns the program name of the decode command as invoked.
func DecodeName() string { return posix.GetExecutableName("decodecert") }

// DeleteName returns the program name of the delete command as invoked.
func DeleteName() string { return posix.GetExecutableName("deletecert") }

// flags collects the parsed command line of one invocation.
type flags struct {
	options    editor.Options
	configPath string
	engine     string
}

// requireFiles is the positional argument validator shared by both commands.
func requireFiles(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return ErrInputFileRequired
	}
	return nil
}

func addCommonFlags(cmd *cobra.Command, f *flags) {
	cmd.Flags().BoolVarP(&f.options.Debug, "debug", "d", false, "debug output")
	cmd.Flags().BoolVarP(&f.options.FullPath, "path", "p", false, "display full pathname")
	cmd.Flags().BoolVarP(&f.options.Verbose, "verbose", "v", false, "verbose (full) output from the decoder")
	cmd.Flags().BoolVar(&f.options.Table, "table", false, "display certificates as markdown table")
	cmd.Flags().StringVar(&f.configPath, "config", "", "configuration file (.json, .yaml, .yml)")
	cmd.Flags().StringVar(&f.engine, "engine", "", `certificate decoder: "native" or "openssl" (default from config)`)
}

// NewDecodeCommand builds the decodecert command.
//
// Parameters:
//   - version: Version string shown by --version
//   - log: Diagnostic logger; nil logs to the command's error output
//
// Returns:
//   - *cobra.Command: The command, ready to execute
func NewDecodeCommand(version string, log logger.Logger) *cobra.Command {
	f := &flags{}
	name := DecodeName()

	cmd := &cobra.Command{
		Use:   name + " [flags] FILE...",
		Short: "Display the certificates of PEM bundles",
		Long: `Display issuer, validity and subject of every certificate in each PEM
bundle. Certificates that are expired or not yet valid are flagged.`,
		Version:       version,
		Args:          requireFiles,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			ed, err := newEditor(cmd, f, name, log)
			if err != nil {
				return err
			}
			return ed.Decode(cmd.Context(), args)
		},
	}

	addCommonFlags(cmd, f)
	return cmd
}

// NewDeleteCommand builds the deletecert command.
//
// Parameters:
//   - version: Version string shown by --version
//   - log: Diagnostic logger; nil logs to the command's error output
//
// Returns:
//   - *cobra.Command: The command, ready to execute
func NewDeleteCommand(version string, log logger.Logger) *cobra.Command {
	f := &flags{}
	name := DeleteName()

	cmd := &cobra.Command{
		Use:   name + " [flags] FILE...",
		Short: "Remove certificates from PEM bundles",
		Long: `Remove certificates from PEM bundles by position, issuer, subject or
expiration. The original file is kept as a read-only backup next to it
(ca.pem is backed up to ca-BACKUP.pem) unless test mode is on.`,
		Version:       version,
		Args:          requireFiles,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			f.options.HasPosition = cmd.Flags().Changed("number")
			if f.options.HasPosition && len(args) > 1 {
				return ErrNumberWithMultipleFiles
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			ed, err := newEditor(cmd, f, name, log)
			if err != nil {
				return err
			}
			return ed.Delete(cmd.Context(), args)
		},
	}

	addCommonFlags(cmd, f)
	cmd.Flags().BoolVarP(&f.options.Expired, "expired", "e", false, "delete expired certificates")
	cmd.Flags().BoolVarP(&f.options.Force, "force", "f", false, "overwrite backup")
	cmd.Flags().StringVarP(&f.options.Issuer, "issuer", "i", "", "delete by matching issuer (O or CN)")
	cmd.Flags().StringVarP(&f.options.Subject, "subject", "s", "", "delete by matching subject (O or CN)")
	cmd.Flags().IntVarP(&f.options.Position, "number", "n", 0, "delete by matching certificate number")
	cmd.Flags().BoolVarP(&f.options.Test, "test", "t", false, "test mode, do not delete")
	return cmd
}

// newEditor resolves configuration, decoder and logger for one invocation.
func newEditor(cmd *cobra.Command, f *flags, name string, log logger.Logger) (*editor.Editor, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	if f.engine != "" {
		cfg.Decoder.Engine = f.engine
	}
	decoder, err := cfg.NewDecoder()
	if err != nil {
		return nil, err
	}

	opts := f.options
	opts.Table = opts.Table || cfg.Report.Format == config.ReportTable
	opts.BackupSuffix = cfg.Backup.Suffix

	switch {
	case cfg.Log.Format == config.LogJSON:
		log = logger.New(logger.FormatJSON, cmd.ErrOrStderr(), name)
	case log == nil:
		log = logger.New(logger.FormatText, cmd.ErrOrStderr(), name)
	}

	return editor.New(decoder, opts, cmd.OutOrStdout(), log), nil
}

// ExecuteDecode runs decodecert with the process arguments.
func ExecuteDecode(ctx context.Context, version string, log logger.Logger) error {
	return NewDecodeCommand(version, log).ExecuteContext(ctx)
}

// ExecuteDelete runs deletecert with the process arguments.
func ExecuteDelete(ctx context.Context, version string, log logger.Logger) error {
	return NewDeleteCommand(version, log).ExecuteContext(ctx)
}
