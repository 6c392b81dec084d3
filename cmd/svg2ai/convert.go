// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/svg2ai/internal/convert"
	"github.com/pdiddy/svg2ai/internal/dialog"
	"github.com/pdiddy/svg2ai/internal/host"
	"github.com/pdiddy/svg2ai/internal/logger"
	"github.com/pdiddy/svg2ai/internal/report"
	"github.com/pdiddy/svg2ai/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a folder tree of SVG symbol files to Illustrator documents",
	Long: `Convert walks the input folder recursively. Every folder is recreated
under the output folder and every .svg file is saved there as <name>.ai.
Other files are ignored. Existing output files are replaced.

Folders not given with --input/--output (or in the config file) are asked
for on the terminal; an empty answer cancels without converting anything.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("input", "", "folder containing the SVG files")
	convertCmd.Flags().String("output", "", "folder receiving the converted documents")
	convertCmd.Flags().String("backend", "", "host: auto, native, or illustrator (default auto)")
	convertCmd.Flags().String("application", "", `Illustrator application name (default "Adobe Illustrator")`)
	convertCmd.Flags().Int("compatibility", 0, "Illustrator format version, 12 (CS2) or newer (default 12)")
	convertCmd.Flags().String("ext", "", "native file extension (default ai)")
	convertCmd.Flags().Bool("strict", false, "exit non-zero when any file fails to convert")

	for key, flag := range map[string]string{
		"input":              "input",
		"output":             "output",
		"backend":            "backend",
		"application":        "application",
		"save.compatibility": "compatibility",
		"extension":          "ext",
		"strict":             "strict",
	} {
		_ = viper.BindPFlag(key, convertCmd.Flags().Lookup(flag))
	}

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	if cfg.Debug && logger.IsReady() == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Run log: %s (run %s)\n", logger.Path(), logger.RunID())
	}

	prompter := dialog.NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
	h, err := host.New(cfg.Backend, host.Options{
		Application: cfg.Application,
		Confirm: func(path string) bool {
			return prompter.Confirm(fmt.Sprintf("Replace %s?", path))
		},
	})
	if err != nil {
		return err
	}

	picker := dialog.Fixed{Input: cfg.Input, Output: cfg.Output, Fallback: prompter}
	roots, err := dialog.SelectRoots(picker)
	if errors.Is(err, dialog.ErrCancelled) {
		logger.L().Info("run.cancelled")
		return nil
	}
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return convertTree(ctx, h, roots, cfg, report.NewTerminal(cmd.ErrOrStderr()), cmd.OutOrStdout())
}

// convertTree runs the conversion and maps its outcome to the command error.
func convertTree(ctx context.Context, h host.Host, roots convert.Roots, cfg types.Config, alerts report.Alerter, w io.Writer) error {
	opts := convert.Options{
		Extension: cfg.Extension,
		Save:      cfg.Save,
		Logger:    logger.L(),
	}

	result, err := convert.Run(ctx, h, roots, opts, report.New(alerts), w)
	if err != nil {
		return reportedError{err}
	}
	if cfg.Strict && result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}
