// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the svg2ai CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/svg2ai/internal/logger"
	"github.com/pdiddy/svg2ai/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// closeLog releases the run log opened in PersistentPreRunE.
var closeLog = func() error { return nil }

// reportedError marks an error the operator has already seen as an alert.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

// rootCmd is the base command for the svg2ai CLI.
var rootCmd = &cobra.Command{
	Use:   "svg2ai",
	Short: "Convert SVG symbol files into Illustrator symbol palettes",
	Long: `svg2ai converts every SVG file under an input folder into an Adobe
Illustrator document under an output folder, mirroring the folder tree.
Symbols defined in each SVG (<symbol id="...">) end up in the document's
symbol palette; symbol instances placed on the canvas are removed.

Documents are opened and saved by a host: a running Adobe Illustrator
(driven through osascript) or the built-in native host.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cleanup, err := logger.Setup(logger.Config{
			Dir:   viper.GetString("log_dir"),
			Debug: viper.GetBool("debug"),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: run log disabled: %v\n", err)
			return nil
		}
		closeLog = cleanup
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./svg2ai.yaml or ~/.config/svg2ai/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "log debug records with source locations")
	rootCmd.PersistentFlags().String("log-dir", "", "directory for the JSON run log (default: user cache dir)")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("svg2ai")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "svg2ai"))
		}
	}

	setDefaults(viper.GetViper())

	viper.SetEnvPrefix("SVG2AI")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers every key of types.DefaultConfig so that env
// variables and Unmarshal see them.
func setDefaults(v *viper.Viper) {
	def := types.DefaultConfig()
	v.SetDefault("input", def.Input)
	v.SetDefault("output", def.Output)
	v.SetDefault("backend", string(def.Backend))
	v.SetDefault("application", def.Application)
	v.SetDefault("extension", def.Extension)
	v.SetDefault("strict", def.Strict)
	v.SetDefault("debug", def.Debug)
	v.SetDefault("save.compatibility", int(def.Save.Compatibility))
	v.SetDefault("save.compressed", def.Save.Compressed)
	v.SetDefault("save.embed_icc_profile", def.Save.EmbedICCProfile)
	v.SetDefault("save.embed_linked_files", def.Save.EmbedLinkedFiles)
	v.SetDefault("save.flatten", string(def.Save.Flatten))
	v.SetDefault("save.font_subset_threshold", def.Save.FontSubsetThreshold)
	v.SetDefault("save.pdf_compatible", def.Save.PDFCompatible)

	logDir := def.LogDir
	if cache, err := os.UserCacheDir(); err == nil {
		logDir = filepath.Join(cache, "svg2ai")
	}
	v.SetDefault("log_dir", logDir)
}

// loadConfig decodes the effective configuration from v.
func loadConfig(v *viper.Viper) (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Save.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid save options: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
