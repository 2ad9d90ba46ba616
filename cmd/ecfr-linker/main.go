// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ecfr-linker CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ecfr-linker/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the ecfr-linker CLI.
var rootCmd = &cobra.Command{
	Use:   "ecfr-linker",
	Short: "Link 47 CFR Part 97 citations in Word documents to eCFR",
	Long: `ecfr-linker finds Part 97 citations such as 97.111(a)(1) in a .docx file
and turns each one into a hyperlink to the matching paragraph on eCFR:

  https://www.ecfr.gov/current/title-47/part-97/section-97.111#p-97.111(a)(1)

Use "link" to write a linked copy of a document and "scan" to preview the
citations and URLs without writing anything.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogger(viper.GetString("log_level"))
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ecfr-linker.yaml or ~/.config/ecfr-linker/ecfr-linker.yaml)")
	rootCmd.PersistentFlags().StringP("input", "i", "", "input .docx file")
	rootCmd.PersistentFlags().Bool("include-tables", false, "also process paragraphs inside tables")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")

	viper.BindPFlag("input", rootCmd.PersistentFlags().Lookup("input"))
	viper.BindPFlag("include_tables", rootCmd.PersistentFlags().Lookup("include-tables"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ecfr-linker")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ecfr-linker"))
		}
	}

	viper.SetEnvPrefix("ECFR_LINKER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setupLogger routes zerolog output to a console writer on stderr at the
// given level.
func setupLogger(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	return nil
}

// documentConfig reads the shared document settings. A positional argument
// takes precedence over the --input flag and config.
func documentConfig(args []string) (types.DocumentConfig, error) {
	cfg := types.DocumentConfig{
		Input:         viper.GetString("input"),
		IncludeTables: viper.GetBool("include_tables"),
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if cfg.Input == "" {
		return cfg, fmt.Errorf("input document required: pass a path or set --input")
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
