// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ecfr-linker/internal/linker"
	"github.com/pdiddy/ecfr-linker/pkg/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan [input.docx]",
	Short: "List the citations in a document and the URLs they would link to",
	Long: `Scan reads the input document and prints every Part 97 citation it
finds, grouped by paragraph, with the eCFR URL that link would insert.
Nothing is written to disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	docCfg, err := documentConfig(args)
	if err != nil {
		return err
	}
	cfg := types.ScanConfig{
		DocumentConfig: docCfg,
		Format:         types.ReportFormat(viper.GetString("format")),
	}

	report, err := linker.Scan(cfg, log.Logger)
	if err != nil {
		return err
	}
	return linker.WriteReport(cmd.OutOrStdout(), report, cfg.Format)
}

func init() {
	scanCmd.Flags().String("format", "yaml", "report format: yaml or json")
	viper.BindPFlag("format", scanCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(scanCmd)
}
