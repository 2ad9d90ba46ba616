// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ecfr-linker/internal/linker"
	"github.com/pdiddy/ecfr-linker/pkg/types"
)

var linkCmd = &cobra.Command{
	Use:   "link [input.docx]",
	Short: "Write a copy of a document with Part 97 citations hyperlinked",
	Long: `Link reads the input document, replaces every Part 97 citation with a
blue, underlined hyperlink to eCFR, and saves the result to the output path.
The output file is overwritten if it exists and is only written once every
paragraph has been processed. Without --output the result is saved next to
the input as <name>_linked.docx.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLink,
}

func runLink(cmd *cobra.Command, args []string) error {
	docCfg, err := documentConfig(args)
	if err != nil {
		return err
	}
	cfg := types.LinkConfig{
		DocumentConfig: docCfg,
		Output:         viper.GetString("output"),
	}

	summary, err := linker.Run(cfg, log.Logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Success! Saved to: %s\n", summary.Output)
	return nil
}

func init() {
	linkCmd.Flags().StringP("output", "o", "", "output .docx file (default: <input>_linked.docx)")
	viper.BindPFlag("output", linkCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(linkCmd)
}
