// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookvault/internal/storygraph"
	"github.com/pdiddy/bookvault/pkg/types"
)

var storygraphCmd = &cobra.Command{
	Use:   "storygraph",
	Short: "Clean a StoryGraph CSV export",
	Long: `Storygraph reads a StoryGraph export CSV, normalizes every row into a
book record (splitting list columns, decomposing content warnings by
severity), and writes the records as JSON lines. Rows that cannot be
read are skipped with a warning.`,
	RunE: runStorygraph,
}

func runStorygraph(cmd *cobra.Command, args []string) error {
	cfg := storygraphConfig(cmd)
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = strings.TrimSuffix(cfg.File, ".csv") + ".json"
	}

	books, err := storygraph.CleanFile(cfg, os.Stderr)
	if err != nil {
		return err
	}

	if err := writeJSONLines(output, books); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "storygraph: %d records written to %s\n", len(books), output)
	return nil
}

// storygraphConfig builds the export-cleaner config from the file flag and
// the config file.
func storygraphConfig(cmd *cobra.Command) types.StoryGraphConfig {
	return types.StoryGraphConfig{
		File: resolve(cmd, "file", fileCfg.StoryGraph.File),
	}
}

func init() {
	storygraphCmd.Flags().StringP("file", "f", "storygraph_export.csv", "StoryGraph export CSV")
	storygraphCmd.Flags().StringP("output", "o", "", "output file (default: input with .csv replaced by .json)")

	rootCmd.AddCommand(storygraphCmd)
}
