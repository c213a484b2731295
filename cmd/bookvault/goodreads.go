// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookvault/internal/goodreads"
	"github.com/pdiddy/bookvault/pkg/types"
)

var goodreadsCmd = &cobra.Command{
	Use:   "goodreads",
	Short: "Parse a directory of Goodreads markdown notes",
	Long: `Goodreads reads every markdown note in the given directory, parses its
YAML front matter into a normalized book record, and writes the records
as JSON lines. Notes without usable front matter are skipped with a
warning.`,
	RunE: runGoodreads,
}

func runGoodreads(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "goodreads.json"
	}

	books, err := goodreads.ReadDir(goodreadsConfig(cmd), os.Stderr)
	if err != nil {
		return err
	}

	if err := writeJSONLines(output, books); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "goodreads: %d records written to %s\n", len(books), output)
	return nil
}

// goodreadsConfig builds the notes-reader config from the dir flag and the
// config file.
func goodreadsConfig(cmd *cobra.Command) types.GoodreadsConfig {
	return types.GoodreadsConfig{
		Dir: resolve(cmd, "dir", fileCfg.Goodreads.Dir),
	}
}

func init() {
	goodreadsCmd.Flags().StringP("dir", "d", "Goodreads", "directory of Goodreads markdown notes")
	goodreadsCmd.Flags().StringP("output", "o", "", "output file (default: goodreads.json)")

	rootCmd.AddCommand(goodreadsCmd)
}
