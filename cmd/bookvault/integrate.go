// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookvault/internal/goodreads"
	"github.com/pdiddy/bookvault/internal/link"
	"github.com/pdiddy/bookvault/internal/storygraph"
	"github.com/pdiddy/bookvault/pkg/types"
)

var integrateCmd = &cobra.Command{
	Use:   "integrate",
	Short: "Link both sources into one merged collection",
	Long: `Integrate parses the Goodreads notes directory and the StoryGraph
export, joins records sharing an ISBN, fuzzy-matches the remainder on
title, author, and review similarity, and writes the merged records as
JSON lines. Each merged record carries every field from both sides under
a goodreads_ or story_graph_ prefix, plus the match method.`,
	RunE: runIntegrate,
}

func runIntegrate(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "merged.json"
	}

	result, err := linkSources(cmd)
	if err != nil {
		return err
	}

	merged := make([]types.MergedRecord, 0, len(result.Pairs))
	for _, pair := range result.Pairs {
		merged = append(merged, types.Merge(pair))
	}

	if err := writeJSONLines(output, merged); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "integrate: %d merged records written to %s\n", len(merged), output)
	return nil
}

// linkSources runs the shared front half of the pipeline: parse both
// sources, link them, and report phase sizes on stderr.
func linkSources(cmd *cobra.Command) (link.Result, error) {
	grBooks, err := goodreads.ReadDir(goodreadsConfig(cmd), os.Stderr)
	if err != nil {
		return link.Result{}, err
	}
	fmt.Fprintf(os.Stderr, "goodreads: %d records\n", len(grBooks))

	sgBooks, err := storygraph.CleanFile(storygraphConfig(cmd), os.Stderr)
	if err != nil {
		return link.Result{}, err
	}
	fmt.Fprintf(os.Stderr, "storygraph: %d records\n", len(sgBooks))

	engine := link.NewEngine(newLogger())
	result, err := engine.Link(context.Background(), grBooks, sgBooks)
	if err != nil {
		return link.Result{}, err
	}

	fmt.Fprintf(os.Stderr, "matched: %d exact, %d fuzzy\n", result.Exact, result.Fuzzy)
	fmt.Fprintf(os.Stderr, "unmatched: %d goodreads, %d storygraph\n",
		len(result.UnmatchedGoodreads), len(result.UnmatchedStoryGraph))
	return result, nil
}

// writeJSONLines writes one JSON object per line to path.
func writeJSONLines[T any](path string, records []T) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encoding record: %w", err)
		}
	}
	return nil
}

func init() {
	integrateCmd.Flags().StringP("dir", "d", "Goodreads", "directory of Goodreads markdown notes")
	integrateCmd.Flags().StringP("file", "f", "storygraph_export.csv", "StoryGraph export CSV")
	integrateCmd.Flags().StringP("output", "o", "", "output file (default: merged.json)")

	rootCmd.AddCommand(integrateCmd)
}
