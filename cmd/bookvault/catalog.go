// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookvault/internal/catalog"
	"github.com/pdiddy/bookvault/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Build and query a SQLite catalog of the merged collection",
	Long: `Catalog maintains a SQLite view of one linkage run. Build runs the
full linkage and rebuilds the database from scratch; query filters the
stored rows by title, author, shelf, or match method.`,
}

// --- build subcommand ---

var catalogBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Rebuild the catalog database from both sources",
	Long: `Build parses both sources, links them, and replaces the catalog
database contents with the merged collection. Every build starts from an
empty table.`,
	RunE: runCatalogBuild,
}

func runCatalogBuild(cmd *cobra.Command, args []string) error {
	result, err := linkSources(cmd)
	if err != nil {
		return err
	}

	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Rebuild(context.Background(), result.Pairs); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "catalog: %d books stored\n", len(result.Pairs))
	return nil
}

// --- query subcommand ---

var catalogQueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query the catalog database",
	Long: `Query lists catalog rows matching the given filters. Title, author,
and shelf filters match substrings; method matches exactly ("exact" or
"fuzzy"). Without filters, query lists the whole collection up to
--max-results rows.`,
	RunE: runCatalogQuery,
}

func runCatalogQuery(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	title, _ := cmd.Flags().GetString("title")
	author, _ := cmd.Flags().GetString("author")
	shelf, _ := cmd.Flags().GetString("shelf")
	method, _ := cmd.Flags().GetString("method")

	rows, err := store.Query(context.Background(), catalog.QueryOptions{
		Title:  title,
		Author: author,
		Shelf:  shelf,
		Method: method,
	})
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatCatalogOutput(rows, jsonOutput)
}

func formatCatalogOutput(rows []catalog.Row, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(rows) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-40s  %-25s  %-13s  %-10s  %s\n",
		"Title", "Authors", "ISBN", "Status", "Method")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, r := range rows {
		title := r.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		authors := r.Authors
		if len(authors) > 25 {
			authors = authors[:22] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-40s  %-25s  %-13s  %-10s  %s\n",
			title, authors, r.ISBN, r.ReadStatus, r.MatchMethod)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(rows))
	return nil
}

// --- shared helpers ---

// catalogConfig builds the catalog config from the db and max-results
// flags and the config file.
func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults == 0 {
		maxResults = fileCfg.Catalog.MaxResults
	}
	return types.CatalogConfig{
		Path:       resolve(cmd, "db", fileCfg.Catalog.Path),
		MaxResults: maxResults,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	catalogCmd.PersistentFlags().String("db", "catalog.db", "catalog database file")
	catalogCmd.PersistentFlags().Int("max-results", 0, "maximum query results (0 = default)")

	// Build flags.
	catalogBuildCmd.Flags().StringP("dir", "d", "Goodreads", "directory of Goodreads markdown notes")
	catalogBuildCmd.Flags().StringP("file", "f", "storygraph_export.csv", "StoryGraph export CSV")

	// Query flags.
	catalogQueryCmd.Flags().String("title", "", "filter by title substring")
	catalogQueryCmd.Flags().String("author", "", "filter by author substring")
	catalogQueryCmd.Flags().String("shelf", "", "filter by shelf or tag substring")
	catalogQueryCmd.Flags().String("method", "", "filter by match method: exact or fuzzy")
	catalogQueryCmd.Flags().Bool("json", false, "output results as JSON")

	catalogCmd.AddCommand(catalogBuildCmd)
	catalogCmd.AddCommand(catalogQueryCmd)

	rootCmd.AddCommand(catalogCmd)
}
