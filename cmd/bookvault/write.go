// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/bookvault/internal/vault"
	"github.com/pdiddy/bookvault/pkg/types"
)

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Integrate both sources and update the vault",
	Long: `Write runs the full linkage and then maintains the Obsidian vault: one
combined note per matched pair under Combined/, removal of the
superseded Goodreads and StoryGraph notes, and rebuilt index notes under
Authors/, Series/, and Shelves/.

The Goodreads notes are read from the Goodreads/ directory inside the
vault unless --dir points elsewhere.`,
	RunE: runWrite,
}

func runWrite(cmd *cobra.Command, args []string) error {
	cfg := vaultConfig(cmd)
	if !cmd.Flags().Changed("dir") {
		cmd.Flags().Set("dir", filepath.Join(cfg.Dir, "Goodreads"))
	}

	result, err := linkSources(cmd)
	if err != nil {
		return err
	}

	writer := vault.NewWriter(cfg)
	sum, err := writer.WriteCombined(result.Pairs, os.Stderr)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "indexes: %d authors, %d series, %d shelves\n",
		sum.Authors, sum.Series, sum.Shelves)
	return nil
}

// vaultConfig builds the vault-writer config from the vault flag and the
// config file.
func vaultConfig(cmd *cobra.Command) types.VaultConfig {
	return types.VaultConfig{
		Dir: resolve(cmd, "vault", fileCfg.Vault.Dir),
	}
}

func init() {
	writeCmd.Flags().String("vault", ".", "vault root directory")
	writeCmd.Flags().StringP("dir", "d", "", "directory of Goodreads markdown notes (default: <vault>/Goodreads)")
	writeCmd.Flags().StringP("file", "f", "storygraph_export.csv", "StoryGraph export CSV")

	rootCmd.AddCommand(writeCmd)
}
