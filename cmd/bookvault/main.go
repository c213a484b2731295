// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bookvault CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bookvault/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// fileCfg holds the config-file settings, loaded once at startup. Commands
// build their stage config from it, with explicitly set flags winning.
var fileCfg types.PipelineConfig

// rootCmd is the base command for the bookvault CLI.
var rootCmd = &cobra.Command{
	Use:   "bookvault",
	Short: "Reconcile Goodreads notes and StoryGraph exports into one vault",
	Long: `bookvault links two reading-history sources, a directory of Goodreads
markdown notes and a StoryGraph CSV export, into a single merged collection.
Records sharing an ISBN are joined directly; the rest are matched by fuzzy
title, author, and review similarity.

Each pipeline stage is a subcommand: goodreads and storygraph parse one
source each, integrate runs the full linkage, write maintains the Obsidian
vault, and catalog builds and queries a SQLite view of the collection.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bookvault.yaml or ~/.config/bookvault/config.yaml)")
	rootCmd.PersistentFlags().String("log", "info", "log level: trace, debug, info, warn, error")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bookvault")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bookvault"))
		}
	}

	viper.SetEnvPrefix("BOOKVAULT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
	if err := viper.Unmarshal(&fileCfg); err != nil {
		fmt.Fprintln(os.Stderr, "warning: ignoring malformed config:", err)
		fileCfg = types.PipelineConfig{}
	}
}

// newLogger builds the CLI logger at the level set by --log.
func newLogger() zerolog.Logger {
	name, _ := rootCmd.PersistentFlags().GetString("log")
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()
}

// resolve picks a string setting: an explicitly set flag wins, then the
// config-file value, then the flag default.
func resolve(cmd *cobra.Command, flag, fileValue string) string {
	v, _ := cmd.Flags().GetString(flag)
	if cmd.Flags().Changed(flag) || fileValue == "" {
		return v
	}
	return fileValue
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
