// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/convert-to-txt/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the conversion result cache",
	Long: `Cache manages the local SQLite cache of conversion results. Cached
conversions are keyed by input content, page selection, and tool, so
converting an unchanged document again skips the external tool.`,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the number and size of cached conversions",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := cache.Open(cacheDir(cmd))
		if err != nil {
			return err
		}
		defer store.Close()

		st, err := store.Stats()
		if err != nil {
			return err
		}
		fmt.Printf("entries: %d\ntext bytes: %d\n", st.Entries, st.TextBytes)
		return nil
	},
}

var cacheExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the cached conversions as YAML to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := cache.Open(cacheDir(cmd))
		if err != nil {
			return err
		}
		defer store.Close()

		return store.ExportYAML(os.Stdout)
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached conversion",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := cache.Open(cacheDir(cmd))
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := store.Clear()
		if err != nil {
			return err
		}
		fmt.Printf("removed %d cached conversion(s)\n", n)
		return nil
	},
}

func init() {
	cacheCmd.PersistentFlags().String("cache-dir", "", "directory for the conversion cache (default: user cache dir)")

	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheExportCmd)
	cacheCmd.AddCommand(cacheClearCmd)

	rootCmd.AddCommand(cacheCmd)
}
